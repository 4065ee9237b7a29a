/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/tag.go
*/

// Package resp implements the core RESP (REdis Serialization Protocol)
// value model: a tagged, inline-capable value representation together
// with a streaming parser and a version-aware streaming writer. It
// covers the wire grammar of both RESP2 and RESP3; transport,
// connection lifecycle, command dispatch and persistence are explicit
// external collaborators and are not part of this package.
package resp

// Tag is a single-byte RESP type prefix.
type Tag byte

const (
	TagUnknown Tag = 0

	// Blob family.
	TagBlobString     Tag = '$'
	TagBlobError      Tag = '!'
	TagVerbatimString Tag = '='

	// Line-terminated family.
	TagSimpleString Tag = '+'
	TagSimpleError  Tag = '-'
	TagNumber       Tag = ':'
	TagDouble       Tag = ','
	TagBoolean      Tag = '#'
	TagBigNumber    Tag = '('
	TagNull         Tag = '_'

	// Aggregate family, arity 1.
	TagArray Tag = '*'
	TagSet   Tag = '~'
	TagPush  Tag = '>'

	// Aggregate family, arity 2.
	TagMap       Tag = '%'
	TagAttribute Tag = '|'
)

// Family classifies a Tag for dispatch purposes.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyLeafLineTerminated
	FamilyLeafBlob
	FamilyAggregate
)

// knownTags maps every recognized prefix to its family, so FamilyOf and
// IsKnown share one table instead of drifting apart.
var knownTags = map[Tag]Family{
	TagBlobString:     FamilyLeafBlob,
	TagBlobError:      FamilyLeafBlob,
	TagVerbatimString: FamilyLeafBlob,

	TagSimpleString: FamilyLeafLineTerminated,
	TagSimpleError:  FamilyLeafLineTerminated,
	TagNumber:       FamilyLeafLineTerminated,
	TagDouble:       FamilyLeafLineTerminated,
	TagBoolean:      FamilyLeafLineTerminated,
	TagBigNumber:    FamilyLeafLineTerminated,
	TagNull:         FamilyLeafLineTerminated,

	TagArray: FamilyAggregate,
	TagSet:   FamilyAggregate,
	TagPush:  FamilyAggregate,

	TagMap:       FamilyAggregate,
	TagAttribute: FamilyAggregate,
}

// arities gives the wire-level child-count multiplier for aggregate
// tags: a Map/Attribute with N logical pairs writes 2N child frames.
var arities = map[Tag]int{
	TagArray: 1,
	TagSet:   1,
	TagPush:  1,

	TagMap:       2,
	TagAttribute: 2,
}

// IsKnown reports whether t is one of the closed set of recognized
// prefixes.
func (t Tag) IsKnown() bool {
	_, ok := knownTags[t]
	return ok
}

// FamilyOf classifies t. Unrecognized tags classify as FamilyUnknown.
func (t Tag) FamilyOf() Family {
	return knownTags[t]
}

// IsAggregate reports whether t is one of the aggregate tags.
func (t Tag) IsAggregate() bool {
	return t.FamilyOf() == FamilyAggregate
}

// IsBlob reports whether t is one of the blob tags.
func (t Tag) IsBlob() bool {
	return t.FamilyOf() == FamilyLeafBlob
}

// IsLineTerminated reports whether t is one of the line-terminated
// leaf tags (including Null).
func (t Tag) IsLineTerminated() bool {
	return t.FamilyOf() == FamilyLeafLineTerminated
}

// Arity returns the wire-level child multiplier for an aggregate tag,
// or 0 if t is not an aggregate tag.
func (t Tag) Arity() int {
	return arities[t]
}

func (t Tag) String() string {
	if t == TagUnknown {
		return "Unknown"
	}
	return string(byte(t))
}
