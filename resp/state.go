/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/state.go
*/
package resp

import "fmt"

// storageKind is the storage discriminant of a state. It is realized
// here as a Go sum type: one tag plus per-arm fields on state, rather
// than a packed union.
type storageKind uint8

const (
	storageUninitialized storageKind = iota
	storageNull
	storageEmpty
	storageInlinedBytes
	storageInlinedUInt32
	storageInlinedInt64
	storageInlinedDouble
	storageArraySegmentByte
	storageArraySegmentChar
	storageArraySegmentValue
	storageStringSegment
	storageUtf8StringSegment
	storageMemoryManagerByte
	storageMemoryManagerChar
	storageMemoryManagerValue
	storageSequenceSegmentByte
	storageSequenceSegmentChar
	storageSequenceSegmentValue
)

func (k storageKind) String() string {
	switch k {
	case storageUninitialized:
		return "Uninitialized"
	case storageNull:
		return "Null"
	case storageEmpty:
		return "Empty"
	case storageInlinedBytes:
		return "InlinedBytes"
	case storageInlinedUInt32:
		return "InlinedUInt32"
	case storageInlinedInt64:
		return "InlinedInt64"
	case storageInlinedDouble:
		return "InlinedDouble"
	case storageArraySegmentByte:
		return "ArraySegmentByte"
	case storageArraySegmentChar:
		return "ArraySegmentChar"
	case storageArraySegmentValue:
		return "ArraySegmentValue"
	case storageStringSegment:
		return "StringSegment"
	case storageUtf8StringSegment:
		return "Utf8StringSegment"
	case storageMemoryManagerByte:
		return "MemoryManagerByte"
	case storageMemoryManagerChar:
		return "MemoryManagerChar"
	case storageMemoryManagerValue:
		return "MemoryManagerValue"
	case storageSequenceSegmentByte:
		return "SequenceSegmentByte"
	case storageSequenceSegmentChar:
		return "SequenceSegmentChar"
	case storageSequenceSegmentValue:
		return "SequenceSegmentValue"
	default:
		return "Invalid"
	}
}

// state is the fixed-shape value header: one storage discriminant, a
// primary Type tag, an optional SubType (used only by the wrapped
// unit-aggregate device), and a payload area that is either inline
// bytes, an inline scalar, or a Start/End pair
// locating a span in external storage (the actual owner of that
// storage lives on the enclosing Value, never here, see value.go).
type state struct {
	Storage storageKind
	Type    Tag
	SubType Tag

	inlineLen byte
	inline    [InlineSize]byte

	u32 uint32
	i64 int64
	f64 float64

	// Start/End locate a span in external storage. For
	// SequenceSegment* storages, Start is the offset into the first
	// segment (obj0 on Value) and End is the offset into the last
	// segment (obj1); for every other external storage, Start/End are
	// plain indices into the single owner (obj0).
	Start int
	End   int
}

// IsInlined reports whether the payload lives directly in the state.
func (s state) IsInlined() bool {
	switch s.Storage {
	case storageInlinedBytes, storageInlinedUInt32, storageInlinedInt64, storageInlinedDouble:
		return true
	default:
		return false
	}
}

func (s state) IsNull() bool   { return s.Storage == storageNull }
func (s state) IsEmpty() bool  { return s.Storage == storageEmpty }
func (s state) IsScalar() bool {
	switch s.Storage {
	case storageInlinedUInt32, storageInlinedInt64, storageInlinedDouble:
		return true
	default:
		return false
	}
}

// PayloadLength returns the inline byte payload length; it is only
// meaningful when Storage == storageInlinedBytes.
func (s state) PayloadLength() int { return int(s.inlineLen) }

// InlineBytes returns the inline payload, valid only when Storage ==
// storageInlinedBytes.
func (s state) InlineBytes() []byte { return s.inline[:s.inlineLen] }

// CanWrap reports whether this state is eligible to be folded into a
// parent aggregate's state: it must be inlined and not already itself
// a wrapped unit aggregate.
func (s state) CanWrap() bool {
	return s.IsInlined() && s.SubType == TagUnknown
}

// CanUnwrap reports whether this state currently represents a wrapped
// unit aggregate.
func (s state) CanUnwrap() bool {
	return s.IsInlined() && s.SubType != TagUnknown
}

// Wrap folds s into the state of a parentType aggregate of arity 1
// containing exactly s as its sole child. Precondition: s.CanWrap().
func (s state) Wrap(parentType Tag) state {
	if !s.CanWrap() {
		panic("resp: Wrap precondition violated: state is not wrap-eligible")
	}
	w := s
	w.SubType = s.Type
	w.Type = parentType
	return w
}

// Unwrap inverts Wrap: the child's original Type is recovered from
// SubType. Precondition: s.CanUnwrap().
func (s state) Unwrap() state {
	if !s.CanUnwrap() {
		panic("resp: Unwrap precondition violated: state is not a wrapped unit aggregate")
	}
	u := s
	u.Type = s.SubType
	u.SubType = TagUnknown
	return u
}

func newNullState(t Tag) state {
	return state{Storage: storageNull, Type: t}
}

func newEmptyState(t Tag) state {
	return state{Storage: storageEmpty, Type: t}
}

// newInlineBytesState copies payload (len <= InlineSize) into the
// state's inline area.
func newInlineBytesState(t Tag, payload []byte, subType Tag) (state, error) {
	if len(payload) > InlineSize {
		return state{}, fmt.Errorf("resp: inline payload of %d bytes exceeds InlineSize=%d", len(payload), InlineSize)
	}
	s := state{Storage: storageInlinedBytes, Type: t, SubType: subType, inlineLen: byte(len(payload))}
	copy(s.inline[:], payload)
	return s, nil
}

func newInlineUInt32State(t Tag, v uint32, subType Tag) state {
	return state{Storage: storageInlinedUInt32, Type: t, SubType: subType, u32: v}
}

func newInlineInt64State(t Tag, v int64, subType Tag) state {
	return state{Storage: storageInlinedInt64, Type: t, SubType: subType, i64: v}
}

func newInlineDoubleState(t Tag, v float64, subType Tag) state {
	return state{Storage: storageInlinedDouble, Type: t, SubType: subType, f64: v}
}

func newExternalState(t Tag, storage storageKind, start, end int) state {
	return state{Storage: storage, Type: t, Start: start, End: end}
}
