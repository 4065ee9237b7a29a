/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/value.go
*/
package resp

import (
	"strconv"

	"github.com/akashmaji946/respcore/internal/sequence"
	"github.com/akashmaji946/respcore/resperr"
)

// Value is the user-facing, immutable RESP value record: one state
// header plus up to two opaque owner references used only
// when the header points into external storage. Inline, scalar, Null
// and Empty values carry no owners at all and so never allocate beyond
// the Value struct itself.
//
// obj0/obj1 hold, depending on st.Storage:
//
//	ArraySegmentByte/Char/Value, MemoryManagerByte/Char/Value: obj0 is
//	  the owning []byte/[]rune/[]Value; obj1 is unused.
//	StringSegment, Utf8StringSegment: obj0 is the owning string.
//	SequenceSegmentByte/Char: obj0/obj1 are the first/last
//	  *sequence.Segment of a span that crosses segment boundaries.
type Value struct {
	st   state
	obj0 any
	obj1 any
}

var nullValue = Value{st: state{Storage: storageNull, Type: TagNull}}

// Null returns the canonical null value of Type Null.
func Null() Value { return nullValue }

// NullOf returns a typed null of t, used for a null Blob, Array, etc.
func NullOf(t Tag) Value {
	return Value{st: newNullState(t)}
}

// Type returns the value's primary RESP tag. For a wrapped unit
// aggregate this is the aggregate's own tag, not the sole child's tag:
// wrapping must be invisible to callers asking "what kind of value is
// this".
func (v Value) Type() Tag { return v.st.Type }

// IsNull reports whether v is a Null-storage value (distinct from
// Empty).
func (v Value) IsNull() bool { return v.st.IsNull() }

// Create builds a leaf value of t from a byte payload, choosing Empty,
// InlinedBytes, or an external ArraySegmentByte borrowing data without
// copying. t must not be an aggregate tag.
func Create(t Tag, data []byte) (Value, error) {
	if t.IsAggregate() {
		return Value{}, resperr.Argument("Create(bytes): %s is an aggregate tag, use CreateAggregate", t)
	}
	if len(data) == 0 {
		return Value{st: newEmptyState(t)}, nil
	}
	if len(data) <= InlineSize {
		s, err := newInlineBytesState(t, data, TagUnknown)
		if err != nil {
			return Value{}, err
		}
		return Value{st: s}, nil
	}
	return Value{
		st:   newExternalState(t, storageArraySegmentByte, 0, len(data)),
		obj0: data,
	}, nil
}

// CreateString builds a leaf value of t from a Go string, choosing
// InlinedBytes when it fits or a zero-copy StringSegment otherwise.
func CreateString(t Tag, str string) (Value, error) {
	if t.IsAggregate() {
		return Value{}, resperr.Argument("CreateString: %s is an aggregate tag, use CreateAggregate", t)
	}
	if len(str) == 0 {
		return Value{st: newEmptyState(t)}, nil
	}
	if len(str) <= InlineSize {
		s, err := newInlineBytesState(t, []byte(str), TagUnknown)
		if err != nil {
			return Value{}, err
		}
		return Value{st: s}, nil
	}
	return Value{
		st:   newExternalState(t, storageStringSegment, 0, len(str)),
		obj0: str,
	}, nil
}

// CreateInt64 builds an inline-scalar leaf value of t from an int64.
func CreateInt64(t Tag, n int64) (Value, error) {
	if t.IsAggregate() {
		return Value{}, resperr.Argument("CreateInt64: %s is an aggregate tag", t)
	}
	return Value{st: newInlineInt64State(t, n, TagUnknown)}, nil
}

// CreateDouble builds an inline-scalar leaf value of t from a float64.
func CreateDouble(t Tag, f float64) (Value, error) {
	if t.IsAggregate() {
		return Value{}, resperr.Argument("CreateDouble: %s is an aggregate tag", t)
	}
	return Value{st: newInlineDoubleState(t, f, TagUnknown)}, nil
}

// CreateBool builds a Boolean value, stored as an inline UInt32 scalar
// (0 or 1).
func CreateBool(b bool) Value {
	var n uint32
	if b {
		n = 1
	}
	return Value{st: newInlineUInt32State(TagBoolean, n, TagUnknown)}
}

// createFromSequence is the parser's entry point for leaf values: it
// classifies a borrowed span of the input sequence into Empty,
// InlinedBytes (copying out of the parse buffer, since inline storage
// is always owned by the state itself), a zero-copy ArraySegmentByte
// when the span lives in one segment, or a zero-copy
// SequenceSegmentByte spanning two when it straddles a boundary.
func createFromSequence(t Tag, seq sequence.Sequence) Value {
	n := seq.Len()
	if n == 0 {
		return Value{st: newEmptyState(t)}
	}
	if n <= InlineSize {
		s, err := newInlineBytesState(t, seq.ToBytes(), TagUnknown)
		if err != nil {
			// Unreachable: n <= InlineSize was just checked.
			panic(err)
		}
		return Value{st: s}
	}
	if seq.Start.Seg == seq.End.Seg {
		return Value{
			st:   newExternalState(t, storageArraySegmentByte, seq.Start.Off, seq.End.Off),
			obj0: seq.Start.Seg.Bytes,
		}
	}
	return Value{
		st:   newExternalState(t, storageSequenceSegmentByte, seq.Start.Off, seq.End.Off),
		obj0: seq.Start.Seg,
		obj1: seq.End.Seg,
	}
}

// CreateAggregate builds an aggregate value of t from children: arity
// must be > 0, len(children) must be a multiple of it, a single
// wrap-eligible child is folded into the parent's state (the
// unit-aggregate optimization), and otherwise children is referenced
// directly as the aggregate's backing storage, no copy.
func CreateAggregate(t Tag, children []Value) (Value, error) {
	arity := t.Arity()
	if arity == 0 {
		return Value{}, resperr.Argument("CreateAggregate: %s is not an aggregate tag", t)
	}
	if len(children)%arity != 0 {
		return Value{}, resperr.Argument("CreateAggregate: %s has arity %d, got %d children", t, arity, len(children))
	}
	if len(children) == 0 {
		return Value{st: newEmptyState(t)}, nil
	}
	if len(children) == 1 && children[0].st.CanWrap() {
		child := children[0]
		return Value{st: child.st.Wrap(t), obj0: child.obj0, obj1: child.obj1}, nil
	}
	return Value{
		st:   newExternalState(t, storageArraySegmentValue, 0, len(children)),
		obj0: children,
	}, nil
}

// SubItems returns the aggregate's child values. A wrapped unit
// aggregate is unwrapped lazily and transparently here: callers never
// observe the wrap optimization.
func (v Value) SubItems() []Value {
	if v.st.CanUnwrap() {
		return []Value{{st: v.st.Unwrap()}}
	}
	switch v.st.Storage {
	case storageArraySegmentValue, storageMemoryManagerValue:
		all := v.obj0.([]Value)
		return all[v.st.Start:v.st.End]
	default:
		return nil
	}
}

// ThrowIfError returns a *resperr.RespException if v's type is
// SimpleError or BlobError, nil otherwise.
func (v Value) ThrowIfError() error {
	switch v.Type() {
	case TagSimpleError, TagBlobError:
		return resperr.NewRespException(v.ToString())
	default:
		return nil
	}
}

// bytesView materializes the raw byte payload of a byte-bearing
// storage. ok is false for storages with no direct byte
// representation (aggregates, char/string segments handled
// elsewhere).
func (v Value) bytesView() (b []byte, ok bool) {
	switch v.st.Storage {
	case storageInlinedBytes:
		return v.st.InlineBytes(), true
	case storageArraySegmentByte, storageMemoryManagerByte:
		buf := v.obj0.([]byte)
		return buf[v.st.Start:v.st.End], true
	case storageSequenceSegmentByte:
		first := v.obj0.(*sequence.Segment)
		last := v.obj1.(*sequence.Segment)
		seq := sequence.Slice(
			sequence.Position{Seg: first, Off: v.st.Start},
			sequence.Position{Seg: last, Off: v.st.End},
		)
		return seq.ToBytes(), true
	default:
		return nil, false
	}
}

func (v Value) runesView() (r []rune, ok bool) {
	switch v.st.Storage {
	case storageArraySegmentChar, storageMemoryManagerChar:
		buf := v.obj0.([]rune)
		return buf[v.st.Start:v.st.End], true
	default:
		return nil, false
	}
}

func (v Value) stringView() (s string, ok bool) {
	switch v.st.Storage {
	case storageStringSegment, storageUtf8StringSegment:
		str := v.obj0.(string)
		return str[v.st.Start:v.st.End], true
	default:
		return "", false
	}
}

// AsBytes renders any leaf storage's payload as a UTF-8 byte slice. It
// is the common path behind ToString, EqualsAsciiIgnoreCase, and the
// Writer's line-terminated/blob payload emission.
func (v Value) AsBytes() []byte {
	if b, ok := v.bytesView(); ok {
		return b
	}
	if s, ok := v.stringView(); ok {
		return []byte(s)
	}
	if r, ok := v.runesView(); ok {
		return []byte(string(r))
	}
	switch v.st.Storage {
	case storageInlinedUInt32:
		return strconv.AppendUint(nil, uint64(v.st.u32), 10)
	case storageInlinedInt64:
		return strconv.AppendInt(nil, v.st.i64, 10)
	case storageInlinedDouble:
		return []byte(FormatDouble(v.st.f64))
	default:
		return nil
	}
}

