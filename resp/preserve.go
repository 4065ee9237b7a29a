/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/preserve.go
*/
package resp

import (
	"strings"

	"github.com/akashmaji946/respcore/resperr"
)

// Preserve returns a Value with no outstanding reference to caller-
// owned storage: borrowed ArraySegment*/StringSegment spans are
// copied into freshly allocated, Value-owned storage, and
// inline/scalar/Null/Empty values (already self-contained) are returned
// unchanged.
//
// Preserve recurses into an aggregate's children and preserves each
// one transitively, so a preserved Array of preserved Arrays never
// aliases the original parse buffer at any depth. Inline, scalar, Null
// and Empty children are returned unchanged; every byte, char or
// string segment child is copied again, even one that a previous
// Preserve already copied.
func (v Value) Preserve() (Value, error) {
	switch v.st.Storage {
	case storageUninitialized, storageNull, storageEmpty,
		storageInlinedBytes, storageInlinedUInt32, storageInlinedInt64, storageInlinedDouble:
		return v, nil

	case storageArraySegmentByte, storageMemoryManagerByte:
		buf := v.obj0.([]byte)
		owned := append([]byte(nil), buf[v.st.Start:v.st.End]...)
		return Value{st: newExternalState(v.st.Type, storageArraySegmentByte, 0, len(owned)), obj0: owned}, nil

	case storageSequenceSegmentByte:
		// bytesView already materializes a fresh copy via
		// sequence.Sequence.ToBytes for a segment-spanning span.
		b, _ := v.bytesView()
		return Value{st: newExternalState(v.st.Type, storageArraySegmentByte, 0, len(b)), obj0: b}, nil

	case storageStringSegment, storageUtf8StringSegment:
		str := v.obj0.(string)
		owned := strings.Clone(str[v.st.Start:v.st.End])
		return Value{st: newExternalState(v.st.Type, v.st.Storage, 0, len(owned)), obj0: owned}, nil

	case storageArraySegmentChar, storageMemoryManagerChar:
		buf := v.obj0.([]rune)
		owned := append([]rune(nil), buf[v.st.Start:v.st.End]...)
		return Value{st: newExternalState(v.st.Type, storageArraySegmentChar, 0, len(owned)), obj0: owned}, nil

	case storageArraySegmentValue, storageMemoryManagerValue:
		all := v.obj0.([]Value)
		children := all[v.st.Start:v.st.End]
		owned := make([]Value, len(children))
		for i, c := range children {
			pc, err := c.Preserve()
			if err != nil {
				return Value{}, err
			}
			owned[i] = pc
		}
		return Value{st: newExternalState(v.st.Type, storageArraySegmentValue, 0, len(owned)), obj0: owned}, nil

	default:
		return Value{}, resperr.StorageKindNotImplemented(v.st.Storage)
	}
}
