/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/preserve_test.go
*/
package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreserveInlineIsNoOp(t *testing.T) {
	v, err := CreateString(TagSimpleString, "OK")
	require.NoError(t, err)
	p, err := v.Preserve()
	require.NoError(t, err)
	assert.Equal(t, v, p)
}

func TestPreserveCopiesExternalByteStorage(t *testing.T) {
	buf := make([]byte, InlineSize+4)
	for i := range buf {
		buf[i] = 'x'
	}
	v, err := Create(TagBlobString, buf)
	require.NoError(t, err)

	preserved, err := v.Preserve()
	require.NoError(t, err)

	// Mutate the original buffer; the preserved value must be
	// unaffected since it owns a copy.
	for i := range buf {
		buf[i] = 'y'
	}
	assert.Equal(t, repeat('x', InlineSize+4), preserved.ToString())
}

func TestPreserveRecursesIntoAggregateChildren(t *testing.T) {
	long := make([]byte, InlineSize+2)
	for i := range long {
		long[i] = 'z'
	}
	child, err := Create(TagBlobString, long)
	require.NoError(t, err)
	short, err := CreateString(TagBlobString, "hi")
	require.NoError(t, err)

	arr, err := CreateAggregate(TagArray, []Value{child, short})
	require.NoError(t, err)

	preserved, err := arr.Preserve()
	require.NoError(t, err)

	for i := range long {
		long[i] = 'q'
	}

	items := preserved.SubItems()
	require.Len(t, items, 2)
	assert.Equal(t, repeat('z', InlineSize+2), items[0].ToString())
	assert.Equal(t, "hi", items[1].ToString())
}

func repeat(b byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return string(out)
}

func TestPreserveIsIdempotent(t *testing.T) {
	v, err := Create(TagBlobString, []byte(repeat('p', InlineSize+3)))
	require.NoError(t, err)

	once, err := v.Preserve()
	require.NoError(t, err)
	twice, err := once.Preserve()
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestPreserveWrappedUnitAggregateIsNoOp(t *testing.T) {
	child, err := CreateString(TagBlobString, "PING")
	require.NoError(t, err)
	arr, err := CreateAggregate(TagArray, []Value{child})
	require.NoError(t, err)

	preserved, err := arr.Preserve()
	require.NoError(t, err)
	assert.Equal(t, arr, preserved)
}
