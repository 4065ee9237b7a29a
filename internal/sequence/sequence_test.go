/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/internal/sequence/sequence_test.go
*/
package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBytesEmpty(t *testing.T) {
	seq := FromBytes(nil)
	require.True(t, seq.IsEmpty())
	require.Equal(t, 0, seq.Len())
}

func TestSliceAcrossCursorPositions(t *testing.T) {
	seq := FromSegments([][]byte{[]byte("hello "), []byte("world")})
	c := NewCursor(seq)
	start := c.Position()
	require.True(t, c.Advance(6))
	mid := c.Position()
	require.True(t, c.Advance(5))
	end := c.Position()

	require.Equal(t, "hello ", string(Slice(start, mid).ToBytes()))
	require.Equal(t, "world", string(Slice(mid, end).ToBytes()))
	require.Equal(t, "hello world", string(Slice(start, end).ToBytes()))
}

func TestAdvanceReportsFalseWhenExhausted(t *testing.T) {
	seq := FromBytes([]byte("abc"))
	c := NewCursor(seq)
	require.False(t, c.Advance(10))
}
