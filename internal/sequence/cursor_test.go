/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/internal/sequence/cursor_test.go
*/
package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorReadsAcrossSegments(t *testing.T) {
	seq := FromSegments([][]byte{[]byte("$5\r"), []byte("\nhel"), []byte("lo\r\n")})
	c := NewCursor(seq)

	b, ok := c.ReadByte()
	require.True(t, ok)
	require.Equal(t, byte('$'), b)

	res := c.TryReadToEndOfLine()
	require.True(t, res.Complete)
	require.Equal(t, []byte("5"), res.Line.ToBytes())

	data, ok := c.TryReadBytes(5)
	require.True(t, ok)
	require.Equal(t, []byte("hello"), data.ToBytes())

	res = c.TryReadToEndOfLine()
	require.True(t, res.Complete)
	require.True(t, res.Line.IsEmpty())
}

func TestCursorIncompleteDoesNotAdvance(t *testing.T) {
	seq := FromBytes([]byte("$5\r"))
	c := NewCursor(seq)
	start := c.Position()

	res := c.TryReadToEndOfLine()
	require.False(t, res.Complete)
	require.False(t, res.BadNewline)
	require.Equal(t, start, c.Position())
}

func TestCursorBadNewline(t *testing.T) {
	seq := FromBytes([]byte("$5\rX"))
	c := NewCursor(seq)
	res := c.TryReadToEndOfLine()
	require.False(t, res.Complete)
	require.True(t, res.BadNewline)
	require.Equal(t, byte('X'), res.BadByte)
}

func TestSequenceLenAndToBytes(t *testing.T) {
	seq := FromSegments([][]byte{[]byte("abc"), []byte(""), []byte("de")})
	require.Equal(t, 5, seq.Len())
	require.Equal(t, []byte("abcde"), seq.ToBytes())
}
