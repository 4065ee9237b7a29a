/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/compare_test.go
*/
package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualsAsciiIgnoreCaseInlineFastPath(t *testing.T) {
	a, _ := CreateString(TagSimpleString, "SET")
	b, _ := CreateString(TagSimpleString, "set")
	c, _ := CreateString(TagSimpleString, "GET")
	assert.True(t, a.EqualsAsciiIgnoreCase(b))
	assert.False(t, a.EqualsAsciiIgnoreCase(c))
}

func TestEqualsAsciiIgnoreCaseExternalFallback(t *testing.T) {
	long := make([]byte, InlineSize+4)
	for i := range long {
		long[i] = 'A'
	}
	lower := make([]byte, len(long))
	for i := range lower {
		lower[i] = 'a'
	}
	a, _ := Create(TagBlobString, long)
	b, _ := Create(TagBlobString, lower)
	assert.True(t, a.EqualsAsciiIgnoreCase(b))
}

func TestEqualsAsciiIgnoreCaseLengthMismatch(t *testing.T) {
	a, _ := CreateString(TagSimpleString, "abc")
	b, _ := CreateString(TagSimpleString, "abcd")
	assert.False(t, a.EqualsAsciiIgnoreCase(b))
}
