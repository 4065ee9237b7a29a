/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/tag_test.go
*/
package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagArity(t *testing.T) {
	assert.Equal(t, 1, TagArray.Arity())
	assert.Equal(t, 1, TagSet.Arity())
	assert.Equal(t, 1, TagPush.Arity())
	assert.Equal(t, 2, TagMap.Arity())
	assert.Equal(t, 2, TagAttribute.Arity())
	assert.Equal(t, 0, TagBlobString.Arity())
}

func TestTagFamilies(t *testing.T) {
	assert.True(t, TagBlobString.IsBlob())
	assert.True(t, TagSimpleString.IsLineTerminated())
	assert.True(t, TagArray.IsAggregate())
	assert.False(t, TagUnknown.IsKnown())
	assert.False(t, Tag('?').IsKnown())
}
