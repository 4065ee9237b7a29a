/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/downgrade_test.go
*/
package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDowngradeTable(t *testing.T) {
	cases := map[Tag]Tag{
		TagBoolean:        TagSimpleString,
		TagDouble:         TagSimpleString,
		TagBigNumber:      TagSimpleString,
		TagVerbatimString: TagBlobString,
		TagPush:           TagArray,
		TagMap:            TagArray,
		TagSet:            TagArray,
		TagArray:          TagArray,
		TagBlobString:     TagBlobString,
		TagSimpleString:   TagSimpleString,
	}
	for in, want := range cases {
		assert.Equal(t, want, Downgrade(in), "Downgrade(%s)", in)
	}
}

func TestDowngradeIsIdempotent(t *testing.T) {
	for t2 := range knownTags {
		once := Downgrade(t2)
		twice := Downgrade(once)
		assert.Equal(t, once, twice, "Downgrade should be a fixed point on its own output for %s", t2)
	}
}

func TestDowngradeIfNeededRespectsVersion(t *testing.T) {
	assert.Equal(t, TagMap, downgradeIfNeeded(TagMap, RESP3))
	assert.Equal(t, TagArray, downgradeIfNeeded(TagMap, RESP2))
}
