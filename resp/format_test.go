/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/format_test.go
*/
package resp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDoubleSentinels(t *testing.T) {
	assert.Equal(t, "+inf", FormatDouble(math.Inf(1)))
	assert.Equal(t, "-inf", FormatDouble(math.Inf(-1)))
	assert.Equal(t, "nan", FormatDouble(math.NaN()))
}

func TestFormatDoubleRoundTrip(t *testing.T) {
	for _, f := range []float64{0, -0.0, 1, -1, 3.14159265358979, 1e300, -1e-300} {
		s := FormatDouble(f)
		got, err := ParseDouble(s)
		require.NoError(t, err)
		assert.Equal(t, f, got, "round-trip of %v via %q", f, s)
	}
}

func TestParseDoubleSentinels(t *testing.T) {
	v, err := ParseDouble("+inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = ParseDouble("-inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	v, err = ParseDouble("nan")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}
