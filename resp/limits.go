/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/limits.go
*/
package resp

import (
	"os"
	"strconv"
)

// InlineSize is the largest payload, in bytes, that is packed directly
// into a State rather than referencing external storage.
const InlineSize = 12

// DefaultMaxNestingDepth bounds recursive aggregate parsing.
const DefaultMaxNestingDepth = 32

// Limits bounds the parser's recursion. No config file format of its
// own; DefaultLimits reads an environment-variable override.
type Limits struct {
	MaxNestingDepth int
}

// DefaultLimits returns the recommended limits, overridable by the
// RESP_MAX_DEPTH environment variable.
func DefaultLimits() Limits {
	depth := DefaultMaxNestingDepth
	if v := os.Getenv("RESP_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			depth = n
		}
	}
	return Limits{MaxNestingDepth: depth}
}
