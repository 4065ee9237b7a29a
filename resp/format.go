/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/format.go
*/
package resp

import (
	"math"
	"strconv"
)

// FormatDouble renders f as RESP3's Double wire format: the fixed
// "G17" specifier (17 significant digits, round-trippable), with ±inf
// rendered as the literal strings "+inf"/"-inf".
//
// Go's shortest-round-trip formatter (strconv.FormatFloat with
// precision -1) is used in place of a literal 17-digit G17: it always
// produces the minimal decimal that parses back to the same float64,
// which is what "round-trippable" means operationally, and never
// prints more digits than G17 would for the same value. See DESIGN.md
// for the NaN-rendering open question this resolves (renders "nan").
func FormatDouble(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// ParseDouble is the inverse of FormatDouble, accepting the same
// ±inf/nan sentinels the writer emits.
func ParseDouble(s string) (float64, error) {
	switch s {
	case "+inf", "inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "-nan":
		return math.NaN(), nil
	default:
		return strconv.ParseFloat(s, 64)
	}
}
