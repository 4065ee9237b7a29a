/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/compare.go
*/
package resp

// ToString renders v as text: bytes/chars/strings pass through as
// UTF-8, integers are decimal, and Double uses the G17 round-trip
// format with ±inf sentinels.
func (v Value) ToString() string {
	return string(v.AsBytes())
}

// EqualsAsciiIgnoreCase compares two values as ASCII case-insensitive
// text: a fast path for two equal-length inlined payloads masking each
// byte with 0x20, and a materialize-then-compare fallback otherwise.
// The result is only meaningful for ASCII alphanumerics/symbols;
// non-ASCII bytes give an unspecified result.
func (v Value) EqualsAsciiIgnoreCase(other Value) bool {
	if v.st.Storage == storageInlinedBytes && other.st.Storage == storageInlinedBytes &&
		v.st.inlineLen == other.st.inlineLen {
		return asciiEqualFold(v.st.InlineBytes(), other.st.InlineBytes())
	}
	a, b := v.AsBytes(), other.AsBytes()
	if len(a) != len(b) {
		return false
	}
	return asciiEqualFold(a, b)
}

func asciiEqualFold(a, b []byte) bool {
	for i := range a {
		if a[i]|0x20 != b[i]|0x20 {
			return false
		}
	}
	return true
}
