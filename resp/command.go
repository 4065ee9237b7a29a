/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/command.go
*/
package resp

import "sync"

// commandCache backs Command's pre-encoding of short ASCII command
// arrays: a command literal like "PING" is wrapped and re-wrapped into
// the same one-element Array on every call site that issues it, so
// caching the finished Value once is a clear win over re-running
// CreateString+CreateAggregate per call.
var commandCache sync.Map // string -> Value

// Command produces an Array of one BlobString from an ASCII-only
// literal, caching the result so repeated calls with the same literal
// skip re-running the unit-aggregate wrap logic. Panics if ascii
// contains a non-ASCII byte, since every call site passes a fixed
// command name known at compile time.
func Command(ascii string) Value {
	if cached, ok := commandCache.Load(ascii); ok {
		return cached.(Value)
	}
	for i := 0; i < len(ascii); i++ {
		if ascii[i] > 0x7f {
			panic("resp: Command: non-ASCII byte in " + ascii)
		}
	}
	blob, err := CreateString(TagBlobString, ascii)
	if err != nil {
		panic(err) // CreateString(BlobString, ...) cannot fail
	}

	// A literal of at most InlineSize bytes is an inline child, which
	// CreateAggregate folds into the parent's state via the
	// unit-aggregate wrap (see state.CanWrap/Wrap) without retaining
	// the slice, so the Lease goes back to the pool. A longer literal
	// is a StringSegment child that cannot wrap; the aggregate then
	// keeps the slice as its backing storage and the Lease is not
	// released.
	lease := NewLease(1)
	lease.Values = append(lease.Values, blob)
	arr, err := CreateAggregate(TagArray, lease.Values)
	if arr.st.CanUnwrap() {
		lease.Release()
	}
	if err != nil {
		panic(err) // arity/parity is trivially satisfied for one child
	}
	commandCache.Store(ascii, arr)
	return arr
}
