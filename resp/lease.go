/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/lease.go
*/
package resp

import "sync"

// valuePool recycles the backing arrays of children slices built to
// hand to CreateAggregate, so such a slice doesn't need a fresh
// allocation every time once its Lease is returned via Release.
var valuePool = sync.Pool{
	New: func() any {
		return make([]Value, 0, 16)
	},
}

// Lease is a pooled []Value the caller fills in before passing it to
// CreateAggregate, then returns with Release. CreateAggregate keeps
// the slice as the aggregate's backing storage unless it folds a
// single wrap-eligible child into the parent's state, so a Lease
// backing a live aggregate is still in use. Aliasing the Values slice
// after Release is a caller bug.
type Lease struct {
	Values []Value
}

// NewLease returns a Lease with at least capacity n, reusing a pooled
// backing array when one of sufficient capacity is available.
func NewLease(n int) *Lease {
	buf := valuePool.Get().([]Value)
	if cap(buf) < n {
		buf = make([]Value, 0, n)
	}
	return &Lease{Values: buf[:0]}
}

// Release returns the Lease's backing array to the pool. The Lease
// must not be used afterward.
func (l *Lease) Release() {
	if l == nil || l.Values == nil {
		return
	}
	//lint:ignore SA6002 slice of Value is the pooled type by design
	valuePool.Put(l.Values[:0])
	l.Values = nil
}
