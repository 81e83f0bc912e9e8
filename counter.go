// Package lastwrite provides the process-wide logical clock which orders
// all slot assignments. Subpackages build on it: box holds zero-or-one
// heap-indirected value, slot pairs a box with the sequence number of its
// last assignment, and oneof resolves the most recently assigned of a
// fixed list of alternatives.
package lastwrite

import "sync/atomic"

// A Counter issues strictly increasing, unique sequence numbers. The zero
// value is ready to use and issues 1 first. Safe for concurrent use.
type Counter struct {
	n atomic.Uint64
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() uint64 {
	return c.n.Add(1)
}

// Current returns the last value issued by Next, or 0 if Next was never
// called.
func (c *Counter) Current() uint64 {
	return c.n.Load()
}

// counter is the process-wide clock. It lives for the whole process and is
// never reset; all assignments in all slots draw from it, so their
// timestamps form one total order.
var counter Counter

// Next draws the next sequence number from the process-wide clock.
func Next() uint64 {
	return counter.Next()
}

// Current returns the last sequence number drawn from the process-wide
// clock.
func Current() uint64 {
	return counter.Current()
}
