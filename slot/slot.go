package slot

import (
	"github.com/ddirect/lastwrite"
	"github.com/ddirect/lastwrite/box"
)

// A Slot pairs a boxed value with the sequence number of its last
// assignment. The zero value is an empty slot with timestamp 0; a
// timestamp of 0 means the slot was never assigned. Assigning one Slot to
// another aliases the storage; use Clone for a value-like copy. It is not
// safe to call any method concurrently from different goroutines without
// external locking.
type Slot[T any] struct {
	value box.Box[T]
	ts    uint64
}

// Of returns a slot holding v with a freshly drawn timestamp.
func Of[T any](v T) Slot[T] {
	return Slot[T]{value: box.Of(v), ts: lastwrite.Next()}
}

// Assign stores v and stamps the slot with a fresh sequence number.
func (s *Slot[T]) Assign(v T) {
	s.ts = lastwrite.Next()
	s.value.Set(v)
}

// Get returns the slot value, first materializing the zero value if the
// slot is empty. The timestamp is never updated by this path, so a slot
// only ever touched through Get stays at timestamp 0 and is invisible to
// oneof resolution; Assign is the only way to make it visible.
func (s *Slot[T]) Get() *T {
	return s.value.GetOrCreate()
}

// Present has no side effects, unlike Get.
func (s *Slot[T]) Present() bool {
	return s.value.Present()
}

// Timestamp returns the sequence number of the last assignment, or 0 if
// the slot was never assigned.
func (s *Slot[T]) Timestamp() uint64 {
	return s.ts
}

// Clone returns a slot with a copy of the value and the same timestamp.
// No new sequence number is drawn.
func (s *Slot[T]) Clone() Slot[T] {
	return Slot[T]{value: s.value.Clone(), ts: s.ts}
}
