package box

import "fmt"

// A Box holds at most one heap-allocated T. The zero value is an empty
// box. Assigning one Box to another aliases the storage; use Clone for a
// value-like copy. It is not safe to call any method concurrently from
// different goroutines without external locking.
type Box[T any] struct {
	p *T
}

// Of returns a box holding a copy of v in fresh storage.
func Of[T any](v T) Box[T] {
	return Box[T]{p: &v}
}

func (b *Box[T]) Present() bool {
	return b.p != nil
}

// Value returns the contained value. It panics if the box is empty; use
// GetOrCreate for an accessor that is always safe.
func (b *Box[T]) Value() *T {
	if b.p == nil {
		panic(fmt.Errorf("box: dereference of an empty box"))
	}
	return b.p
}

// GetOrCreate returns the contained value, first materializing the zero
// value if the box is empty. The box is present afterwards.
func (b *Box[T]) GetOrCreate() *T {
	if b.p == nil {
		b.p = new(T)
	}
	return b.p
}

func (b *Box[T]) Set(v T) {
	*b.GetOrCreate() = v
}

func (b *Box[T]) Reset() {
	b.p = nil
}

// Clone returns a box owning a copy of the contained value, or an empty
// box if b is empty.
func (b *Box[T]) Clone() Box[T] {
	if b.p == nil {
		return Box[T]{}
	}
	v := *b.p
	return Box[T]{p: &v}
}
