// Package oneof provides containers holding one independent slot per
// alternative type, where "the current alternative" is not a stored tag
// but the slot assigned most recently, as ordered by the lastwrite clock.
// Alternatives are addressed positionally, so the same type may appear
// more than once and simply yields independent slots. No method is safe
// for concurrent use on one container without external locking.
package oneof

import "github.com/ddirect/lastwrite/slot"

// Of1 is the single-alternative degenerate; it behaves as a bare slot.
type Of1[A any] struct {
	a slot.Slot[A]
}

func (o *Of1[A]) A() *slot.Slot[A] {
	return &o.a
}

type Of2[A, B any] struct {
	a slot.Slot[A]
	b slot.Slot[B]
}

func (o *Of2[A, B]) A() *slot.Slot[A] {
	return &o.a
}

func (o *Of2[A, B]) B() *slot.Slot[B] {
	return &o.b
}

type Of3[A, B, C any] struct {
	a slot.Slot[A]
	b slot.Slot[B]
	c slot.Slot[C]
}

func (o *Of3[A, B, C]) A() *slot.Slot[A] {
	return &o.a
}

func (o *Of3[A, B, C]) B() *slot.Slot[B] {
	return &o.b
}

func (o *Of3[A, B, C]) C() *slot.Slot[C] {
	return &o.c
}

type Of4[A, B, C, D any] struct {
	a slot.Slot[A]
	b slot.Slot[B]
	c slot.Slot[C]
	d slot.Slot[D]
}

func (o *Of4[A, B, C, D]) A() *slot.Slot[A] {
	return &o.a
}

func (o *Of4[A, B, C, D]) B() *slot.Slot[B] {
	return &o.b
}

func (o *Of4[A, B, C, D]) C() *slot.Slot[C] {
	return &o.c
}

func (o *Of4[A, B, C, D]) D() *slot.Slot[D] {
	return &o.d
}
