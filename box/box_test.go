package box_test

import (
	"testing"

	"github.com/ddirect/lastwrite/box"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ZeroValueIsEmpty(t *testing.T) {
	var b box.Box[int]
	assert.False(t, b.Present())
	assert.Panics(t, func() { b.Value() })
}

func Test_Of(t *testing.T) {
	b := box.Of("hello")
	require.True(t, b.Present())
	assert.Equal(t, "hello", *b.Value())
}

func Test_SetAndReset(t *testing.T) {
	var b box.Box[int]
	b.Set(5)
	require.True(t, b.Present())
	assert.Equal(t, 5, *b.Value())

	b.Set(7)
	assert.Equal(t, 7, *b.Value())

	b.Reset()
	assert.False(t, b.Present())
}

func Test_GetOrCreateVivifies(t *testing.T) {
	var b box.Box[int]
	p := b.GetOrCreate()
	assert.True(t, b.Present())
	assert.Equal(t, 0, *p)

	// the same storage is returned once created
	*p = 42
	assert.Same(t, p, b.GetOrCreate())
	assert.Equal(t, 42, *b.Value())
}

func Test_CloneIsDeep(t *testing.T) {
	b := box.Of(1)
	c := b.Clone()
	*b.Value() = 2
	assert.Equal(t, 1, *c.Value())

	var empty box.Box[int]
	e := empty.Clone()
	assert.False(t, e.Present())
}

func Test_Visit(t *testing.T) {
	var b box.Box[int]

	r, ok := box.Visit(&b, func(v int) string {
		t.Fatal("handler invoked on an empty box")
		return ""
	})
	assert.False(t, ok)
	assert.Zero(t, r)

	b.Set(3)
	r, ok = box.Visit(&b, func(v int) string {
		return "seen"
	})
	assert.True(t, ok)
	assert.Equal(t, "seen", r)
}
