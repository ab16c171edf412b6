package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional_ClearLeavesEmpty(t *testing.T) {
	t.Parallel()
	o := Some(42)
	o.Clear()
	assert.True(t, o.IsEmpty())
}

func TestOptional_EmplaceReplaces(t *testing.T) {
	t.Parallel()
	o := Some(1)
	o.Emplace(2)
	assert.Equal(t, 2, o.Get())
}

func TestOptional_GetOnEmptyRaises(t *testing.T) {
	t.Parallel()
	o := None[int]()
	assert.Panics(t, func() {
		o.Get()
	})
}

func TestOptional_Take(t *testing.T) {
	t.Parallel()
	o := Some("hi")
	v, ok := o.Take()
	assert.True(t, ok)
	assert.Equal(t, "hi", v)
	assert.True(t, o.IsEmpty())
}

func TestUniquePtr_MoveLeavesSourceEmpty(t *testing.T) {
	t.Parallel()
	p := MakeUniquePtr(7)
	v, ok := p.Move()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, p.IsEmpty())
}

func TestUniquePtr_CastRoundTrip(t *testing.T) {
	t.Parallel()
	p := MakeUniquePtr[any](namedThing{"x"})
	casted, ok := CastUniquePtr[namedThing](&p)
	assert.True(t, ok)
	assert.Equal(t, "x", casted.Get().Name())
	assert.True(t, p.IsEmpty())
}

type namedThing struct{ name string }

func (n namedThing) Name() string { return n.name }
