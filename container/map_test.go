package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_InsertionOrderPreserved(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int]()
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
}

func TestMap_DeleteCompactsAndPreservesOrder(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.True(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())

	v, ok := m.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMap_OverwritePreservesPosition(t *testing.T) {
	t.Parallel()
	m := NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, 10, v)
}
