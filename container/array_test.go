package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray_Scenario1(t *testing.T) {
	t.Parallel()

	a := NewArray[uint32](3, 5, 10, 20)
	assert.EqualValues(t, 20, a.Get(2))
	assert.Panics(t, func() {
		a.Get(3)
	})
}

func TestArray_FrontBack(t *testing.T) {
	t.Parallel()
	a := NewArray[int](3, 1, 2, 3)
	assert.Equal(t, 1, a.Front())
	assert.Equal(t, 3, a.Back())
}

func TestArrayIterator_OutOfRangeRaises(t *testing.T) {
	t.Parallel()
	a := NewArray[int](3, 1, 2, 3)
	assert.Panics(t, func() {
		a.Begin().Advance(-1)
	})
	assert.Panics(t, func() {
		a.End().Advance(2)
	})
}
