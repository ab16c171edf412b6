package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_EraseRange_Scenario2(t *testing.T) {
	t.Parallel()

	a := NewList[uint32](0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	a.EraseRange(3, a.Len()-3)

	expected := NewList[uint32](0, 1, 2, 7, 8, 9)
	assert.True(t, ListsEqual(a, expected))
}

func TestList_PushPopFrontBack(t *testing.T) {
	t.Parallel()

	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)
	require.Equal(t, []int{0, 1, 2}, l.Slice())

	assert.Equal(t, 2, l.PopBack())
	assert.Equal(t, 0, l.PopFront())
	assert.Equal(t, []int{1}, l.Slice())
}

func TestList_InsertAtEnd(t *testing.T) {
	t.Parallel()
	l := NewList[int](1, 2, 3)
	l.Insert(l.Len(), 4)
	assert.Equal(t, []int{1, 2, 3, 4}, l.Slice())
}

func TestList_EraseEndRaises(t *testing.T) {
	t.Parallel()
	l := NewList[int](1, 2, 3)
	assert.Panics(t, func() {
		l.Erase(l.Len())
	})
}

func TestList_SelfAppend(t *testing.T) {
	t.Parallel()
	l := NewList[int](1, 2, 3)
	l.Append(l.Slice())
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, l.Slice())
}

func TestList_Reserve_NeverShrinks(t *testing.T) {
	t.Parallel()
	l := NewList[int]()
	l.Reserve(100)
	cap1 := l.Cap()
	l.Reserve(1)
	assert.Equal(t, cap1, l.Cap())
}

func TestList_Equal(t *testing.T) {
	t.Parallel()
	a := NewList[int](1, 2, 3)
	b := NewList[int](1, 2, 3)
	c := NewList[int](1, 2)
	assert.True(t, ListsEqual(a, b))
	assert.False(t, ListsEqual(a, c))
}

func TestIterator_OutOfRangeRaises(t *testing.T) {
	t.Parallel()
	l := NewList[int](1, 2, 3)
	begin := l.Begin()
	assert.Panics(t, func() {
		begin.Advance(-1)
	})
	end := l.End()
	assert.Panics(t, func() {
		end.Advance(2)
	})
}

func TestList_InvariantSizeLEQCapacity(t *testing.T) {
	t.Parallel()
	l := NewList[int]()
	for i := 0; i < 50; i++ {
		l.PushBack(i)
		assert.LessOrEqual(t, l.Len(), l.Cap())
	}
	assert.Equal(t, 50, l.Len())
}
