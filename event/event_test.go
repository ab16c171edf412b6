package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_CallbacksInvokedInRegistrationOrder(t *testing.T) {
	t.Parallel()

	e := New[int]()
	var order []int
	e.RegisterCallback(func(v int) { order = append(order, v*10+1) })
	e.RegisterCallback(func(v int) { order = append(order, v*10+2) })

	e.Signal(7)

	assert.Equal(t, []int{71, 72}, order)
}

func TestEvent_UnregisterCallbackStopsDelivery(t *testing.T) {
	t.Parallel()

	e := New[int]()
	calls := 0
	id := e.RegisterCallback(func(int) { calls++ })
	e.UnregisterCallback(id)

	e.Signal(1)
	assert.Equal(t, 0, calls)
}

func TestEvent_SignalPropagatesToObservers(t *testing.T) {
	t.Parallel()

	parent := New[string]()
	child := New[string]()
	parent.RegisterObserver(child)

	var got string
	child.RegisterCallback(func(v string) { got = v })

	parent.Signal("hello")
	assert.Equal(t, "hello", got)
}

func TestEvent_UnregisterObserverStopsPropagation(t *testing.T) {
	t.Parallel()

	parent := New[string]()
	child := New[string]()
	parent.RegisterObserver(child)
	parent.UnregisterObserver(child)

	var got string
	child.RegisterCallback(func(v string) { got = v })

	parent.Signal("hello")
	assert.Empty(t, got)
}

func TestEvent_RegisterObserverRejectsSelfCycle(t *testing.T) {
	t.Parallel()

	e := New[int]()
	assert.Panics(t, func() { e.RegisterObserver(e) })
}

func TestEvent_RegisterObserverRejectsDuplicate(t *testing.T) {
	t.Parallel()

	parent := New[int]()
	child := New[int]()
	parent.RegisterObserver(child)

	assert.Panics(t, func() { parent.RegisterObserver(child) })
}

func TestEvent_RegisterObserverRejectsImmediateCycle(t *testing.T) {
	t.Parallel()

	a := New[int]()
	b := New[int]()
	a.RegisterObserver(b)

	assert.Panics(t, func() { b.RegisterObserver(a) })
}
