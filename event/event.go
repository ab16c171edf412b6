// Package event implements the engine's multi-listener event tree:
// direct callbacks plus forward/observer links between Event instances.
package event

import "sync"

// CallbackID identifies a registered callback for later removal.
type CallbackID uint64

// Event[Args] holds a registration-ordered callback list plus a set of
// observer Events that also receive every Signal. The observer/observed
// link is tracked on both sides (grounded on eventloop/registry.go's "both
// sides track the link" shape) so UnregisterObserver can unlink from
// either end without a reverse scan.
type Event[Args any] struct {
	mu sync.Mutex
	nextID CallbackID
	callbacks map[CallbackID]func(Args)
	order []CallbackID
	observers []*Event[Args]
	observedBy []*Event[Args]
}

// New constructs an empty Event.
func New[Args any]() *Event[Args] {
	return &Event[Args]{callbacks: make(map[CallbackID]func(Args))}
}

// RegisterCallback appends fn to the callback list and returns its id.
func (e *Event[Args]) RegisterCallback(fn func(Args)) CallbackID {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.callbacks[id] = fn
	e.order = append(e.order, id)
	return id
}

// UnregisterCallback removes the callback registered under id.
func (e *Event[Args]) UnregisterCallback(id CallbackID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.callbacks[id]; !ok {
		return
	}
	delete(e.callbacks, id)
	for i, oid := range e.order {
		if oid == id {
			e.order = append(e.order[:i:i], e.order[i+1:]...)
			break
		}
	}
}

// RegisterObserver links other as a forward observer of e: e.Signal will
// also invoke other.Signal. Development builds reject an immediate cycle
// (other == e, or other already observes e) and a duplicate registration.
func (e *Event[Args]) RegisterObserver(other *Event[Args]) {
	if other == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if other == e {
		panic("event: RegisterObserver: immediate self-cycle")
	}
	for _, o := range e.observers {
		if o == other {
			panic("event: RegisterObserver: duplicate observer")
		}
	}
	for _, o := range e.observedBy {
		if o == other {
			panic("event: RegisterObserver: immediate cycle")
		}
	}

	e.observers = append(e.observers, other)

	other.mu.Lock()
	other.observedBy = append(other.observedBy, e)
	other.mu.Unlock()
}

// UnregisterObserver unlinks other from e on both sides.
func (e *Event[Args]) UnregisterObserver(other *Event[Args]) {
	if other == nil {
		return
	}

	e.mu.Lock()
	for i, o := range e.observers {
		if o == other {
			e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
			break
		}
	}
	e.mu.Unlock()

	other.mu.Lock()
	for i, o := range other.observedBy {
		if o == e {
			other.observedBy = append(other.observedBy[:i:i], other.observedBy[i+1:]...)
			break
		}
	}
	other.mu.Unlock()
}

// Signal invokes every registered callback in registration order, then
// calls Signal on each observer in registration order, all synchronously
// on the caller's goroutine: there is no queueing.
func (e *Event[Args]) Signal(args Args) {
	e.mu.Lock()
	order := append([]CallbackID(nil), e.order...)
	callbacks := make([]func(Args), 0, len(order))
	for _, id := range order {
		callbacks = append(callbacks, e.callbacks[id])
	}
	observers := append([]*Event[Args](nil), e.observers...)
	e.mu.Unlock()

	for _, fn := range callbacks {
		fn(args)
	}
	for _, o := range observers {
		o.Signal(args)
	}
}
