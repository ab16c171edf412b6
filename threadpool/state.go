package threadpool

import "sync/atomic"

// WorkerState is a worker's lifecycle state, the Go analogue of the
// state machine eventloop.FastState models for a single event loop,
// generalized here to one instance per worker goroutine.
type WorkerState uint32

const (
	WorkerUninitialized WorkerState = iota
	WorkerRunning
	WorkerExiting
	WorkerExited
	WorkerError
)

func (s WorkerState) String() string {
	switch s {
	case WorkerUninitialized:
		return "Uninitialized"
	case WorkerRunning:
		return "Running"
	case WorkerExiting:
		return "Exiting"
	case WorkerExited:
		return "Exited"
	case WorkerError:
		return "Error"
	default:
		return "Unknown"
	}
}

// fastState is a lock-free atomic state holder, ported from eventloop's
// FastState: CAS for reversible transitions, plain Store for terminal
// ones.
type fastState struct {
	v atomic.Uint32
}

func newFastState(initial WorkerState) *fastState {
	s := &fastState{}
	s.v.Store(uint32(initial))
	return s
}

func (s *fastState) Load() WorkerState { return WorkerState(s.v.Load()) }

func (s *fastState) Store(state WorkerState) { s.v.Store(uint32(state)) }

func (s *fastState) TryTransition(from, to WorkerState) bool {
	return s.v.CompareAndSwap(uint32(from), uint32(to))
}
