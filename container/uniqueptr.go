package container

import "github.com/Noxagonal/Bitcrafte-Engine-sub002/memalloc"

// ErrDowncastFailed is raised by CastUniquePtr (development builds only)
// when the held value does not satisfy the requested type.
var ErrDowncastFailed = errAssertion("container: UniquePtr down-cast failed")

// UniquePtr is a single-owner smart pointer: owned T or empty, move-only,
// freed exactly once.
//
// Up/down casting in a C++ engine relies on static base/derived pointer
// relationships, which Go's type system has no equivalent for on
// concrete struct types. The idiomatic rendering here is: polymorphic
// ownership is expressed by instantiating UniquePtr[any] (the "base"),
// and CastUniquePtr performs the checked down-cast to a concrete type To
// via a type assertion on the boxed value.
type UniquePtr[T any] struct {
	value T
	filled bool
}

// MakeUniquePtr constructs a populated UniquePtr.
func MakeUniquePtr[T any](v T) UniquePtr[T] {
	return UniquePtr[T]{value: v, filled: true}
}

// IsEmpty reports whether the UniquePtr owns nothing.
func (p *UniquePtr[T]) IsEmpty() bool { return !p.filled }

// Get returns the owned value without transferring ownership. Calling Get
// on an empty UniquePtr returns the zero value; a null-dereference is the
// programmer's responsibility, as with a raw owned pointer.
func (p *UniquePtr[T]) Get() T { return p.value }

// Move transfers ownership out of p, leaving p empty. A subsequent call
// on the now-empty p returns the zero value and false.
func (p *UniquePtr[T]) Move() (T, bool) {
	if !p.filled {
		var zero T
		return zero, false
	}
	v := p.value
	p.Reset()
	return v, true
}

// Reset empties p without a separate Free step; for T values that embed
// their own cleanup (e.g. another container), callers should free those
// first, since Go has no destructors to call automatically.
func (p *UniquePtr[T]) Reset() {
	var zero T
	p.value = zero
	p.filled = false
}

// CastUniquePtr performs a checked down-cast from UniquePtr[any] (the
// "base") to UniquePtr[To] (the "derived"). On success it transfers
// ownership (p becomes empty) and returns (casted, true). On failure:
// development builds raise ErrDowncastFailed; release builds return an
// empty UniquePtr[To] and leave p untouched.
func CastUniquePtr[To any](p *UniquePtr[any]) (UniquePtr[To], bool) {
	if p.IsEmpty() {
		return UniquePtr[To]{}, true
	}
	if casted, ok := p.value.(To); ok {
		p.Reset()
		return UniquePtr[To]{value: casted, filled: true}, true
	}
	if memalloc.DevelopmentBuild {
		panic(ErrDowncastFailed)
	}
	return UniquePtr[To]{}, false
}

// UpcastUniquePtr widens a concrete UniquePtr[From] to UniquePtr[any].
// This direction always succeeds since it only ever narrows what's known
// about the value's type, never what's true of it.
func UpcastUniquePtr[From any](p *UniquePtr[From]) UniquePtr[any] {
	v, ok := p.Move()
	if !ok {
		return UniquePtr[any]{}
	}
	return UniquePtr[any]{value: v, filled: true}
}
