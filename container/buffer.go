// Package container implements the engine's linear container family
// (Array, List, Optional, UniquePtr, Text, Path, Map). List, and Text
// through List, store their elements in memalloc allocations; Array, Map,
// Optional, UniquePtr and Path use ordinary Go values, slices and maps
// and do not allocate through memalloc.
package container

import (
	"unsafe"

	"github.com/Noxagonal/Bitcrafte-Engine-sub002/memalloc"
)

// ErrIndexOutOfRange is raised (panicked) by bounds-checked accessors in
// development builds: a programmer error, raised synchronously rather
// than through an error return.
var ErrIndexOutOfRange = errAssertion("container: index out of range")

// ErrIteratorInvalid is raised by iterator arithmetic that walks outside
// [begin, end] or compares iterators from different containers.
var ErrIteratorInvalid = errAssertion("container: iterator out of range or foreign")

type errAssertion string

func (e errAssertion) Error() string { return string(e) }

// assertDev panics with err if cond is false and DevelopmentBuild is set.
func assertDev(cond bool, err error) {
	if !cond && memalloc.DevelopmentBuild {
		panic(err)
	}
}

// buffer is the growable storage core of List (and so of Text, which is
// built on a List[byte]): a memalloc.Block viewed
// as a typed []T, with size <= capacity always holding.
type buffer[T any] struct {
	block *memalloc.Block
	size int
}

func zeroOf[T any]() T {
	var z T
	return z
}

func elemLayout[T any]() (size int, align uintptr) {
	var z T
	return int(unsafe.Sizeof(z)), unsafe.Alignof(z)
}

// capacity returns the number of T-sized slots currently backing the
// buffer (size <= capacity always holds).
func (b *buffer[T]) capacity() int {
	if b.block == nil {
		return 0
	}
	esize, _ := elemLayout[T]()
	return len(b.block.Payload()) / esize
}

// slice returns the full capacity as a Go slice, for internal use only;
// callers must respect b.size for the constructed-element boundary.
func (b *buffer[T]) slice() []T {
	if b.block == nil {
		return nil
	}
	esize, _ := elemLayout[T]()
	n := len(b.block.Payload()) / esize
	if n == 0 {
		return nil
	}
	ptr := (*T)(unsafe.Pointer(&b.block.Payload()[0]))
	return unsafe.Slice(ptr, n)
}

// live returns the constructed range [0, size).
func (b *buffer[T]) live() []T {
	return b.slice()[:b.size]
}

// reserve grows capacity to at least n, never shrinking. Growth is
// doubling with a minimum initial reservation.
func (b *buffer[T]) reserve(n int) {
	if n <= b.capacity() {
		return
	}

	const minInitial = 4
	newCap := b.capacity()
	if newCap == 0 {
		newCap = minInitial
	}
	for newCap < n {
		newCap *= 2
	}

	esize, align := elemLayout[T]()
	newBlock := memalloc.Allocate(newCap, esize, align)

	if b.block != nil {
		oldLive := b.live()
		newPtr := (*T)(unsafe.Pointer(&newBlock.Payload()[0]))
		newSlice := unsafe.Slice(newPtr, newCap)
		copy(newSlice, oldLive)
		b.block.Free()
	}
	b.block = newBlock
}

// destructTail zeroes [from, size) and shrinks size to from. memalloc
// already poisons the raw bytes on Free; here we additionally zero the
// typed slots on shrink so no stale reference keeps a large T alive.
func (b *buffer[T]) destructTail(from int) {
	s := b.slice()
	for i := from; i < b.size; i++ {
		s[i] = zeroOf[T]()
	}
	b.size = from
}

func (b *buffer[T]) free() {
	if b.block != nil {
		b.destructTail(0)
		b.block.Free()
		b.block = nil
	}
}
