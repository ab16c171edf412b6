package container

// List is the engine's dynamic array, `List<T>`.
// The zero value is an empty, ready-to-use List; NewList builds one
// pre-filled with elements.
type List[T any] struct {
	buf buffer[T]
}

// NewList constructs a List containing a copy of elems.
func NewList[T any](elems ...T) *List[T] {
	l := &List[T]{}
	if len(elems) > 0 {
		l.buf.reserve(len(elems))
		copy(l.buf.slice(), elems)
		l.buf.size = len(elems)
	}
	return l
}

// Len returns the number of constructed elements.
func (l *List[T]) Len() int { return l.buf.size }

// Cap returns the number of reserved slots.
func (l *List[T]) Cap() int { return l.buf.capacity() }

// Reserve grows capacity to at least n; it never shrinks.
func (l *List[T]) Reserve(n int) { l.buf.reserve(n) }

// Resize either destructs the tail or default-constructs new elements to
// reach n.
func (l *List[T]) Resize(n int) {
	if n < 0 {
		panic(errAssertion("container: List.Resize with negative size"))
	}
	if n <= l.buf.size {
		l.buf.destructTail(n)
		return
	}
	l.buf.reserve(n)
	l.buf.size = n
}

// PushBack appends v, growing capacity (amortized O(1)) if required.
func (l *List[T]) PushBack(v T) {
	l.buf.reserve(l.buf.size + 1)
	l.buf.slice()[l.buf.size] = v
	l.buf.size++
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() T {
	assertDev(l.buf.size > 0, ErrIndexOutOfRange)
	v := l.buf.slice()[l.buf.size-1]
	l.buf.destructTail(l.buf.size - 1)
	return v
}

// PushFront inserts v at index 0, an O(size) shift.
func (l *List[T]) PushFront(v T) { l.Insert(0, v) }

// PopFront removes and returns the first element, an O(size) shift.
func (l *List[T]) PopFront() T {
	assertDev(l.buf.size > 0, ErrIndexOutOfRange)
	v := l.buf.slice()[0]
	l.Erase(0)
	return v
}

// Insert places v at index idx, shifting subsequent elements right.
// idx == Len() (i.e. inserting at the end) is permitted.
func (l *List[T]) Insert(idx int, v T) {
	assertDev(idx >= 0 && idx <= l.buf.size, ErrIteratorInvalid)
	l.buf.reserve(l.buf.size + 1)
	s := l.buf.slice()
	copy(s[idx+1:l.buf.size+1], s[idx:l.buf.size])
	s[idx] = v
	l.buf.size++
}

// Erase removes the element at idx. Erasing the one-past-the-end
// position raises.
func (l *List[T]) Erase(idx int) {
	assertDev(idx >= 0 && idx < l.buf.size, ErrIteratorInvalid)
	s := l.buf.slice()
	copy(s[idx:l.buf.size-1], s[idx+1:l.buf.size])
	l.buf.destructTail(l.buf.size - 1)
}

// EraseRange removes elements in [from, to).
func (l *List[T]) EraseRange(from, to int) {
	assertDev(from >= 0 && to <= l.buf.size && from <= to, ErrIteratorInvalid)
	if from == to {
		return
	}
	s := l.buf.slice()
	n := copy(s[from:], s[to:l.buf.size])
	l.buf.destructTail(from + n)
}

// Append copies other's elements onto the end of l. Self-append
// (l.Append(l.Slice())) is supported by snapshotting the source length
// before any growth.
func (l *List[T]) Append(other []T) {
	n := len(other)
	if n == 0 {
		return
	}
	if sameBacking(l, other) {
		snapshot := make([]T, n)
		copy(snapshot, other)
		other = snapshot
	}
	l.buf.reserve(l.buf.size + n)
	copy(l.buf.slice()[l.buf.size:], other)
	l.buf.size += n
}

func sameBacking[T any](l *List[T], other []T) bool {
	if len(other) == 0 || l.buf.block == nil {
		return false
	}
	live := l.buf.live()
	return len(live) > 0 && &live[0] == &other[0]
}

// Get returns the element at idx, bounds-checked (raises in development).
func (l *List[T]) Get(idx int) T {
	assertDev(idx >= 0 && idx < l.buf.size, ErrIndexOutOfRange)
	return l.buf.slice()[idx]
}

// Set overwrites the element at idx, bounds-checked.
func (l *List[T]) Set(idx int, v T) {
	assertDev(idx >= 0 && idx < l.buf.size, ErrIndexOutOfRange)
	l.buf.slice()[idx] = v
}

// Front returns the first element, bounds-checked.
func (l *List[T]) Front() T { return l.Get(0) }

// Back returns the last element, bounds-checked.
func (l *List[T]) Back() T { return l.Get(l.buf.size - 1) }

// Slice returns a borrowed, mutable view over the constructed range. The
// view is invalidated by any operation that reallocates (Reserve growth,
// PushBack past capacity, etc.), exactly like a C++ iterator invalidation.
func (l *List[T]) Slice() []T { return l.buf.live() }

// Free releases the backing allocation. Using the List afterward is a
// programmer error (undefined).
func (l *List[T]) Free() { l.buf.free() }

// Clone returns a deep (element-wise) copy of l.
func (l *List[T]) Clone() *List[T] { return NewList(l.Slice()...) }

// ListsEqual reports whether a and b have equal length and pairwise-equal
// elements. Expressed as a free function (not a method) because Go
// methods cannot add a `comparable` constraint beyond the receiver's own
// type parameter.
func ListsEqual[T comparable](a, b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	as, bs := a.Slice(), b.Slice()
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// Iterator is a random-access cursor over a List, carrying a back-pointer
// to its owning container so arithmetic can be bounds-checked: stepping
// before begin() or past end() raises.
type Iterator[T any] struct {
	owner *List[T]
	index int
}

// Begin returns an iterator to the first element (or end() if empty).
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{owner: l, index: 0} }

// End returns the one-past-the-last iterator.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{owner: l, index: l.buf.size} }

// Advance returns an iterator n steps ahead of it (n may be negative).
// Stepping outside [begin(), end()] (e.g. to begin()-1 or end()+1) raises.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	next := it.index + n
	assertDev(next >= 0 && next <= it.owner.buf.size, ErrIteratorInvalid)
	return Iterator[T]{owner: it.owner, index: next}
}

// Deref returns the element the iterator refers to, bounds-checked.
func (it Iterator[T]) Deref() T { return it.owner.Get(it.index) }

// Index returns the iterator's current position, for use with
// Insert/Erase/EraseRange.
func (it Iterator[T]) Index() int { return it.index }

// Equal reports whether two iterators refer to the same owner and
// position, after asserting they share a container (comparing foreign
// iterators is a programmer error).
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	assertDev(it.owner == other.owner, ErrIteratorInvalid)
	return it.index == other.index
}
