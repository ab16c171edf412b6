package container

// Map is an insertion-ordered associative container, a supplement to the
// fixed-size and growable containers covering the common case of a
// keyed lookup that still needs to preserve insertion order.
//
// The insertion-order-preserving key/value slices alongside a key->index
// map are grounded on `eventloop/registry.go`'s id->slot lookup map;
// unlike that registry, Delete here has no free list and instead shifts
// the slices and re-numbers the index map, since Map never hands out its
// slot numbers as stable external ids.
type Map[K comparable, V any] struct {
	index map[K]int
	keys []K
	vals []V
}

// NewMap constructs an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Set inserts or overwrites the value for key, preserving the original
// insertion position on overwrite.
func (m *Map[K, V]) Set(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.vals[i], true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Delete removes key, if present, compacting the backing slices so
// iteration order of the remaining entries is preserved.
func (m *Map[K, V]) Delete(key K) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	for k, idx := range m.index {
		if idx > i {
			m.index[k] = idx - 1
		}
	}
	return true
}

// Keys returns the keys in insertion order. The returned slice is a copy
// and safe to retain.
func (m *Map[K, V]) Keys() []K { return append([]K(nil), m.keys...) }

// Each calls fn for every entry in insertion order.
func (m *Map[K, V]) Each(fn func(K, V)) {
	for i, k := range m.keys {
		fn(k, m.vals[i])
	}
}
