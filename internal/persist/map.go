package persist

import "github.com/benbjohnson/immutable"

// Map is a persistent associative array keyed by K. Every mutator returns
// a new Map sharing structure with the receiver.
type Map[K comparable, V any] struct {
	m *immutable.Map[K, V]
}

// NewMap returns an empty Map, hashing keys with a ComparableHasher.
func NewMap[K comparable, V any]() Map[K, V] {
	return Map[K, V]{m: immutable.NewMap[K, V](NewComparableHasher[K]())}
}

// IsValid reports whether m was produced by NewMap (or a mutator on
// one), as opposed to the zero Map.
func (m Map[K, V]) IsValid() bool { return m.m != nil }

// Len returns the number of entries in m.
func (m Map[K, V]) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get returns the value stored at key, and whether it was present.
func (m Map[K, V]) Get(key K) (V, bool) {
	if m.m == nil {
		var zero V
		return zero, false
	}
	return m.m.Get(key)
}

// With returns a Map with key bound to value.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	if m.m == nil {
		m = NewMap[K, V]()
	}
	return Map[K, V]{m: m.m.Set(key, value)}
}

// Without returns a Map with key removed (a no-op if it was absent).
func (m Map[K, V]) Without(key K) Map[K, V] {
	if m.m == nil {
		return m
	}
	return Map[K, V]{m: m.m.Delete(key)}
}

// Equal reports whether m and o are the same Map, by pointer identity
// first and by entry-wise comparison otherwise.
func (m Map[K, V]) Equal(o Map[K, V], eq func(a, b V) bool) bool {
	if m.m == o.m {
		return true
	}
	if m.Len() != o.Len() {
		return false
	}
	itr := m.m.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		ov, ok := o.Get(k)
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}

// Entries returns m's contents as a plain Go map, for callers that need
// to range over it with ordinary syntax.
func (m Map[K, V]) Entries() map[K]V {
	out := make(map[K]V, m.Len())
	if m.m == nil {
		return out
	}
	itr := m.m.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		out[k] = v
	}
	return out
}
