package persist

import "github.com/benbjohnson/immutable"

// Vector is a persistent, indexable sequence. Every mutator returns a new
// Vector sharing structure with the receiver; the receiver itself is
// never modified.
type Vector[T any] struct {
	l *immutable.List[T]
}

// NewVector returns an empty Vector.
func NewVector[T any]() Vector[T] {
	return Vector[T]{l: immutable.NewList[T]()}
}

// IsValid reports whether v was produced by NewVector (or a mutator on
// one), as opposed to the zero Vector.
func (v Vector[T]) IsValid() bool { return v.l != nil }

// Len returns the number of elements in v.
func (v Vector[T]) Len() int {
	if v.l == nil {
		return 0
	}
	return v.l.Len()
}

// Get returns the element at index i.
func (v Vector[T]) Get(i int) T { return v.l.Get(i) }

// Push returns a Vector with x appended.
func (v Vector[T]) Push(x T) Vector[T] {
	if v.l == nil {
		v = NewVector[T]()
	}
	return Vector[T]{l: v.l.Append(x)}
}

// Pop returns a Vector with its last element removed; it panics on an
// empty Vector the same way Get(-1) would.
func (v Vector[T]) Pop() Vector[T] {
	return Vector[T]{l: v.l.Slice(0, v.l.Len()-1)}
}

// Truncate returns a Vector containing only the first n elements; n must
// be in [0, v.Len()].
func (v Vector[T]) Truncate(n int) Vector[T] {
	if v.l == nil {
		return NewVector[T]()
	}
	return Vector[T]{l: v.l.Slice(0, n)}
}

// Last returns the final element of v.
func (v Vector[T]) Last() T { return v.l.Get(v.l.Len() - 1) }

// Set returns a Vector with index i replaced by x.
func (v Vector[T]) Set(i int, x T) Vector[T] {
	return Vector[T]{l: v.l.Set(i, x)}
}

// Equal reports whether v and o are the same Vector, by pointer identity
// first (the common case when one was derived from the other by a chain
// of Push/Pop that happened to cancel out, or when both are unmodified
// copies of a shared ancestor) and by element-wise comparison otherwise.
func (v Vector[T]) Equal(o Vector[T], eq func(a, b T) bool) bool {
	if v.l == o.l {
		return true
	}
	if v.Len() != o.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if !eq(v.Get(i), o.Get(i)) {
			return false
		}
	}
	return true
}

// Slice materializes v into a plain Go slice, for callers that need to
// range over it with ordinary syntax.
func (v Vector[T]) Slice() []T {
	out := make([]T, 0, v.Len())
	itr := v.l.Iterator()
	for !itr.Done() {
		_, val := itr.Next()
		out = append(out, val)
	}
	return out
}
