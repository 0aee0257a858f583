// Package persist wraps github.com/benbjohnson/immutable's persistent
// list and hash map behind the Vector/Map/Set shapes the module engine
// needs: cheap structural copies and a pointer-identity fast path for
// Equal, so two Module snapshots that share most of their structure can
// be compared and diffed without walking everything.
package persist

import "hash/maphash"

// ComparableHasher hashes any comparable type using the stdlib's
// maphash.Comparable, so callers never need to hand-write a Hash/Equal
// pair for struct keys like ident.Label or term.Term (both of which are
// small comparable structs wrapping an interned pointer).
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher builds a hasher seeded once per call; callers
// should build one Hasher per Map/Set and reuse it, not one per
// operation, so that equal keys hash equally across the container's
// lifetime.
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

// Hash implements immutable.Hasher.
func (h ComparableHasher[K]) Hash(k K) uint32 {
	return uint32(maphash.Comparable(h.seed, k))
}

// Equal implements immutable.Hasher.
func (h ComparableHasher[K]) Equal(a, b K) bool { return a == b }
