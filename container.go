// Package ordered holds the contract shared by the in-memory ordered key
// containers of this module: the B-tree in package btree and the skip list in
// package skiplist.
//
// Neither container is safe for concurrent use. Callers that share one across
// goroutines must serialise every call, reads included.
package ordered

// Container is the abstract contract both containers satisfy.
type Container[K any] interface {
	// Has reports whether key is stored.
	Has(key K) bool
	// Insert adds key. It returns an error wrapping ErrDuplicateKey, and
	// leaves the container untouched, when the key is already present.
	Insert(key K) error
	// Remove deletes key and reports whether it was present. Removing an
	// absent key is not an error.
	Remove(key K) bool
	// Validate checks every structural invariant and that each of expected
	// is stored exactly once. It never mutates the container.
	Validate(expected []K) (Stats, error)
	// Len returns the number of stored keys.
	Len() int
}
