package skiplist

// Iterator provides a forward-only view over the skip list. It must not be
// used across a modification of the list.
type Iterator[K any] struct {
	s       *SkipList[K]
	current *node[K]
	started bool
}

// Iterator returns a new iterator positioned before the first element.
func (s *SkipList[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{s: s}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K]) Valid() bool {
	return it != nil && it.current != nil
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K]) Key() K {
	if !it.Valid() {
		var zero K
		return zero
	}
	return it.current.key
}

// Next advances the iterator to the next element and reports whether it
// successfully moved forward. If the iterator has not been positioned yet,
// it advances to the first element.
func (it *Iterator[K]) Next() bool {
	if it == nil || it.s == nil {
		return false
	}
	switch {
	case !it.started:
		it.current = it.s.head.next()
		it.started = true
	case it.current != nil:
		it.current = it.current.next()
	}
	return it.current != nil
}

// SeekGE positions the iterator at the first element whose key is
// greater than or equal to the provided key. It returns true if such an
// element exists.
func (it *Iterator[K]) SeekGE(key K) bool {
	if it == nil || it.s == nil {
		return false
	}
	it.current = it.s.seekGE(key)
	it.started = true
	return it.current != nil
}
