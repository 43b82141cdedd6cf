package skiplist

// findPath walks from the highest level in use down to level 0, stopping on
// each level at the last node whose key is below key. When update is non-nil
// those nodes are recorded in it, one per level. It returns the level-0
// successor of the final stop: the only node that can hold key.
func (s *SkipList[K]) findPath(key K, update []*node[K]) *node[K] {
	x := s.head
	for i := s.level - 1; i >= 0; i-- {
		for next := x.forward[i]; next != nil && s.cmp(next.key, key) < 0; next = x.forward[i] {
			x = next
		}
		if update != nil {
			update[i] = x
		}
	}
	return x.next()
}

// seekGE returns the first node whose key is not below key, or nil.
func (s *SkipList[K]) seekGE(key K) *node[K] {
	return s.findPath(key, nil)
}
