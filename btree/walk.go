package btree

// Ascend calls fn for every key in ascending order until fn returns false.
// The tree must not be modified from inside fn.
func (t *Tree[K]) Ascend(fn func(key K) bool) {
	t.ascend(t.root, fn)
}

func (t *Tree[K]) ascend(n *node[K], fn func(key K) bool) bool {
	for i := range n.keys {
		if !n.isLeaf() && !t.ascend(n.children[i], fn) {
			return false
		}
		if !fn(n.keys[i]) {
			return false
		}
	}
	if !n.isLeaf() {
		return t.ascend(n.lastChild(), fn)
	}
	return true
}

// Keys returns every key in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.length)
	t.Ascend(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Min returns the smallest key, or false on an empty tree.
func (t *Tree[K]) Min() (K, bool) {
	if t.length == 0 {
		var zero K
		return zero, false
	}
	return t.minKey(t.root), true
}

// Max returns the largest key, or false on an empty tree.
func (t *Tree[K]) Max() (K, bool) {
	if t.length == 0 {
		var zero K
		return zero, false
	}
	return t.maxKey(t.root), true
}

// Clear removes every key, releasing each node exactly once, and leaves an
// empty leaf as the root.
func (t *Tree[K]) Clear() {
	t.destroy(t.root)
	t.root = t.acquireNode(true)
	t.length = 0
	t.height = 0
}

func (t *Tree[K]) destroy(n *node[K]) {
	if n == nil {
		return
	}
	if !n.isLeaf() {
		for _, c := range n.children {
			t.destroy(c)
		}
	}
	t.releaseNode(n)
}
