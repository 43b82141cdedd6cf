package skiplist

// node holds a key and its per-level forward pointers. A nil forward pointer
// marks the end of that level.
type node[K any] struct {
	key     K
	forward []*node[K]
}

func newNode[K any](key K, level int) *node[K] {
	return &node[K]{
		key:     key,
		forward: make([]*node[K], level),
	}
}

func (n *node[K]) level() int { return len(n.forward) }

// next returns the node's immediate successor on the lowest level.
func (n *node[K]) next() *node[K] { return n.forward[0] }
