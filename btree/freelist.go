package btree

// DefaultFreeListSize is the number of released nodes a tree keeps for reuse.
const DefaultFreeListSize = 32

// freeList recycles nodes released by merges and Clear. It belongs to a
// single tree.
type freeList[K any] struct {
	nodes []*node[K]
}

func newFreeList[K any](size int) *freeList[K] {
	return &freeList[K]{nodes: make([]*node[K], 0, size)}
}

func (f *freeList[K]) get() *node[K] {
	index := len(f.nodes) - 1
	if index < 0 {
		return nil
	}
	n := f.nodes[index]
	f.nodes[index] = nil
	f.nodes = f.nodes[:index]
	return n
}

// put reports whether n was kept for reuse.
func (f *freeList[K]) put(n *node[K]) bool {
	if len(f.nodes) >= cap(f.nodes) {
		return false
	}
	f.nodes = append(f.nodes, n)
	return true
}

// acquireNode returns an empty node with room for a full page.
func (t *Tree[K]) acquireNode(leaf bool) *node[K] {
	n := t.free.get()
	if n == nil {
		n = &node[K]{keys: make([]K, 0, 2*t.degree-1)}
	}
	n.leaf = leaf
	if !leaf && cap(n.children) < 2*t.degree {
		n.children = make([]*node[K], 0, 2*t.degree)
	}
	return n
}

// releaseNode drops every reference n holds and offers it to the free list.
// n must already be unreachable from the tree.
func (t *Tree[K]) releaseNode(n *node[K]) {
	if n == nil {
		return
	}
	n.keys = truncate(n.keys, 0)
	n.children = truncate(n.children, 0)
	n.leaf = false
	t.metrics.incReleased()
	t.free.put(n)
}
