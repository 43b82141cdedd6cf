// Package btree implements an in-memory B-tree of unique keys with minimum
// degree t >= 2: every node other than the root holds between t-1 and 2t-1
// keys, and all leaves sit at the same depth.
//
// Insertion splits full nodes on the way down so the descent never has to
// back up. Removal makes sure every child it enters holds at least t keys,
// borrowing from a sibling or merging with one when needed.
//
// A Tree is not safe for concurrent use.
package btree

import (
	"cmp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/metailurini/ordered"
)

// Tree is a B-tree of unique keys ordered by an injected comparator.
type Tree[K any] struct {
	degree  int
	cmp     ordered.CompareFunc[K]
	root    *node[K]
	length  int
	height  int
	free    *freeList[K]
	metrics *Metrics
	log     *logrus.Logger
}

var _ ordered.Container[int] = (*Tree[int])(nil)

// New creates an empty tree of minimum degree degree. It panics when degree
// is below 2 or cmp is nil.
func New[K any](degree int, cmp ordered.CompareFunc[K], opts ...func(*Config)) *Tree[K] {
	if degree < 2 {
		panic(errors.Wrapf(ordered.ErrInvalidDegree, "btree: degree %d", degree))
	}
	if cmp == nil {
		panic(errors.Wrap(ordered.ErrInvalidArgument, "btree: nil comparator"))
	}
	config := NewConfig()
	for _, opt := range opts {
		opt(&config)
	}
	t := &Tree[K]{
		degree:  degree,
		cmp:     cmp,
		free:    newFreeList[K](config.freeListSize),
		metrics: &Metrics{},
		log:     config.logger,
	}
	t.root = t.acquireNode(true)
	return t
}

// NewOrdered creates an empty tree over a builtin ordered key type.
func NewOrdered[K cmp.Ordered](degree int, opts ...func(*Config)) *Tree[K] {
	return New[K](degree, ordered.Compare[K], opts...)
}

// Ref locates a key inside the tree. It is valid only until the next Insert,
// Remove or Clear.
type Ref[K any] struct {
	n     *node[K]
	index int
}

// Key returns the referenced key.
func (r Ref[K]) Key() K { return r.n.key(r.index) }

// Index returns the position of the key inside its node.
func (r Ref[K]) Index() int { return r.index }

// KeyCount returns the number of keys in the node holding the key.
func (r Ref[K]) KeyCount() int { return r.n.keyCount() }

// IsLeaf reports whether the key sits in a leaf.
func (r Ref[K]) IsLeaf() bool { return r.n.isLeaf() }

// Degree returns the minimum degree t the tree was built with.
func (t *Tree[K]) Degree() int { return t.degree }

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int { return t.length }

// Height returns the number of edges from the root to any leaf.
func (t *Tree[K]) Height() int { return t.height }

// Metrics exposes the structural event counters of the tree.
func (t *Tree[K]) Metrics() *Metrics { return t.metrics }

// Search looks key up and, when found, returns a reference to the node slot
// holding it.
func (t *Tree[K]) Search(key K) (Ref[K], bool) {
	n := t.root
	for {
		i, found := n.find(key, t.cmp)
		if found {
			return Ref[K]{n: n, index: i}, true
		}
		if n.isLeaf() {
			return Ref[K]{}, false
		}
		n = n.child(i)
	}
}

// Has reports whether key is stored.
func (t *Tree[K]) Has(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// Insert adds key to the tree. When the key is already stored the tree is
// left untouched and an error wrapping ordered.ErrDuplicateKey is returned.
func (t *Tree[K]) Insert(key K) error {
	if t.Has(key) {
		return errors.Wrapf(ordered.ErrDuplicateKey, "btree: insert %v", key)
	}

	if t.root.full(t.degree) {
		t.trace("insert", "root split", 0)
		left := t.root
		t.root = t.acquireNode(false)
		t.root.children = append(t.root.children, left)
		t.height++
		t.splitChild(t.root, 0, left)
	}
	t.insertNonFull(t.root, key)
	t.length++
	return nil
}

// splitChild splits the full node left, found at children[slot] of parent,
// around its median. The median moves up into parent and the upper half
// becomes a new sibling right after left.
func (t *Tree[K]) splitChild(parent *node[K], slot int, left *node[K]) {
	right := t.acquireNode(left.isLeaf())
	left.copyTo(t.degree, t.degree-1, right, 0)
	left.truncateKeys(t.degree)

	parent.insert(left.key(t.degree-1), nil, right, slot)
	left.remove(t.degree-1, false, false)

	root := parent == t.root && parent.keyCount() == 1
	t.metrics.incSplit(root)
	t.trace("insert", "split", slot)
	if splitHook != nil {
		splitHook(slot, root)
	}
}

// insertNonFull descends from n, which has room for one more key, to the
// leaf where key belongs, splitting every full child before entering it.
func (t *Tree[K]) insertNonFull(n *node[K], key K) {
	for {
		i := n.keyCount() - 1
		for i >= 0 && t.cmp(key, n.key(i)) < 0 {
			i--
		}
		if n.isLeaf() {
			t.trace("insert", "leaf", i+1)
			n.insert(key, nil, nil, i+1)
			return
		}
		i++
		if child := n.child(i); child.full(t.degree) {
			t.splitChild(n, i, child)
			if t.cmp(key, n.key(i)) > 0 {
				i++
			}
		}
		n = n.child(i)
	}
}

// trace emits a Debug entry naming the structural case just taken.
func (t *Tree[K]) trace(op, branch string, index int) {
	if !t.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	t.log.WithFields(logrus.Fields{
		"op":     op,
		"case":   branch,
		"index":  index,
		"height": t.height,
	}).Debug("btree")
}
