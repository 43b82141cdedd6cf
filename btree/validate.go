package btree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/metailurini/ordered"
)

// Validate checks every B-tree invariant over the whole tree and that each
// key of expected is stored. It never mutates the tree, so two calls in a row
// return the same result. The first violation found is returned as an
// *ordered.ValidationError.
func (t *Tree[K]) Validate(expected []K) (ordered.Stats, error) {
	v := &validator[K]{
		tree:      t,
		seen:      make(map[*node[K]]struct{}),
		leafDepth: -1,
	}

	if t.root == nil {
		return v.stats, v.fail(ordered.InvariantChildren, 0, "missing root")
	}
	if n := t.root.keyCount(); n > 2*t.degree-1 {
		return v.stats, v.fail(ordered.InvariantOccupancy, 0, "root holds %d keys, max %d", n, 2*t.degree-1)
	}
	if !t.root.isLeaf() && t.root.keyCount() < 1 {
		return v.stats, v.fail(ordered.InvariantOccupancy, 0, "internal root holds no key")
	}
	if err := v.walk(t.root, 0, nil, nil); err != nil {
		return v.stats, err
	}
	if v.stats.Depth != t.height {
		return v.stats, v.fail(ordered.InvariantLeafDepth, v.stats.Depth, "leaves at depth %d, tree height %d", v.stats.Depth, t.height)
	}
	if v.stats.Keys != t.length {
		return v.stats, v.fail(ordered.InvariantMembership, 0, "counted %d keys, tree length %d", v.stats.Keys, t.length)
	}
	for _, k := range expected {
		if !t.Has(k) {
			return v.stats, v.fail(ordered.InvariantMembership, 0, "expected key %v not found", k)
		}
	}
	return v.stats, nil
}

type validator[K any] struct {
	tree      *Tree[K]
	stats     ordered.Stats
	seen      map[*node[K]]struct{}
	leafDepth int
	path      []int
}

// walk checks n and its subtree. Every key of n must lie strictly between lo
// and hi; a nil bound is open.
func (v *validator[K]) walk(n *node[K], depth int, lo, hi *K) error {
	t := v.tree
	if n == nil {
		return v.fail(ordered.InvariantChildren, depth, "nil child")
	}
	if _, ok := v.seen[n]; ok {
		return v.fail(ordered.InvariantAlias, depth, "node reachable from more than one slot")
	}
	v.seen[n] = struct{}{}

	v.stats.Nodes++
	v.stats.Keys += n.keyCount()
	if depth > v.stats.Depth {
		v.stats.Depth = depth
	}

	if depth > 0 && (n.keyCount() < t.degree-1 || n.keyCount() > 2*t.degree-1) {
		return v.fail(ordered.InvariantOccupancy, depth, "%d keys, want %d..%d", n.keyCount(), t.degree-1, 2*t.degree-1)
	}
	for i := 0; i+1 < n.keyCount(); i++ {
		if t.cmp(n.keys[i], n.keys[i+1]) >= 0 {
			return v.fail(ordered.InvariantOrder, depth, "key %d (%v) not below key %d (%v)", i, n.keys[i], i+1, n.keys[i+1])
		}
	}
	if n.keyCount() > 0 {
		if lo != nil && t.cmp(n.keys[0], *lo) <= 0 {
			return v.fail(ordered.InvariantBounds, depth, "first key %v not above separator %v", n.keys[0], *lo)
		}
		if hi != nil && t.cmp(n.lastKey(), *hi) >= 0 {
			return v.fail(ordered.InvariantBounds, depth, "last key %v not below separator %v", n.lastKey(), *hi)
		}
	}

	if n.isLeaf() {
		if n.childCount() != 0 {
			return v.fail(ordered.InvariantChildren, depth, "leaf carries %d children", n.childCount())
		}
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return v.fail(ordered.InvariantLeafDepth, depth, "leaf at depth %d, first leaf at %d", depth, v.leafDepth)
		}
		return nil
	}

	if n.childCount() != n.keyCount()+1 {
		return v.fail(ordered.InvariantChildren, depth, "%d children for %d keys", n.childCount(), n.keyCount())
	}
	for i, c := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < n.keyCount() {
			childHi = &n.keys[i]
		}
		v.path = append(v.path, i)
		if err := v.walk(c, depth+1, childLo, childHi); err != nil {
			return err
		}
		v.path = v.path[:len(v.path)-1]
	}
	return nil
}

func (v *validator[K]) fail(invariant string, depth int, format string, args ...any) error {
	return &ordered.ValidationError{
		Invariant: invariant,
		Path:      v.pathString(),
		Depth:     depth,
		Detail:    fmt.Sprintf(format, args...),
	}
}

func (v *validator[K]) pathString() string {
	var b strings.Builder
	b.WriteString("root")
	for _, i := range v.path {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}
