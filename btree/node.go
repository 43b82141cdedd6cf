package btree

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/metailurini/ordered"
)

// node is one page of the tree. keys is sorted ascending and holds at most
// 2t-1 entries. An internal node has exactly len(keys)+1 children; a leaf has
// none. A node is reachable from exactly one slot of one parent.
type node[K any] struct {
	keys     []K
	children []*node[K]
	leaf     bool
}

func (n *node[K]) keyCount() int { return len(n.keys) }

// childCount is keyCount()+1 for an internal node and 0 for a leaf.
func (n *node[K]) childCount() int { return len(n.children) }

func (n *node[K]) isLeaf() bool { return n.leaf }

func (n *node[K]) key(i int) K {
	n.checkKey(i)
	return n.keys[i]
}

func (n *node[K]) setKey(k K, i int) {
	n.checkKey(i)
	n.keys[i] = k
}

func (n *node[K]) child(i int) *node[K] {
	n.checkChild(i)
	return n.children[i]
}

func (n *node[K]) setChild(c *node[K], i int) {
	n.checkChild(i)
	n.children[i] = c
}

func (n *node[K]) firstKey() K { return n.key(0) }

func (n *node[K]) lastKey() K { return n.key(len(n.keys) - 1) }

// firstChild and lastChild return nil on a leaf.
func (n *node[K]) firstChild() *node[K] {
	if n.leaf {
		return nil
	}
	return n.child(0)
}

func (n *node[K]) lastChild() *node[K] {
	if n.leaf {
		return nil
	}
	return n.child(len(n.children) - 1)
}

func (n *node[K]) full(degree int) bool { return len(n.keys) == 2*degree-1 }

// shift moves the keys at and after from, and on an internal node the
// children at and after from, count places to the right. The vacated slots
// keep their previous contents until the caller overwrites them.
func (n *node[K]) shift(from, count int) {
	if from < 0 || from > len(n.keys) || count < 0 {
		panic(errors.Wrapf(ordered.ErrIndexOutOfRange, "btree: shift(%d, %d) on %d keys", from, count, len(n.keys)))
	}
	end := len(n.keys)
	n.keys = extend(n.keys, count)
	copy(n.keys[from+count:], n.keys[from:end])
	if !n.leaf {
		end = len(n.children)
		n.children = extend(n.children, count)
		copy(n.children[from+count:], n.children[from:end])
	}
}

// insert places key at index, opening a gap when index is inside the node
// and appending otherwise. Non-nil left and right overwrite the children on
// either side of the new key.
func (n *node[K]) insert(key K, left, right *node[K], index int) {
	if index < 0 || index > len(n.keys) {
		panic(errors.Wrapf(ordered.ErrIndexOutOfRange, "btree: insert at %d of %d keys", index, len(n.keys)))
	}
	if index < len(n.keys) {
		n.shift(index, 1)
	} else {
		n.keys = extend(n.keys, 1)
		if !n.leaf {
			n.children = extend(n.children, 1)
		}
	}
	n.keys[index] = key
	if left != nil {
		n.setChild(left, index)
	}
	if right != nil {
		n.setChild(right, index+1)
	}
}

// remove deletes the key at index and returns it. On an internal node
// dropLeft also deletes the child before the key and dropRight the child
// after it; with neither, the trailing child is dropped.
func (n *node[K]) remove(index int, dropLeft, dropRight bool) K {
	if dropLeft && dropRight {
		panic(errors.Wrap(ordered.ErrInvalidArgument, "btree: remove cannot drop both children"))
	}
	n.checkKey(index)
	key := n.keys[index]
	n.keys = removeAt(n.keys, index)
	if !n.leaf {
		switch {
		case dropLeft:
			n.children = removeAt(n.children, index)
		case dropRight:
			n.children = removeAt(n.children, index+1)
		default:
			n.children = truncate(n.children, len(n.keys)+1)
		}
	}
	return key
}

// copyTo writes count keys starting at from into target starting at to, and
// the count+1 children around them when n is internal. target grows when the
// written range runs past its end.
func (n *node[K]) copyTo(from, count int, target *node[K], to int) {
	if from < 0 || count < 0 || from+count > len(n.keys) || to < 0 || to > len(target.keys) {
		panic(errors.Wrapf(ordered.ErrIndexOutOfRange, "btree: copy [%d,%d) of %d keys to %d of %d",
			from, from+count, len(n.keys), to, len(target.keys)))
	}
	if grow := to + count - len(target.keys); grow > 0 {
		target.keys = extend(target.keys, grow)
	}
	copy(target.keys[to:], n.keys[from:from+count])
	if n.leaf {
		return
	}
	if grow := to + count + 1 - len(target.children); grow > 0 {
		target.children = extend(target.children, grow)
	}
	copy(target.children[to:], n.children[from:from+count+1])
}

// truncateKeys cuts the node down to size keys, keeping size+1 children on an
// internal node.
func (n *node[K]) truncateKeys(size int) {
	if size < 0 || size > len(n.keys) {
		panic(errors.Wrapf(ordered.ErrIndexOutOfRange, "btree: truncate to %d of %d keys", size, len(n.keys)))
	}
	n.keys = truncate(n.keys, size)
	if !n.leaf {
		n.children = truncate(n.children, size+1)
	}
}

// find returns the first index whose key is not less than key and whether
// that key is equal to it.
func (n *node[K]) find(key K, cmp ordered.CompareFunc[K]) (int, bool) {
	i := 0
	for i < len(n.keys) {
		c := cmp(key, n.keys[i])
		if c == 0 {
			return i, true
		}
		if c < 0 {
			break
		}
		i++
	}
	return i, false
}

func (n *node[K]) checkKey(i int) {
	if i < 0 || i >= len(n.keys) {
		panic(errors.Wrapf(ordered.ErrIndexOutOfRange, "btree: key %d of %d", i, len(n.keys)))
	}
}

func (n *node[K]) checkChild(i int) {
	if n.leaf || i < 0 || i >= len(n.children) {
		panic(errors.Wrapf(ordered.ErrIndexOutOfRange, "btree: child %d of %d (leaf=%t)", i, len(n.children), n.leaf))
	}
}

// extend lengthens s by count zeroed elements, reusing spare capacity.
func extend[T any](s []T, count int) []T {
	s = slices.Grow(s, count)
	s = s[:len(s)+count]
	clear(s[len(s)-count:])
	return s
}

func removeAt[T any](s []T, index int) []T {
	copy(s[index:], s[index+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

func truncate[T any](s []T, size int) []T {
	clear(s[size:])
	return s[:size]
}
