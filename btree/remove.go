package btree

// Remove deletes key and reports whether it was stored. Removing an absent
// key leaves the key set unchanged, although nodes met on the way down may
// have been rebalanced.
func (t *Tree[K]) Remove(key K) bool {
	if !t.removeFrom(t.root, key) {
		return false
	}
	t.length--
	return true
}

// removeFrom deletes key from the subtree rooted at n. Every child entered
// holds at least t keys, so a key can always be taken out of a leaf without
// underflowing it.
func (t *Tree[K]) removeFrom(n *node[K], key K) bool {
	for {
		i, found := n.find(key, t.cmp)
		if found {
			if n.isLeaf() {
				t.trace("remove", "leaf", i)
				n.remove(i, false, false)
				return true
			}
			left, right := n.child(i), n.child(i+1)
			switch {
			case left.keyCount() >= t.degree:
				t.trace("remove", "predecessor", i)
				pred := t.maxKey(left)
				t.removeFrom(left, pred)
				n.setKey(pred, i)
				t.metrics.incSubstitution()
				return true
			case right.keyCount() >= t.degree:
				t.trace("remove", "successor", i)
				succ := t.minKey(right)
				t.removeFrom(right, succ)
				n.setKey(succ, i)
				t.metrics.incSubstitution()
				return true
			default:
				t.trace("remove", "merge around key", i)
				n = t.mergeChildren(n, i)
				continue
			}
		}

		if n.isLeaf() {
			return false
		}
		child := n.child(i)
		if child.keyCount() >= t.degree {
			n = child
			continue
		}
		switch {
		case i < n.keyCount() && n.child(i+1).keyCount() >= t.degree:
			t.rotateRight(n, i)
		case i > 0 && n.child(i-1).keyCount() >= t.degree:
			t.rotateLeft(n, i)
		default:
			n = t.mergeChildren(n, i)
		}
		// n is scanned again; the child on the key's path is now big enough.
	}
}

// rotateRight moves the separator at index down into children[index] and
// the first key of the right sibling up in its place. The sibling's first
// child goes along with it.
func (t *Tree[K]) rotateRight(parent *node[K], index int) {
	child, sibling := parent.child(index), parent.child(index+1)
	child.insert(parent.key(index), nil, sibling.firstChild(), child.keyCount())
	parent.setKey(sibling.remove(0, true, false), index)

	t.metrics.incRotation()
	t.trace("remove", "borrow right", index)
	if rotateHook != nil {
		rotateHook(index, true)
	}
}

// rotateLeft is the mirror of rotateRight, borrowing the last key and child
// of the left sibling.
func (t *Tree[K]) rotateLeft(parent *node[K], index int) {
	child, sibling := parent.child(index), parent.child(index-1)
	child.insert(parent.key(index-1), sibling.lastChild(), nil, 0)
	parent.setKey(sibling.remove(sibling.keyCount()-1, false, true), index-1)

	t.metrics.incRotation()
	t.trace("remove", "borrow left", index)
	if rotateHook != nil {
		rotateHook(index, false)
	}
}

// mergeChildren folds children[index] of parent together with its right
// sibling, or its left one when index is the last slot, pulling the
// separating key down between them. The absorbed sibling is released.
//
// It returns parent, or the merged node when parent was the root and lost its
// last key, in which case the merged node becomes the new root.
func (t *Tree[K]) mergeChildren(parent *node[K], index int) *node[K] {
	merged := parent.child(index)
	if index < parent.keyCount() {
		removed := parent.child(index + 1)
		m := merged.keyCount()
		merged.insert(parent.key(index), nil, nil, m)
		parent.remove(index, false, true)
		removed.copyTo(0, removed.keyCount(), merged, m+1)
		t.releaseNode(removed)
	} else {
		removed := parent.child(index - 1)
		r := removed.keyCount()
		merged.shift(0, r+1)
		removed.copyTo(0, r, merged, 0)
		merged.setKey(parent.key(index-1), r)
		parent.remove(index-1, true, false)
		t.releaseNode(removed)
	}

	collapsed := parent == t.root && parent.keyCount() == 0
	t.metrics.incMerge(collapsed)
	t.trace("remove", "merge", index)
	if mergeHook != nil {
		mergeHook(index, collapsed)
	}
	if !collapsed {
		return parent
	}

	t.trace("remove", "root collapse", index)
	t.root = merged
	t.height--
	t.releaseNode(parent)
	return merged
}

func (t *Tree[K]) maxKey(n *node[K]) K {
	for !n.isLeaf() {
		n = n.lastChild()
	}
	return n.lastKey()
}

func (t *Tree[K]) minKey(n *node[K]) K {
	for !n.isLeaf() {
		n = n.firstChild()
	}
	return n.firstKey()
}
