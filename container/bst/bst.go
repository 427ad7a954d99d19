package bst

// Valid reports whether n refers to a node currently held in the tree.
func (t *Tree[K]) Valid(n NodeID) bool {
	return n >= 0 && int(n) < len(t.nodes) && t.nodes[n].inuse
}

// Search looks for key in the subtree rooted at n and returns the handle of the
// node holding it. Search does not ascend to the root of the tree, keys that
// are not below n are not found.
//
// Complexity: O(h)
func (t *Tree[K]) Search(n NodeID, key K) (match NodeID, found bool) {
	t.stats.Lookups++
	if match = t.search(n, key); match != Nil {
		t.stats.Hits++
		return match, true
	}
	return Nil, false
}

func (t *Tree[K]) search(n NodeID, key K) NodeID {
	for n != Nil {
		switch cmp := t.cmp(key, t.nodes[n].key); {
		case cmp < 0:
			n = t.nodes[n].left
		case cmp > 0:
			n = t.nodes[n].right
		default:
			return n
		}
	}
	return Nil
}

// Minimum returns the node holding the smallest key of the subtree rooted at n.
//
// Complexity: O(h)
func (t *Tree[K]) Minimum(n NodeID) NodeID {
	if n == Nil {
		return Nil
	}
	for t.nodes[n].left != Nil {
		n = t.nodes[n].left
	}
	return n
}

// Maximum returns the node holding the largest key of the subtree rooted at n.
//
// Complexity: O(h)
func (t *Tree[K]) Maximum(n NodeID) NodeID {
	if n == Nil {
		return Nil
	}
	for t.nodes[n].right != Nil {
		n = t.nodes[n].right
	}
	return n
}

// RootOf follows the parent links of n and returns the root of its tree.
//
// Complexity: O(h)
func (t *Tree[K]) RootOf(n NodeID) NodeID {
	if n == Nil {
		return Nil
	}
	for t.nodes[n].parent != Nil {
		n = t.nodes[n].parent
	}
	return n
}

// Successor returns the node holding the next key after the one of x in the
// ordering of the tree. The boolean is false when x holds the largest key.
//
// Complexity: O(h)
func (t *Tree[K]) Successor(x NodeID) (NodeID, bool) {
	if x == Nil {
		return Nil, false
	}
	if r := t.nodes[x].right; r != Nil {
		return t.Minimum(r), true
	}
	y := t.nodes[x].parent
	for y != Nil && x == t.nodes[y].right {
		x, y = y, t.nodes[y].parent
	}
	return y, y != Nil
}

// Insert adds a node holding key to the tree that n belongs to and returns its
// handle. The insertion always starts from the root, whichever node of the tree
// n is. Passing Nil, or a handle that was released by Delete, inserts from the
// current root, or creates a new root if the tree is empty.
//
// The tree does not check for duplicates: programs must use Search before
// inserting a key that may already exist. Duplicate keys are placed in the
// right subtree of their equal.
//
// Complexity: O(h)
func (t *Tree[K]) Insert(n NodeID, key K) NodeID {
	t.stats.Inserts++

	if !t.Valid(n) {
		n = t.root
	}
	if n = t.RootOf(n); n == Nil {
		t.root = t.createNode(key)
		return t.root
	}

	for {
		side := Right
		if t.cmp(key, t.nodes[n].key) < 0 {
			side = Left
		}
		next := t.Child(n, side)
		if next == Nil {
			child := t.createNode(key)
			t.link(n, side, child)
			return child
		}
		n = next
	}
}

// Delete removes the node holding key from the tree that n belongs to. Deleting
// a key which does not exist leaves the tree unmodified and returns false.
//
// When the deleted node has two children it is replaced by its successor, the
// successor node keeps its handle. The handle of the deleted node becomes
// invalid and may be reused by later inserts. Passing Nil or a released handle
// as n deletes from the current root.
//
// Complexity: O(h)
func (t *Tree[K]) Delete(n NodeID, key K) (deleted bool) {
	if !t.Valid(n) {
		n = t.root
	}

	z := t.search(t.RootOf(n), key)
	if z == Nil {
		t.stats.Misses++
		t.log.Info("key not found in tree, nothing deleted", "key", key)
		return false
	}

	r := t.classify(z)
	t.log.Debug("deleting node from tree", "key", key, "case", r)
	t.remove(z, r)
	t.freeNode(z)
	t.stats.Deletes++
	return true
}

// removal enumerates the shapes a node can have when it gets removed from the
// tree, each one relinks the tree differently.
type removal byte

const (
	// The node has no children, its slot is cleared.
	removeLeaf removal = iota
	// The node has one child which takes its slot.
	removeOneChild
	// The successor of the node is its right child, which takes its slot and
	// adopts its left subtree.
	removeDirectSuccessor
	// The successor is deeper in the right subtree. It is first detached from
	// its position, then takes the slot of the node and adopts both subtrees.
	removeIndirectSuccessor
)

func (r removal) String() string {
	switch r {
	case removeLeaf:
		return "leaf"
	case removeOneChild:
		return "one-child"
	case removeDirectSuccessor:
		return "direct-successor"
	default:
		return "indirect-successor"
	}
}

func (t *Tree[K]) classify(z NodeID) removal {
	n := &t.nodes[z]
	switch {
	case n.parent == Nil && n.right != Nil:
		// A root with a right subtree is always replaced by its successor.
		if t.nodes[n.right].left == Nil {
			return removeDirectSuccessor
		}
		return removeIndirectSuccessor
	case n.left == Nil && n.right == Nil:
		return removeLeaf
	case n.left == Nil || n.right == Nil:
		return removeOneChild
	case t.nodes[n.right].left == Nil:
		return removeDirectSuccessor
	default:
		return removeIndirectSuccessor
	}
}

// remove unlinks z from the tree without releasing its arena slot.
func (t *Tree[K]) remove(z NodeID, r removal) {
	switch r {
	case removeLeaf:
		t.transplant(z, Nil)

	case removeOneChild:
		child := t.nodes[z].left
		if child == Nil {
			child = t.nodes[z].right
		}
		t.transplant(z, child)

	case removeDirectSuccessor:
		s := t.nodes[z].right
		t.transplant(z, s)
		t.link(s, Left, t.nodes[z].left)

	case removeIndirectSuccessor:
		s, _ := t.Successor(z)
		t.transplant(s, t.nodes[s].right)
		t.link(s, Right, t.nodes[z].right)
		t.transplant(z, s)
		t.link(s, Left, t.nodes[z].left)
	}
}

// transplant replaces the subtree rooted at u with the subtree rooted at v in
// the slot of u's parent. The links of u are left untouched.
func (t *Tree[K]) transplant(u, v NodeID) {
	p := t.nodes[u].parent
	if p == Nil {
		if t.root == u {
			t.root = v
		}
		if v != Nil {
			t.nodes[v].parent = Nil
		}
		return
	}
	t.link(p, t.sideOf(u), v)
}
