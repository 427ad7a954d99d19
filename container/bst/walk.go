package bst

// Range calls f for each key of the tree in ascending order. If f returns
// false, the iteration is stopped.
//
// Complexity: O(N)
func (t *Tree[K]) Range(f func(K) bool) {
	t.RangeNodes(func(n NodeID) bool { return f(t.nodes[n].key) })
}

// RangeNodes is like Range but presents the handles of the nodes instead of
// their keys.
//
// Complexity: O(N)
func (t *Tree[K]) RangeNodes(f func(NodeID) bool) {
	stack := make([]NodeID, 0, 32)
	n := t.root
	for n != Nil || len(stack) > 0 {
		for n != Nil {
			stack = append(stack, n)
			n = t.nodes[n].left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(n) {
			return
		}
		n = t.nodes[n].right
	}
}

// Walk calls f for each parent--child relationship of the tree. For every node,
// starting from the root, the edge to its left child is presented first, then
// the edge to its right child, then the walk descends into the left subtree and
// finally the right subtree. Absent children produce no edge. If f returns
// false, the walk is stopped.
//
// Complexity: O(N)
func (t *Tree[K]) Walk(f func(parent, child K) bool) {
	if t.root != Nil {
		t.walk(t.root, f)
	}
}

func (t *Tree[K]) walk(n NodeID, f func(K, K) bool) bool {
	l, r := t.nodes[n].left, t.nodes[n].right
	if l != Nil && !f(t.nodes[n].key, t.nodes[l].key) {
		return false
	}
	if r != Nil && !f(t.nodes[n].key, t.nodes[r].key) {
		return false
	}
	return (l == Nil || t.walk(l, f)) && (r == Nil || t.walk(r, f))
}

// Height returns the number of edges on the longest path from the root to a
// leaf. A tree with a single node has a height of zero, an empty tree has a
// height of -1.
//
// Complexity: O(N)
func (t *Tree[K]) Height() int { return t.height(t.root) }

func (t *Tree[K]) height(n NodeID) int {
	if n == Nil {
		return -1
	}
	return 1 + max(t.height(t.nodes[n].left), t.height(t.nodes[n].right))
}
