// Package bst implements an unbalanced binary search tree where every node
// carries a back-reference to its parent.
//
// Nodes are stored in an arena owned by the Tree and are addressed by NodeID
// handles. A handle stays valid for the whole lifetime of its node, including
// when a deletion relinks the node to a different position in the tree, which
// lets programs hold on to nodes returned by Search and observe later
// mutations of the tree through them. Parent links are plain indices into the
// arena, only child links define which nodes are reachable.
//
// The tree does not rebalance itself, operations run in O(h) where h is the
// height of the tree. Like the other containers of this module, Tree values are
// not safe to use concurrently from multiple goroutines.
package bst

import "log/slog"

// NodeID is a handle to a node held in a Tree.
type NodeID int32

// Nil is the handle representing the absence of a node.
const Nil NodeID = -1

// Side selects one of the two child slots of a node.
type Side byte

const (
	Left  Side = 0
	Right Side = 1
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Config carries the configuration of a Tree.
type Config struct {
	// Number of nodes to preallocate in the arena.
	Capacity int
	// Logger receiving informational messages, like deletes of keys that do
	// not exist in the tree.
	Logger *slog.Logger
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity: 16,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Tree instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is a tree configuration option setting the number of nodes that
// the arena is sized for when the tree is created.
func Capacity(n int) Option {
	return option(func(config *Config) { config.Capacity = n })
}

// Logger is a tree configuration option setting the logger that the tree
// reports informational events to.
func Logger(logger *slog.Logger) Option {
	return option(func(config *Config) { config.Logger = logger })
}

// Stats contains counters tracking usage of a tree.
type Stats struct {
	Inserts int64
	Deletes int64
	Misses  int64 // deletes of keys that were not found
	Lookups int64
	Hits    int64
}

// Tree is a binary search tree of unique keys ordered by a comparison function.
type Tree[K any] struct {
	cmp   func(K, K) int
	log   *slog.Logger
	nodes []node[K]
	free  []NodeID
	root  NodeID
	len   int
	stats Stats
}

type node[K any] struct {
	key    K
	parent NodeID
	left   NodeID
	right  NodeID
	inuse  bool
}

// New constructs a tree holding a single root node with the given key. The
// comparison function passed as argument is used to order the keys.
func New[K any](cmp func(K, K) int, key K, options ...Option) *Tree[K] {
	config := DefaultConfig()
	config.Apply(options...)
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Capacity < 1 {
		config.Capacity = 1
	}

	t := &Tree[K]{
		cmp:   cmp,
		log:   config.Logger,
		nodes: make([]node[K], 0, config.Capacity),
		root:  Nil,
	}
	t.root = t.createNode(key)
	t.stats.Inserts++
	return t
}

// Len returns the number of nodes in the tree.
//
// Complexity: O(1)
func (t *Tree[K]) Len() int { return t.len }

// Root returns the handle of the current root of the tree, or Nil if the last
// node of the tree was deleted.
//
// Complexity: O(1)
func (t *Tree[K]) Root() NodeID { return t.root }

// Stats returns the usage counters of the tree.
func (t *Tree[K]) Stats() Stats { return t.stats }

// Key returns the key held by n.
func (t *Tree[K]) Key(n NodeID) K { return t.nodes[n].key }

// Parent returns the parent of n, or Nil if n is the root.
func (t *Tree[K]) Parent(n NodeID) NodeID { return t.nodes[n].parent }

// Left returns the left child of n, or Nil.
func (t *Tree[K]) Left(n NodeID) NodeID { return t.nodes[n].left }

// Right returns the right child of n, or Nil.
func (t *Tree[K]) Right(n NodeID) NodeID { return t.nodes[n].right }

// Child returns the child of n on the given side, or Nil.
func (t *Tree[K]) Child(n NodeID, side Side) NodeID {
	if side == Left {
		return t.nodes[n].left
	}
	return t.nodes[n].right
}

// Sibling returns the other child of the parent of n, or Nil if n is the root
// or an only child.
func (t *Tree[K]) Sibling(n NodeID) NodeID {
	p := t.nodes[n].parent
	if p == Nil {
		return Nil
	}
	if t.nodes[p].left == n {
		return t.nodes[p].right
	}
	return t.nodes[p].left
}

// AttachChild creates a node holding key and installs it as the child of parent
// on the given side. A node previously occupying the slot is destroyed along
// with its whole subtree.
//
// The method does not verify that key respects the ordering of the tree, it is
// intended for building trees of a known shape.
func (t *Tree[K]) AttachChild(parent NodeID, side Side, key K) NodeID {
	if prev := t.Child(parent, side); prev != Nil {
		t.destroy(prev)
	}
	child := t.createNode(key)
	t.link(parent, side, child)
	t.stats.Inserts++
	return child
}

func (t *Tree[K]) createNode(key K) NodeID {
	n := node[K]{key: key, parent: Nil, left: Nil, right: Nil, inuse: true}
	t.len++

	if i := len(t.free); i > 0 {
		id := t.free[i-1]
		t.free = t.free[:i-1]
		t.nodes[id] = n
		return id
	}

	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// freeNode releases the arena slot of n, which must already be unlinked.
// Slots which are already free are left untouched.
func (t *Tree[K]) freeNode(n NodeID) {
	if !t.nodes[n].inuse {
		return
	}
	t.nodes[n] = node[K]{parent: Nil, left: Nil, right: Nil}
	t.free = append(t.free, n)
	t.len--
}

// destroy releases n and all its descendants.
func (t *Tree[K]) destroy(n NodeID) {
	stack := []NodeID{n}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l := t.nodes[x].left; l != Nil {
			stack = append(stack, l)
		}
		if r := t.nodes[x].right; r != Nil {
			stack = append(stack, r)
		}
		t.freeNode(x)
	}
}

// link sets child in the given slot of parent and points the back-reference of
// child to parent. Either may be Nil.
func (t *Tree[K]) link(parent NodeID, side Side, child NodeID) {
	if parent != Nil {
		if side == Left {
			t.nodes[parent].left = child
		} else {
			t.nodes[parent].right = child
		}
	}
	if child != Nil {
		t.nodes[child].parent = parent
	}
}

// sideOf returns which slot of its parent n occupies. The result is
// meaningless when n is a root.
func (t *Tree[K]) sideOf(n NodeID) Side {
	if p := t.nodes[n].parent; p != Nil && t.nodes[p].left == n {
		return Left
	}
	return Right
}
