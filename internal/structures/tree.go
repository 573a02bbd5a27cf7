// Package structures provides the data-structure models the drivers operate on:
// a binary search tree, a singly linked list, a fixed-capacity stack and a
// fixed-capacity two-index queue.
//
// Models own their cells outright. A tree node is owned by its parent link or by
// the Tree handle; a list node by its predecessor or by the List head. Nothing is
// shared and nothing forms a cycle. Models know nothing about tracing: the
// algorithms that need checkpoints accept small visit hooks instead.
package structures

// Node is a BST node. Its links are only mutated by Tree methods.
type Node struct {
	key         int
	left, right *Node
}

// Key returns the node's key.
func (n *Node) Key() int { return n.key }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

// Tree is a binary search tree without duplicate keys.
type Tree struct {
	root *Node
	size int
}

// NewTree returns an empty tree.
func NewTree() *Tree { return &Tree{} }

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of nodes.
func (t *Tree) Len() int { return t.size }

// Insert adds key using the standard recursive descent. Equal keys are ignored and
// reported with inserted=false. The returned node is the one holding key.
func (t *Tree) Insert(key int) (n *Node, inserted bool) {
	t.root, n, inserted = insert(t.root, key)
	if inserted {
		t.size++
	}
	return n, inserted
}

func insert(root *Node, key int) (*Node, *Node, bool) {
	if root == nil {
		n := &Node{key: key}
		return n, n, true
	}
	var n *Node
	var ok bool
	switch {
	case key < root.key:
		root.left, n, ok = insert(root.left, key)
	case key > root.key:
		root.right, n, ok = insert(root.right, key)
	default:
		return root, root, false
	}
	return root, n, ok
}

// Search descends iteratively from the root, calling visit for every node compared.
// It returns the matching node or nil.
func (t *Tree) Search(key int, visit func(*Node)) *Node {
	for cur := t.root; cur != nil; {
		if visit != nil {
			visit(cur)
		}
		switch {
		case key == cur.key:
			return cur
		case key < cur.key:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// DeleteHooks observes a deletion. Visit is called for every node on the descent
// together with the key being looked for, Found when the key matches, before any
// link changes.
type DeleteHooks struct {
	Visit func(n *Node, key int)
	Found func(n *Node)
}

// Delete removes key with the three-case removal: a leaf is dropped, a node with one
// child is spliced out, and a node with two children takes its in-order
// successor's key before that key is deleted from the right subtree. The hooks see
// the successor deletion as a second descent.
func (t *Tree) Delete(key int, hooks DeleteHooks) bool {
	var deleted bool
	t.root, deleted = t.delete(t.root, key, hooks)
	if deleted {
		t.size--
	}
	return deleted
}

func (t *Tree) delete(root *Node, key int, hooks DeleteHooks) (*Node, bool) {
	if root == nil {
		return nil, false
	}
	if hooks.Visit != nil {
		hooks.Visit(root, key)
	}
	var ok bool
	switch {
	case key < root.key:
		root.left, ok = t.delete(root.left, key, hooks)
		return root, ok
	case key > root.key:
		root.right, ok = t.delete(root.right, key, hooks)
		return root, ok
	}

	if hooks.Found != nil {
		hooks.Found(root)
	}
	if root.left == nil {
		return root.right, true
	}
	if root.right == nil {
		return root.left, true
	}
	succ := root.right
	for succ.left != nil {
		succ = succ.left
	}
	root.key = succ.key
	root.right, _ = t.delete(root.right, succ.key, hooks)
	return root, true
}

// Preorder flattens the tree as node, left subtree, right subtree.
func (t *Tree) Preorder() []int {
	out := make([]int, 0, t.size)
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		out = append(out, n.key)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Inorder returns the keys in ascending order.
func (t *Tree) Inorder() []int {
	out := make([]int, 0, t.size)
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Position returns the pre-order index of n, by identity, or -1 when n is not in
// the tree.
func (t *Tree) Position(n *Node) int {
	pos, idx := -1, 0
	var walk func(*Node) bool
	walk = func(cur *Node) bool {
		if cur == nil {
			return false
		}
		if cur == n {
			pos = idx
			return true
		}
		idx++
		return walk(cur.left) || walk(cur.right)
	}
	walk(t.root)
	return pos
}

// Clear releases every node.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}
