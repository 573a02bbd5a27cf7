package drivers

import (
	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/structures"
)

// highlightNode flattens t and marks the pre-order position of n.
func highlightNode(t *structures.Tree, n *structures.Node, code int) ([]int, []int) {
	vals := t.Preorder()
	return vals, mark(len(vals), t.Position(n), code)
}

// BSTInsert inserts key into t. Duplicate keys are ignored without an event.
func BSTInsert(r *core.Run, t *structures.Tree, key int) bool {
	first := t.Len() == 0
	n, ok := t.Insert(key)
	if !ok {
		r.Log().WithField("key", key).Debug("duplicate key ignored")
		return false
	}
	vals, hl := highlightNode(t, n, primary)
	if first {
		r.Emitf("INSERT_BST", vals, hl, constant, "Inserted root node %d", key)
	} else {
		r.Emitf("INSERT_BST", vals, hl, logarithmic, "Inserted %d into BST", key)
	}
	return true
}

// BSTSearch descends from the root looking for key.
func BSTSearch(r *core.Run, t *structures.Tree, key int) bool {
	n := t.Search(key, func(cur *structures.Node) {
		vals, hl := highlightNode(t, cur, primary)
		r.Emitf("SEARCH_BST", vals, hl, logarithmic,
			"Searching for %d, checking node %d", key, cur.Key())
	})
	if n != nil {
		vals, hl := highlightNode(t, n, secondary)
		r.Emitf("SEARCH_BST_FOUND", vals, hl, logarithmic, "Target %d found", key)
		return true
	}
	r.Emitf("SEARCH_BST_NOT_FOUND", t.Preorder(), nil, logarithmic, "Target %d not found", key)
	return false
}

// BSTDelete removes key from t. A node with two children is replaced by its
// in-order successor, whose original node is then deleted from the right subtree;
// that second descent is traced like the first.
func BSTDelete(r *core.Run, t *structures.Tree, key int) bool {
	if t.Len() == 0 {
		r.Emitf("DELETE_BST_NOT_FOUND", []int{}, nil, logarithmic, "Tree is empty, %d not found", key)
		return false
	}
	ok := t.Delete(key, structures.DeleteHooks{
		Visit: func(cur *structures.Node, target int) {
			vals, hl := highlightNode(t, cur, primary)
			r.Emitf("DELETE_BST_SEARCH", vals, hl, logarithmic,
				"Searching for %d to delete, checking node %d", target, cur.Key())
		},
		Found: func(cur *structures.Node) {
			vals, hl := highlightNode(t, cur, secondary)
			r.Emitf("DELETE_BST_FOUND", vals, hl, logarithmic,
				"Node %d found, proceeding with deletion", cur.Key())
		},
	})
	if !ok {
		r.Emitf("DELETE_BST_NOT_FOUND", t.Preorder(), nil, logarithmic, "Element %d not found in BST", key)
		return false
	}
	r.Emitf("DELETE_BST_COMPLETE", t.Preorder(), nil, logarithmic, "Node %d deleted from BST", key)
	return true
}

// BSTInorder walks t left, node, right and traces the growing visit sequence.
func BSTInorder(r *core.Run, t *structures.Tree) []int {
	keys := t.Inorder()
	for p := 1; p <= len(keys); p++ {
		r.Emitf("INORDER_TRAVERSAL", keys[:p], mark(p, p-1, primary), linear,
			"Visited %d", keys[p-1])
	}
	r.Emitf("INORDER_TRAVERSAL_COMPLETE", keys, nil, linear, "Inorder traversal completed")
	return keys
}
