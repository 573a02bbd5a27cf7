package structures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTree(keys ...int) *Tree {
	t := NewTree()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

func TestTreeInsertPreorder(t *testing.T) {
	tr := buildTree(50, 30, 70, 20, 40, 60, 80)
	require.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, tr.Preorder())
	require.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, tr.Inorder())
	require.Equal(t, 7, tr.Len())
}

func TestTreeInsertDuplicate(t *testing.T) {
	tr := buildTree(5, 3)
	n, ok := tr.Insert(3)
	require.False(t, ok)
	require.Equal(t, 3, n.Key())
	require.Equal(t, 2, tr.Len())
	require.Equal(t, []int{5, 3}, tr.Preorder())
}

func TestTreeSearchVisitsPath(t *testing.T) {
	tr := buildTree(50, 30, 70, 20, 40)
	var path []int
	n := tr.Search(40, func(n *Node) { path = append(path, n.Key()) })
	require.NotNil(t, n)
	require.Equal(t, []int{50, 30, 40}, path)

	path = nil
	require.Nil(t, tr.Search(35, func(n *Node) { path = append(path, n.Key()) }))
	require.Equal(t, []int{50, 30, 40}, path)
	require.Nil(t, NewTree().Search(1, nil))
}

func TestTreeDeleteCases(t *testing.T) {
	tests := []struct {
		name string
		key  int
		want []int
	}{
		{"leaf", 20, []int{50, 30, 40, 70, 60}},
		{"single child", 70, []int{50, 30, 20, 40, 60}},
		{"two children", 30, []int{50, 40, 20, 70, 60}},
		{"root", 50, []int{60, 30, 20, 40, 70}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := buildTree(50, 30, 70, 20, 40, 60)
			require.True(t, tr.Delete(tt.key, DeleteHooks{}))
			require.Equal(t, tt.want, tr.Preorder())
			require.Equal(t, len(tt.want), tr.Len())
		})
	}
}

func TestTreeDeleteHooks(t *testing.T) {
	tr := buildTree(50, 30, 70, 20, 40, 60, 80)
	var visited, found []int
	ok := tr.Delete(30, DeleteHooks{
		Visit: func(n *Node, _ int) { visited = append(visited, n.Key()) },
		Found: func(n *Node) { found = append(found, n.Key()) },
	})
	require.True(t, ok)
	// Descent to 30, then successor 40 removed from 30's right subtree. The node
	// already carries the successor key when the second descent starts.
	require.Equal(t, []int{50, 30, 40}, visited)
	require.Equal(t, []int{30, 40}, found)
	require.Equal(t, []int{50, 40, 20, 70, 60, 80}, tr.Preorder())
}

func TestTreeDeleteMissing(t *testing.T) {
	tr := buildTree(2, 1, 3)
	require.False(t, tr.Delete(9, DeleteHooks{}))
	require.Equal(t, 3, tr.Len())
	require.False(t, NewTree().Delete(1, DeleteHooks{}))
}

func TestTreePosition(t *testing.T) {
	tr := buildTree(50, 30, 70, 20)
	n := tr.Search(70, nil)
	require.Equal(t, 3, tr.Position(n))
	require.Equal(t, 0, tr.Position(tr.Root()))
	require.Equal(t, -1, tr.Position(&Node{key: 70}))
	tr.Clear()
	require.Empty(t, tr.Preorder())
}
