package drivers

import (
	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/structures"
)

// ListInsertFront inserts v at the head of l.
func ListInsertFront(r *core.Run, l *structures.List, v int) {
	l.PushFront(v)
	vals := l.Values()
	r.Emitf("INSERT_BEGINNING", vals, mark(len(vals), 0, primary), constant, "Inserted %d at beginning", v)
}

// ListInsertBack appends v to l.
func ListInsertBack(r *core.Run, l *structures.List, v int) {
	idx := l.PushBack(v)
	vals := l.Values()
	r.Emitf("INSERT_END", vals, mark(len(vals), idx, primary), linear, "Inserted %d at end", v)
}

// ListInsertSequential appends v to l as one step of building a list element by
// element.
func ListInsertSequential(r *core.Run, l *structures.List, v int) {
	idx := l.PushBack(v)
	vals := l.Values()
	r.Emitf("INSERT_SEQUENTIAL", vals, mark(len(vals), idx, primary), linear,
		"Added element %d sequentially", v)
}

// ListInsertOrdered inserts v before the first greater element.
func ListInsertOrdered(r *core.Run, l *structures.List, v int) {
	idx := l.InsertOrdered(v)
	vals := l.Values()
	r.Emitf("INSERT_ORDERED", vals, mark(len(vals), idx, primary), linear,
		"Inserted %d in order at position %d", v, idx)
}

// ListSearch walks l from the head looking for target and returns its position.
func ListSearch(r *core.Run, l *structures.List, target int) (int, bool) {
	found := -1
	l.Walk(func(pos, v int) bool {
		vals := l.Values()
		r.Emitf("SEARCH_LIST", vals, mark(len(vals), pos, primary), linear,
			"Searching for %d, checking position %d", target, pos)
		if v == target {
			r.Emitf("SEARCH_LIST_FOUND", vals, mark(len(vals), pos, secondary), linear,
				"Element %d found at position %d", target, pos)
			found = pos
			return false
		}
		return true
	})
	if found >= 0 {
		return found, true
	}
	r.Emitf("SEARCH_LIST_NOT_FOUND", l.Values(), nil, linear, "Element %d not found", target)
	return -1, false
}
