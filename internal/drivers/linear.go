package drivers

import (
	"fmt"

	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/primitives"
	"github.com/comalice/algotrace/internal/structures"
)

// StackPush pushes v onto s. A full stack is reported as a notice and nothing is
// recorded. Pointer slot 0 carries the top index.
func StackPush(r *core.Run, s *structures.Stack, v int) bool {
	if err := s.Push(v); err != nil {
		r.Log().WithError(err).WithField("value", v).Warn("stack overflow, push rejected")
		return false
	}
	vals := s.Values()
	r.Emit("PUSH", vals, mark(len(vals), s.Top(), primary), primitives.PointersOf(s.Top()),
		fmt.Sprintf("Pushed %d onto stack", v), constant)
	return true
}

// StackPop pops the top of s, recording the stack before and after removal.
func StackPop(r *core.Run, s *structures.Stack) (int, bool) {
	if s.Len() == 0 {
		r.Log().Warn("stack underflow, pop rejected")
		return 0, false
	}
	before := s.Values()
	top := s.Top()
	r.Emit("POP_BEFORE", before, mark(len(before), top, primary), primitives.PointersOf(top),
		fmt.Sprintf("Popping %d from stack", before[top]), constant)

	v, err := s.Pop()
	if err != nil {
		r.Log().WithError(err).Warn("stack underflow, pop rejected")
		return 0, false
	}
	r.Emit("POP_AFTER", s.Values(), nil, primitives.PointersOf(s.Top()),
		fmt.Sprintf("Popped %d from stack", v), constant)
	return v, true
}

// QueueEnqueue appends v to q. Snapshots cover the logical window between front
// and rear; pointer slots 0 and 1 carry front and rear.
func QueueEnqueue(r *core.Run, q *structures.Queue, v int) bool {
	if err := q.Enqueue(v); err != nil {
		r.Log().WithError(err).WithField("value", v).Warn("queue overflow, enqueue rejected")
		return false
	}
	win := q.Window()
	r.Emit("ENQUEUE", win, mark(len(win), q.Rear()-q.Front(), primary), primitives.PointersOf(q.Front(), q.Rear()),
		fmt.Sprintf("Enqueued %d", v), constant)
	return true
}

// QueueDequeue removes the front of q, recording the window before and after.
func QueueDequeue(r *core.Run, q *structures.Queue) (int, bool) {
	if q.Empty() {
		r.Log().Warn("queue underflow, dequeue rejected")
		return 0, false
	}
	before := q.Window()
	r.Emit("DEQUEUE_BEFORE", before, mark(len(before), 0, primary), primitives.PointersOf(q.Front(), q.Rear()),
		fmt.Sprintf("Dequeuing %d", before[0]), constant)

	v, err := q.Dequeue()
	if err != nil {
		r.Log().WithError(err).Warn("queue underflow, dequeue rejected")
		return 0, false
	}
	r.Emit("DEQUEUE_AFTER", q.Window(), nil, primitives.PointersOf(q.Front(), q.Rear()),
		fmt.Sprintf("Dequeued %d", v), constant)
	return v, true
}
