package structures

import "github.com/cockroachdb/errors"

// Queue is a FIFO over fixed contiguous storage addressed by front and rear
// indices. Both are -1 when the queue is empty; they reset to -1 exactly when the
// last occupied slot is dequeued. The storage does not wrap: once rear reaches the
// last slot the queue is full until it drains.
type Queue struct {
	items       []int
	front, rear int
}

// NewQueue returns an empty queue holding at most capacity values.
func NewQueue(capacity int) *Queue {
	return &Queue{items: make([]int, capacity), front: -1, rear: -1}
}

// Cap returns the capacity.
func (q *Queue) Cap() int { return len(q.items) }

// Front returns the front index, -1 when empty.
func (q *Queue) Front() int { return q.front }

// Rear returns the rear index, -1 when empty.
func (q *Queue) Rear() int { return q.rear }

// Empty reports whether no slot is occupied.
func (q *Queue) Empty() bool { return q.front == -1 || q.front > q.rear }

// Len returns the number of occupied slots.
func (q *Queue) Len() int {
	if q.Empty() {
		return 0
	}
	return q.rear - q.front + 1
}

// Enqueue appends v at the rear.
func (q *Queue) Enqueue(v int) error {
	if q.rear >= len(q.items)-1 {
		return errors.Wrapf(ErrFull, "queue overflow at rear index %d", q.rear)
	}
	if q.front == -1 {
		q.front = 0
	}
	q.rear++
	q.items[q.rear] = v
	return nil
}

// Dequeue removes and returns the front value.
func (q *Queue) Dequeue() (int, error) {
	if q.Empty() {
		return 0, errors.Wrap(ErrEmpty, "queue underflow")
	}
	v := q.items[q.front]
	q.front++
	if q.front > q.rear {
		q.front, q.rear = -1, -1
	}
	return v, nil
}

// Window returns a copy of the logically occupied slots between front and rear.
func (q *Queue) Window() []int {
	if q.Empty() {
		return []int{}
	}
	out := make([]int, q.rear-q.front+1)
	copy(out, q.items[q.front:q.rear+1])
	return out
}

// Clear empties the queue.
func (q *Queue) Clear() { q.front, q.rear = -1, -1 }
