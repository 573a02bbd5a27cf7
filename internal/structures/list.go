package structures

type listNode struct {
	value int
	next  *listNode
}

// List is a singly linked list.
type List struct {
	head *listNode
	size int
}

// NewList returns an empty list.
func NewList() *List { return &List{} }

// Len returns the number of elements.
func (l *List) Len() int { return l.size }

// PushFront inserts v before the head.
func (l *List) PushFront(v int) {
	l.head = &listNode{value: v, next: l.head}
	l.size++
}

// PushBack appends v after the last element and returns its index.
func (l *List) PushBack(v int) int {
	n := &listNode{value: v}
	if l.head == nil {
		l.head = n
	} else {
		cur := l.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = n
	}
	l.size++
	return l.size - 1
}

// InsertOrdered inserts v before the first element greater than it and returns its
// index. On an ascending list the result stays ascending; equal values keep
// insertion order.
func (l *List) InsertOrdered(v int) int {
	if l.head == nil || v < l.head.value {
		l.PushFront(v)
		return 0
	}
	idx := 1
	cur := l.head
	for cur.next != nil && cur.next.value <= v {
		cur = cur.next
		idx++
	}
	cur.next = &listNode{value: v, next: cur.next}
	l.size++
	return idx
}

// Walk calls fn for each element in order until fn returns false.
func (l *List) Walk(fn func(pos, value int) bool) {
	pos := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if !fn(pos, cur.value) {
			return
		}
		pos++
	}
}

// Values flattens the list head first.
func (l *List) Values() []int {
	out := make([]int, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}
	return out
}

// Clear releases every node.
func (l *List) Clear() {
	l.head = nil
	l.size = 0
}
