package structures

import "github.com/cockroachdb/errors"

var (
	// ErrFull is returned when a fixed-capacity structure has no free slot.
	ErrFull = errors.New("structure is full")
	// ErrEmpty is returned when removing from an empty structure.
	ErrEmpty = errors.New("structure is empty")
)

// Stack is a LIFO over fixed contiguous storage. top is -1 when empty.
type Stack struct {
	items []int
	top   int
}

// NewStack returns an empty stack holding at most capacity values.
func NewStack(capacity int) *Stack {
	return &Stack{items: make([]int, capacity), top: -1}
}

// Cap returns the capacity.
func (s *Stack) Cap() int { return len(s.items) }

// Len returns the number of occupied slots.
func (s *Stack) Len() int { return s.top + 1 }

// Top returns the index of the top slot, -1 when empty.
func (s *Stack) Top() int { return s.top }

// Push places v on top.
func (s *Stack) Push(v int) error {
	if s.top >= len(s.items)-1 {
		return errors.Wrapf(ErrFull, "stack overflow at capacity %d", len(s.items))
	}
	s.top++
	s.items[s.top] = v
	return nil
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (int, error) {
	if s.top < 0 {
		return 0, errors.Wrap(ErrEmpty, "stack underflow")
	}
	v := s.items[s.top]
	s.top--
	return v, nil
}

// Values returns a copy of the occupied slots, bottom first.
func (s *Stack) Values() []int {
	out := make([]int, s.top+1)
	copy(out, s.items[:s.top+1])
	return out
}

// Clear empties the stack.
func (s *Stack) Clear() { s.top = -1 }
