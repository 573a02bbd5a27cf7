// TraceEvent provides the immutable snapshot primitive recorded at every checkpoint
// of an algorithm run.
//
// A TraceEvent is a full picture of the structure at one instant, never a diff.
// Values and Highlights are owned by the event: NewTraceEvent copies them so the
// caller can keep mutating its buffers without corrupting history.
//
// # Immutability
//
// Fields are exported for read-only consumers (exporters, persisters, tests).
// Consumers MUST NOT modify an event after construction.
//
// Example:
//
//	ev := NewTraceEvent("BUBBLE_COMPARE", arr, hl, NoPointers(), "Comparing arr[0]=3 and arr[1]=1", "O(n²)")
package primitives

import "unicode/utf8"

// Highlight codes. The meaning of each code is local to an algorithm's event
// stream but the numbering is shared so the viewer can color cells uniformly.
const (
	HighlightNone      = 0
	HighlightPrimary   = 1
	HighlightSecondary = 2
	HighlightPivot     = 3
	HighlightPlaced    = 4
)

// PointerSlots is the fixed number of named cursors carried by every event.
const PointerSlots = 10

// NoPointer marks an unused pointer slot.
const NoPointer = -1

// Field bounds carried over from the trace wire format.
const (
	MaxActionLen      = 49
	MaxDescriptionLen = 199
	MaxComplexityLen  = 49
)

// Pointers is the fixed-size cursor record. Being an array it is copied by value.
type Pointers [PointerSlots]int

// NoPointers returns a Pointers value with every slot unused.
func NoPointers() Pointers {
	var p Pointers
	for i := range p {
		p[i] = NoPointer
	}
	return p
}

// PointersOf fills the leading slots with the given cursors and leaves the rest unused.
// Extra cursors beyond PointerSlots are ignored.
func PointersOf(cursors ...int) Pointers {
	p := NoPointers()
	copy(p[:], cursors)
	return p
}

// TraceEvent is one recorded snapshot.
type TraceEvent struct {
	Step        int
	Action      string
	Values      []int
	Highlights  []int
	Pointers    Pointers
	Description string
	Complexity  string
}

// NewTraceEvent builds an event, copying values and aligning highlights to the
// snapshot width. Nil highlights mean no cell is highlighted; a highlights slice of
// the wrong length is truncated or zero-padded. An empty description falls back to
// the action tag so every event stays self-describing.
func NewTraceEvent(action string, values, highlights []int, pointers Pointers, description, complexity string) TraceEvent {
	vals := make([]int, len(values))
	copy(vals, values)
	hl := make([]int, len(values))
	copy(hl, highlights)

	if description == "" {
		description = action
	}
	return TraceEvent{
		Action:      clip(action, MaxActionLen),
		Values:      vals,
		Highlights:  hl,
		Pointers:    pointers,
		Description: clip(description, MaxDescriptionLen),
		Complexity:  clip(complexity, MaxComplexityLen),
	}
}

// Width returns the snapshot width of the event.
func (e TraceEvent) Width() int {
	return len(e.Values)
}

// clip truncates s to at most n bytes without splitting a UTF-8 sequence.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
