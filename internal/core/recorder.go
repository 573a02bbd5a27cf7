package core

import "github.com/comalice/algotrace/internal/primitives"

// DefaultCapacity bounds the number of events a Recorder keeps.
const DefaultCapacity = 1000

// Recorder is the append-only, bounded event log of one run.
//
// It is write-only while drivers execute and read-only during export. Once the
// capacity is reached further emissions are dropped without error; Dropped reports
// how many were lost. Not safe for concurrent use: a run is single-threaded.
type Recorder struct {
	events   []primitives.TraceEvent
	capacity int
	dropped  int
}

// NewRecorder creates a Recorder holding at most capacity events.
// A non-positive capacity falls back to DefaultCapacity.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{capacity: capacity}
}

// Record appends one event if capacity remains, else it is a no-op.
// Values and highlights are copied; see primitives.NewTraceEvent.
func (r *Recorder) Record(action string, values, highlights []int, pointers primitives.Pointers, description, complexity string) {
	if len(r.events) >= r.capacity {
		r.dropped++
		return
	}
	ev := primitives.NewTraceEvent(action, values, highlights, pointers, description, complexity)
	ev.Step = len(r.events)
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded sequence in emission order.
func (r *Recorder) Events() []primitives.TraceEvent {
	out := make([]primitives.TraceEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.events) }

// Cap returns the configured capacity.
func (r *Recorder) Cap() int { return r.capacity }

// Dropped returns the number of emissions discarded because the recorder was full.
func (r *Recorder) Dropped() int { return r.dropped }

// Last returns the most recent event, if any.
func (r *Recorder) Last() (primitives.TraceEvent, bool) {
	if len(r.events) == 0 {
		return primitives.TraceEvent{}, false
	}
	return r.events[len(r.events)-1], true
}

// Reset clears the sequence and counters. Used between independent runs only.
func (r *Recorder) Reset() {
	r.events = nil
	r.dropped = 0
}
