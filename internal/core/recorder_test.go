package core

import (
	"testing"

	"github.com/comalice/algotrace/internal/primitives"
)

func TestRecorderAppendsInOrder(t *testing.T) {
	r := NewRecorder(10)
	r.Record("A", []int{1}, nil, primitives.NoPointers(), "first", "O(1)")
	r.Record("B", []int{1, 2}, []int{0, 1}, primitives.PointersOf(1), "second", "O(1)")

	events := r.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events want 2", len(events))
	}
	for i, ev := range events {
		if ev.Step != i {
			t.Errorf("event %d has step %d", i, ev.Step)
		}
	}
	if events[0].Action != "A" || events[1].Action != "B" {
		t.Errorf("unexpected order %q, %q", events[0].Action, events[1].Action)
	}
}

func TestRecorderCapacityDropsSilently(t *testing.T) {
	r := NewRecorder(3)
	for i := 0; i < 5; i++ {
		r.Record("STEP", []int{i}, nil, primitives.NoPointers(), "step", "O(1)")
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d want 3", r.Len())
	}
	if r.Dropped() != 2 {
		t.Errorf("Dropped() = %d want 2", r.Dropped())
	}
	last, ok := r.Last()
	if !ok || last.Values[0] != 2 {
		t.Errorf("last event should be the third emission, got %+v", last)
	}
}

func TestRecorderSnapshotIsolation(t *testing.T) {
	r := NewRecorder(0)
	if r.Cap() != DefaultCapacity {
		t.Errorf("Cap() = %d want default %d", r.Cap(), DefaultCapacity)
	}
	arr := []int{3, 1, 2}
	r.Record("BEFORE", arr, nil, primitives.NoPointers(), "before", "O(1)")
	arr[0], arr[1] = arr[1], arr[0]
	r.Record("AFTER", arr, nil, primitives.NoPointers(), "after", "O(1)")

	events := r.Events()
	if events[0].Values[0] != 3 {
		t.Errorf("mutation leaked into recorded event: %v", events[0].Values)
	}
	// Events returns a copy of the sequence.
	events[0] = primitives.TraceEvent{}
	if r.Events()[0].Action != "BEFORE" {
		t.Error("Events() exposed internal storage")
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder(1)
	r.Record("A", nil, nil, primitives.NoPointers(), "a", "O(1)")
	r.Record("B", nil, nil, primitives.NoPointers(), "b", "O(1)")
	r.Reset()
	if r.Len() != 0 || r.Dropped() != 0 {
		t.Errorf("Reset left len=%d dropped=%d", r.Len(), r.Dropped())
	}
	if _, ok := r.Last(); ok {
		t.Error("Last() after Reset should report no event")
	}
	r.Record("C", nil, nil, primitives.NoPointers(), "c", "O(1)")
	if ev, _ := r.Last(); ev.Step != 0 {
		t.Errorf("step numbering should restart, got %d", ev.Step)
	}
}
