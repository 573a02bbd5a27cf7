// Package primitives provides the foundational data types of the trace engine:
// the immutable TraceEvent snapshot, highlight codes, the fixed pointer record and
// the RunConfig descriptor.
//
// This package is a leaf: it imports nothing from the rest of the module.
//
// Core invariants:
// - Immutability of recorded events (values and highlights are copied on creation)
// - len(Values) == len(Highlights) for every event
// - Exactly PointerSlots cursors per event, unused slots set to NoPointer
package primitives
