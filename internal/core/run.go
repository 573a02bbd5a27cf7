// Package core provides the runtime tier of the trace engine: the bounded Recorder
// and the Run context every driver call receives.
// Dependencies: internal/primitives.
//
// A Run replaces process-wide state. It is constructed fresh per run, passed
// explicitly to every driver and torn down with Close.
package core

import (
	"fmt"
	"sync/atomic"

	"github.com/comalice/algotrace/internal/primitives"
	log "github.com/sirupsen/logrus"
)

// Default limits, matching the bounds the trace viewer was designed around.
const (
	DefaultMaxArraySize  = 50
	DefaultStackCapacity = 100
	DefaultQueueCapacity = 100
)

// Option applies configuration to a Run via the functional options pattern.
type Option func(*Run)

var runSeq atomic.Uint64

// Run is the explicit context of one algorithm run. Single-threaded: drivers run to
// completion synchronously and the recorder is the only shared resource.
type Run struct {
	id       string
	recorder *Recorder
	logger   *log.Logger
	entry    *log.Entry

	capacity      int
	maxArraySize  int
	stackCapacity int
	queueCapacity int
}

// NewRun creates and initializes a Run.
func NewRun(opts ...Option) *Run {
	r := &Run{
		capacity:      DefaultCapacity,
		maxArraySize:  DefaultMaxArraySize,
		stackCapacity: DefaultStackCapacity,
		queueCapacity: DefaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.id == "" {
		r.id = fmt.Sprintf("run-%d", runSeq.Add(1))
	}
	if r.logger == nil {
		r.logger = log.StandardLogger()
	}
	r.entry = r.logger.WithField("run", r.id)
	r.recorder = NewRecorder(r.capacity)
	return r
}

// ID returns the run identifier.
func (r *Run) ID() string { return r.id }

// Recorder returns the run's event log.
func (r *Run) Recorder() *Recorder { return r.recorder }

// Log returns the run-scoped logger.
func (r *Run) Log() *log.Entry { return r.entry }

// MaxArraySize is the largest array the array drivers accept.
func (r *Run) MaxArraySize() int { return r.maxArraySize }

// StackCapacity is the capacity of stacks created for this run.
func (r *Run) StackCapacity() int { return r.stackCapacity }

// QueueCapacity is the capacity of queues created for this run.
func (r *Run) QueueCapacity() int { return r.queueCapacity }

// Emit records one event. Drops past capacity are reported once at debug level.
func (r *Run) Emit(action string, values, highlights []int, pointers primitives.Pointers, description, complexity string) {
	before := r.recorder.Dropped()
	r.recorder.Record(action, values, highlights, pointers, description, complexity)
	if before == 0 && r.recorder.Dropped() == 1 {
		r.entry.WithField("capacity", r.recorder.Cap()).Debug("trace capacity reached, dropping further events")
	}
}

// Emitf records one event with a formatted description and no pointers.
func (r *Run) Emitf(action string, values, highlights []int, complexity, format string, args ...any) {
	r.Emit(action, values, highlights, primitives.NoPointers(), fmt.Sprintf(format, args...), complexity)
}

// Close tears the run down, releasing the recorded trace.
func (r *Run) Close() {
	r.recorder.Reset()
}
