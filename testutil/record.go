// Package testutil holds helpers shared by tests that need a recorded trace.
package testutil

import (
	"testing"

	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/drivers"
	"github.com/comalice/algotrace/internal/primitives"
	"github.com/sirupsen/logrus/hooks/test"
)

// Recording is the outcome of running one registered operation.
type Recording struct {
	Run    *core.Run
	Config primitives.RunConfig
	Hook   *test.Hook
}

// Events returns the recorded trace.
func (rec Recording) Events() []primitives.TraceEvent {
	return rec.Run.Recorder().Events()
}

// Record runs the registered operation on a run with a null logger and fails tb
// if the operation is unknown or rejects its input. The run is closed when tb
// finishes.
func Record(tb testing.TB, st primitives.StructureType, name string, in drivers.Input, opts ...core.Option) Recording {
	tb.Helper()
	op, err := drivers.Lookup(st, name)
	if err != nil {
		tb.Fatalf("lookup %s/%s: %v", st, name, err)
	}
	logger, hook := test.NewNullLogger()
	r := core.NewRun(append([]core.Option{core.WithLogger(logger)}, opts...)...)
	tb.Cleanup(r.Close)
	if err := op.Run(r, in); err != nil {
		tb.Fatalf("run %s/%s: %v", st, name, err)
	}
	return Recording{Run: r, Config: op.Config(), Hook: hook}
}
