// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/drivers"
	"github.com/comalice/algotrace/internal/primitives"
	"github.com/comalice/algotrace/internal/production"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Input shapes for array benchmarks.
const (
	ShapeRandom   = "random"
	ShapeSorted   = "sorted"
	ShapeReversed = "reversed"
)

// GenArray creates an array of n values in the given shape. Random arrays are
// seeded from n so every run sees the same input.
func GenArray(n int, shape string) []int {
	if n < 1 {
		n = 1
	}
	arr := make([]int, n)
	rng := rand.New(rand.NewPCG(uint64(n), 0x5eed))
	for i := range arr {
		switch shape {
		case ShapeSorted:
			arr[i] = i
		case ShapeReversed:
			arr[i] = n - i
		default:
			arr[i] = rng.IntN(10 * n)
		}
	}
	return arr
}

// GenTreeKeys returns n distinct keys in an insertion order that keeps the tree
// reasonably balanced.
func GenTreeKeys(n int) []int {
	keys := make([]int, 0, n)
	var fill func(lo, hi int)
	fill = func(lo, hi int) {
		if lo > hi {
			return
		}
		mid := lo + (hi-lo)/2
		keys = append(keys, mid)
		fill(lo, mid-1)
		fill(mid+1, hi)
	}
	fill(1, n)
	return keys
}

// NewRun returns a run that records up to capacity events and discards log output.
func NewRun(capacity int) *core.Run {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return core.NewRun(
		core.WithCapacity(capacity),
		core.WithLogger(logger),
		core.WithRunID("bench"),
		core.WithMaxArraySize(1<<16),
	)
}

// RecordedEvents runs operation on structure with the given values and returns the
// recorded trace.
func RecordedEvents(st primitives.StructureType, operation string, values []int) []primitives.TraceEvent {
	op, err := drivers.Lookup(st, operation)
	if err != nil {
		panic(err)
	}
	r := NewRun(1 << 20)
	defer r.Close()
	if err := op.Run(r, drivers.Input{Values: values, Target: values[len(values)/2]}); err != nil {
		panic(fmt.Sprintf("%s/%s: %v", st, operation, err))
	}
	return r.Recorder().Events()
}

// GenTraceYAML generates the YAML form of a quick sort trace over n values.
func GenTraceYAML(n int) []byte {
	events := RecordedEvents(primitives.Array, "quick_sort", GenArray(n, ShapeRandom))
	data, err := yaml.Marshal(production.NewTraceDocument(events))
	if err != nil {
		panic(err)
	}
	return data
}
