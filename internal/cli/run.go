package cli

import (
	"fmt"
	"math"
	"math/rand/v2"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/drivers"
	"github.com/comalice/algotrace/internal/primitives"
	"github.com/comalice/algotrace/internal/production"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type runFlags struct {
	values    []int
	target    int
	count     int
	random    int
	min, max  int
	seed      uint64
	outputDir string
	archive   bool
	summary   bool
}

func newRunCommand(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <structure> <operation>",
		Short: "Run one operation and export its trace",
		Example: `  algotrace run array bubble_sort --values 3,1,2
  algotrace run array quick_sort --random 20 --seed 7
  algotrace run binary_search_tree search --target 40
  algotrace run stack pop --count 2 --archive`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], args[1], f)
		},
	}
	fl := cmd.Flags()
	fl.IntSliceVar(&f.values, "values", nil, "comma separated input values")
	fl.IntVar(&f.target, "target", 0, "value to search for or delete")
	fl.IntVar(&f.count, "count", 1, "number of pops or dequeues")
	fl.IntVar(&f.random, "random", 0, "generate this many random values instead of --values")
	fl.IntVar(&f.min, "min", 1, "smallest random value")
	fl.IntVar(&f.max, "max", 100, "largest random value")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed (0 picks one)")
	fl.StringVar(&f.outputDir, "output-dir", "", "directory for the exported documents (overrides output_dir)")
	fl.BoolVar(&f.archive, "archive", false, "also save the run to the archive directory")
	fl.BoolVar(&f.summary, "summary", false, "print the recorded steps as a table")
	return cmd
}

func (a *app) run(cmd *cobra.Command, structure, operation string, f runFlags) error {
	st, err := primitives.ParseStructureType(structure)
	if err != nil {
		return err
	}
	op, err := drivers.Lookup(st, operation)
	if err != nil {
		return err
	}
	in, err := f.input()
	if err != nil {
		return err
	}

	opts := append(a.cfg.RunOptions(), core.WithRunID(uuid.NewString()), core.WithLogger(log.StandardLogger()))
	r := core.NewRun(opts...)
	defer r.Close()

	if err := op.Run(r, in); err != nil {
		return err
	}
	rec := r.Recorder()
	if rec.Dropped() > 0 {
		r.Log().WithField("dropped", rec.Dropped()).Warn("trace capacity reached, later steps were not recorded")
	}

	exporter := a.cfg.Exporter()
	if f.outputDir != "" {
		exporter.Dir = f.outputDir
	}
	events := rec.Events()
	if err := exporter.Export(cmd.Context(), events, op.Config()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s/%s: %d steps recorded", st, operation, rec.Len())
	if rec.Dropped() > 0 {
		fmt.Fprintf(out, " (%d dropped)", rec.Dropped())
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "trace:  %s\nconfig: %s\n", exporter.StepsPath(), exporter.ConfigPath())

	if f.archive {
		dir := a.archiveDir(exporter.Dir)
		p, err := production.NewPersister(a.cfg.ArchiveFormat, dir)
		if err != nil {
			return err
		}
		archive := production.NewRunArchive(r.ID(), op.Config(), events, rec.Dropped())
		if err := p.Save(cmd.Context(), archive); err != nil {
			return errors.Wrapf(err, "archive run %s", r.ID())
		}
		fmt.Fprintf(out, "archived as %s in %s\n", r.ID(), dir)
	}
	if f.summary {
		production.WriteSummary(out, production.NewTraceDocument(events), terminalWidth())
	}
	return nil
}

// archiveDir is archive_dir, or an "archive" directory next to the exports.
func (a *app) archiveDir(outputDir string) string {
	if a.cfg.ArchiveDir != "" {
		return a.cfg.ArchiveDir
	}
	return filepath.Join(outputDir, "archive")
}

func (f runFlags) input() (drivers.Input, error) {
	in := drivers.Input{Values: f.values, Target: f.target, Count: f.count}
	if f.random <= 0 {
		return in, nil
	}
	if f.min > f.max {
		return in, errors.Mark(errors.Newf("--min %d is greater than --max %d", f.min, f.max), drivers.ErrInvalidInput)
	}
	seed := f.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.WithField("seed", seed).Debug("generating random input")
	in.Values = randomValues(rand.New(rand.NewPCG(seed, seed)), f.random, f.min, f.max)
	return in, nil
}

// randomValues draws n values from [lo, hi]. The span is computed in uint64 so
// ranges as wide as the whole int domain stay valid.
func randomValues(rng *rand.Rand, n, lo, hi int) []int {
	span := uint64(hi) - uint64(lo)
	out := make([]int, n)
	for i := range out {
		var off uint64
		if span == math.MaxUint64 {
			off = rng.Uint64()
		} else {
			off = rng.Uint64N(span + 1)
		}
		out[i] = int(uint64(lo) + off)
	}
	return out
}
