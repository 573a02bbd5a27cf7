// Package production provides the outer integrations of a run: the wire documents
// read by the trace viewer, the archive persisters and the tabular summary.
package production

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/comalice/algotrace/internal/primitives"
	"golang.org/x/sync/errgroup"
)

// Default file names expected by the trace viewer.
const (
	DefaultStepsFile  = "algorithm_steps.json"
	DefaultConfigFile = "algorithm_config.json"
)

var (
	// ErrExport marks every failure to write an export document.
	ErrExport = errors.New("trace export failed")
	// ErrInvalidTrace is returned when a trace document breaks the wire schema.
	ErrInvalidTrace = errors.New("invalid trace document")
)

// StepRecord is one element of the "steps" array. Field order is the wire order.
type StepRecord struct {
	Step        int    `json:"step" yaml:"step"`
	Action      string `json:"action" yaml:"action"`
	Data        []int  `json:"data" yaml:"data,flow"`
	Highlighted []int  `json:"highlighted" yaml:"highlighted,flow"`
	Pointers    []int  `json:"pointers" yaml:"pointers,flow"`
	Description string `json:"description" yaml:"description"`
	Complexity  string `json:"complexity" yaml:"complexity"`
}

// TraceDocument is the content of algorithm_steps.json.
type TraceDocument struct {
	Steps      []StepRecord `json:"steps" yaml:"steps"`
	TotalSteps int          `json:"total_steps" yaml:"total_steps"`
}

// NewTraceDocument converts recorded events into the wire document. Empty data
// and highlight arrays serialize as [] rather than null.
func NewTraceDocument(events []primitives.TraceEvent) TraceDocument {
	doc := TraceDocument{Steps: make([]StepRecord, 0, len(events)), TotalSteps: len(events)}
	for i, ev := range events {
		doc.Steps = append(doc.Steps, StepRecord{
			Step:        i,
			Action:      ev.Action,
			Data:        ints(ev.Values),
			Highlighted: ints(ev.Highlights),
			Pointers:    ints(ev.Pointers[:]),
			Description: ev.Description,
			Complexity:  ev.Complexity,
		})
	}
	return doc
}

func ints(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// Validate checks step numbering, array alignment and the total count.
func (d TraceDocument) Validate() error {
	if d.TotalSteps != len(d.Steps) {
		return errors.Mark(
			errors.Newf("total_steps is %d but %d steps are present", d.TotalSteps, len(d.Steps)),
			ErrInvalidTrace)
	}
	for i, s := range d.Steps {
		switch {
		case s.Step != i:
			return errors.Mark(errors.Newf("steps[%d] has step index %d", i, s.Step), ErrInvalidTrace)
		case s.Action == "":
			return errors.Mark(errors.Newf("steps[%d] has no action", i), ErrInvalidTrace)
		case len(s.Data) != len(s.Highlighted):
			return errors.Mark(
				errors.Newf("steps[%d] has %d values but %d highlights", i, len(s.Data), len(s.Highlighted)),
				ErrInvalidTrace)
		case len(s.Pointers) != primitives.PointerSlots:
			return errors.Mark(
				errors.Newf("steps[%d] has %d pointers, want %d", i, len(s.Pointers), primitives.PointerSlots),
				ErrInvalidTrace)
		}
	}
	return nil
}

// ConfigDocument is the content of algorithm_config.json. Exactly one of the
// is_* flags is true.
type ConfigDocument struct {
	StructureType      string `json:"structure_type"`
	Operation          string `json:"operation"`
	IsStack            bool   `json:"is_stack"`
	IsQueue            bool   `json:"is_queue"`
	IsLinkedList       bool   `json:"is_linked_list"`
	IsBinarySearchTree bool   `json:"is_binary_search_tree"`
	IsArray            bool   `json:"is_array"`
}

// NewConfigDocument derives the config document from cfg.
func NewConfigDocument(cfg primitives.RunConfig) ConfigDocument {
	return ConfigDocument{
		StructureType:      string(cfg.StructureType),
		Operation:          cfg.Operation,
		IsStack:            cfg.Is(primitives.Stack),
		IsQueue:            cfg.Is(primitives.Queue),
		IsLinkedList:       cfg.Is(primitives.LinkedList),
		IsBinarySearchTree: cfg.Is(primitives.BinarySearchTree),
		IsArray:            cfg.Is(primitives.Array),
	}
}

// Exporter writes the trace and config documents into Dir.
type Exporter struct {
	Dir        string
	StepsFile  string
	ConfigFile string
}

// NewExporter returns an Exporter writing the default file names into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir, StepsFile: DefaultStepsFile, ConfigFile: DefaultConfigFile}
}

// StepsPath returns the full path of the trace document.
func (e *Exporter) StepsPath() string {
	return filepath.Join(e.Dir, nonEmpty(e.StepsFile, DefaultStepsFile))
}

// ConfigPath returns the full path of the config document.
func (e *Exporter) ConfigPath() string {
	return filepath.Join(e.Dir, nonEmpty(e.ConfigFile, DefaultConfigFile))
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Export writes both documents concurrently. An invalid cfg is returned as is;
// every I/O failure is marked with ErrExport, and neither document is left
// behind when one of them fails.
func (e *Exporter) Export(ctx context.Context, events []primitives.TraceEvent, cfg primitives.RunConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if e.Dir != "" {
		if err := os.MkdirAll(e.Dir, 0o755); err != nil {
			return errors.Mark(errors.Wrapf(err, "mkdir %s", e.Dir), ErrExport)
		}
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return writeJSON(gctx, e.StepsPath(), NewTraceDocument(events)) })
	g.Go(func() error { return writeJSON(gctx, e.ConfigPath(), NewConfigDocument(cfg)) })
	if err := g.Wait(); err != nil {
		// The documents are read as a pair; never leave one without the other.
		_ = os.Remove(e.StepsPath())
		_ = os.Remove(e.ConfigPath())
		return err
	}
	return nil
}

func writeJSON(ctx context.Context, fn string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Mark(errors.Wrap(err, "json marshal"), ErrExport)
	}
	data = append(data, '\n')
	if err := ctx.Err(); err != nil {
		return errors.Mark(errors.Wrapf(err, "write %s", fn), ErrExport)
	}
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return errors.Mark(errors.Wrapf(err, "write %s", fn), ErrExport)
	}
	return nil
}

// ReadTraceDocument loads and validates a trace document from fn.
func ReadTraceDocument(fn string) (TraceDocument, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return TraceDocument{}, errors.Wrapf(err, "read %s", fn)
	}
	var doc TraceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return TraceDocument{}, errors.Mark(errors.Wrapf(err, "json unmarshal %s", fn), ErrInvalidTrace)
	}
	if err := doc.Validate(); err != nil {
		return TraceDocument{}, err
	}
	return doc, nil
}
