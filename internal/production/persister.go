package production

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/comalice/algotrace/internal/primitives"
	"gopkg.in/yaml.v3"
)

// RunArchive is the persisted record of a finished run.
type RunArchive struct {
	RunID     string               `json:"run_id" yaml:"run_id"`
	Config    primitives.RunConfig `json:"config" yaml:"config"`
	Trace     TraceDocument        `json:"trace" yaml:"trace"`
	Digest    string               `json:"digest" yaml:"digest"`
	Dropped   int                  `json:"dropped" yaml:"dropped"`
	Timestamp time.Time            `json:"timestamp" yaml:"timestamp"`
}

// NewRunArchive captures the recorded events of a run.
func NewRunArchive(runID string, cfg primitives.RunConfig, events []primitives.TraceEvent, dropped int) RunArchive {
	doc := NewTraceDocument(events)
	return RunArchive{
		RunID:     runID,
		Config:    cfg,
		Trace:     doc,
		Digest:    Digest(doc),
		Dropped:   dropped,
		Timestamp: time.Now().UTC(),
	}
}

// Validate checks the config, the trace and the trace digest.
func (a RunArchive) Validate() error {
	if a.RunID == "" {
		return errors.Mark(errors.New("run id is required"), ErrInvalidTrace)
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if err := a.Trace.Validate(); err != nil {
		return err
	}
	if got := Digest(a.Trace); got != a.Digest {
		return errors.Mark(errors.Newf("trace digest %s does not match recorded %s", got, a.Digest), ErrInvalidTrace)
	}
	return nil
}

// Persister saves and loads run archives keyed by run id.
type Persister interface {
	Save(ctx context.Context, archive RunArchive) error
	Load(ctx context.Context, runID string) (RunArchive, error)
}

// Archive formats accepted by NewPersister.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// NewPersister returns the persister for format rooted at dir.
func NewPersister(format, dir string) (Persister, error) {
	switch format {
	case FormatJSON, "":
		return NewJSONPersister(dir)
	case FormatYAML:
		return NewYAMLPersister(dir)
	default:
		return nil, errors.Newf("unknown archive format %q", format)
	}
}

// JSONPersister is a file-based persister using JSON serialization.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "mkdir %s", dir)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, archive RunArchive) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return errors.Wrap(err, "json marshal")
	}
	fn := filepath.Join(p.dir, archive.RunID+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", fn)
	}
	return nil
}

func (p *JSONPersister) Load(ctx context.Context, runID string) (RunArchive, error) {
	if err := ctx.Err(); err != nil {
		return RunArchive{}, err
	}
	data, err := readArchive(filepath.Join(p.dir, runID+".json"), runID)
	if err != nil {
		return RunArchive{}, err
	}
	var archive RunArchive
	if err := json.Unmarshal(data, &archive); err != nil {
		return RunArchive{}, errors.Wrap(err, "json unmarshal")
	}
	return validated(archive, runID)
}

// YAMLPersister is a file-based persister using YAML serialization.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "mkdir %s", dir)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, archive RunArchive) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := yaml.Marshal(archive)
	if err != nil {
		return errors.Wrap(err, "yaml marshal")
	}
	fn := filepath.Join(p.dir, archive.RunID+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", fn)
	}
	return nil
}

func (p *YAMLPersister) Load(ctx context.Context, runID string) (RunArchive, error) {
	if err := ctx.Err(); err != nil {
		return RunArchive{}, err
	}
	data, err := readArchive(filepath.Join(p.dir, runID+".yaml"), runID)
	if err != nil {
		return RunArchive{}, err
	}
	var archive RunArchive
	if err := yaml.Unmarshal(data, &archive); err != nil {
		return RunArchive{}, errors.Wrap(err, "yaml unmarshal")
	}
	return validated(archive, runID)
}

func readArchive(fn, runID string) ([]byte, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(os.ErrNotExist, "run %q", runID)
		}
		return nil, errors.Wrapf(err, "read %s", fn)
	}
	return data, nil
}

func validated(archive RunArchive, runID string) (RunArchive, error) {
	archive.RunID = runID
	if err := archive.Validate(); err != nil {
		return RunArchive{}, errors.Wrap(err, "archive validation after load")
	}
	return archive, nil
}
