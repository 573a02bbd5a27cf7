package production

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/comalice/algotrace/internal/core"
	"github.com/comalice/algotrace/internal/drivers"
	"github.com/comalice/algotrace/internal/primitives"
	"github.com/comalice/algotrace/testutil"
	"github.com/kr/pretty"
)

// recordedArchive runs a real operation so the archive holds a realistic trace.
func recordedArchive(t *testing.T, id string) RunArchive {
	t.Helper()
	rec := testutil.Record(t, primitives.Array, "bubble_sort", drivers.Input{Values: []int{3, 1, 2}}, core.WithRunID(id))
	return NewRunArchive(rec.Run.ID(), rec.Config, rec.Events(), rec.Run.Recorder().Dropped())
}

func TestPersisters_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		new  func(dir string) (Persister, error)
		ext  string
	}{
		{"json", func(dir string) (Persister, error) { return NewJSONPersister(dir) }, ".json"},
		{"yaml", func(dir string) (Persister, error) { return NewYAMLPersister(dir) }, ".yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			p, err := tt.new(dir)
			if err != nil {
				t.Fatalf("new persister failed: %v", err)
			}
			archive := recordedArchive(t, "run-"+tt.name)
			if err := p.Save(context.Background(), archive); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if _, err := os.Stat(filepath.Join(dir, archive.RunID+tt.ext)); err != nil {
				t.Fatalf("archive file missing: %v", err)
			}

			loaded, err := p.Load(context.Background(), archive.RunID)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !loaded.Timestamp.Equal(archive.Timestamp) {
				t.Errorf("timestamp mismatch: got %v, want %v", loaded.Timestamp, archive.Timestamp)
			}
			loaded.Timestamp = archive.Timestamp
			if diff := pretty.Diff(archive, loaded); diff != nil {
				t.Errorf("archive mismatch:\n%s", strings.Join(diff, "\n"))
			}
		})
	}
}

func TestPersisters_LoadNonExistent(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		p, err := NewPersister(format, t.TempDir())
		if err != nil {
			t.Fatalf("NewPersister(%q) failed: %v", format, err)
		}
		_, err = p.Load(context.Background(), "nonexistent")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: expected os.ErrNotExist wrapped error, got %v", format, err)
		}
	}
}

func TestNewPersister_UnknownFormat(t *testing.T) {
	if _, err := NewPersister("toml", t.TempDir()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestJSONPersister_LoadValidates(t *testing.T) {
	dir := t.TempDir()
	p, err := NewJSONPersister(dir)
	if err != nil {
		t.Fatal(err)
	}
	archive := recordedArchive(t, "broken")
	archive.Trace.Steps[0].Highlighted = []int{1}
	if err := p.Save(context.Background(), archive); err != nil {
		t.Fatal(err)
	}
	_, err = p.Load(context.Background(), "broken")
	if !errors.Is(err, ErrInvalidTrace) {
		t.Fatalf("expected ErrInvalidTrace, got %v", err)
	}
}

func TestPersister_CanceledContext(t *testing.T) {
	p, err := NewYAMLPersister(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Save(ctx, recordedArchive(t, "canceled")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestYAMLPersister_DetectsTamperedTrace(t *testing.T) {
	dir := t.TempDir()
	p, err := NewYAMLPersister(dir)
	if err != nil {
		t.Fatal(err)
	}
	archive := recordedArchive(t, "tampered")
	if err := p.Save(context.Background(), archive); err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(dir, "tampered.yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	data = bytes.Replace(data, []byte("BUBBLE_COMPLETE"), []byte("BUBBLE_FINISHED"), 1)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = p.Load(context.Background(), "tampered")
	if !errors.Is(err, ErrInvalidTrace) {
		t.Fatalf("expected ErrInvalidTrace, got %v", err)
	}
}

func TestDigestIsContentAddressed(t *testing.T) {
	a := recordedArchive(t, "a")
	b := recordedArchive(t, "b")
	if a.Digest == "" || a.Digest != b.Digest {
		t.Fatalf("equal traces must share a digest: %q vs %q", a.Digest, b.Digest)
	}
	b.Trace.Steps[0].Description = "changed"
	if Digest(b.Trace) == a.Digest {
		t.Fatal("digest did not change with the trace")
	}
}
