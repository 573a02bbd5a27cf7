package cli

import (
	"bytes"
	"context"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/comalice/algotrace/internal/drivers"
	"github.com/comalice/algotrace/internal/production"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree against a config file in a fresh directory.
func execute(t *testing.T, config string, args ...string) (int, string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if config != "" {
		require.NoError(t, os.WriteFile(path, []byte(config), 0o600))
	}
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), append([]string{"--config", path}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunExportsBothDocuments(t *testing.T) {
	dir := t.TempDir()
	code, out, errOut := execute(t, "", "run", "array", "bubble_sort", "--values", "3,1,2", "--output-dir", dir)
	require.Equal(t, ExitOK, code, errOut)
	require.Contains(t, out, "array/bubble_sort")

	doc, err := production.ReadTraceDocument(filepath.Join(dir, production.DefaultStepsFile))
	require.NoError(t, err)
	last := doc.Steps[len(doc.Steps)-1]
	require.Equal(t, "BUBBLE_COMPLETE", last.Action)
	require.Equal(t, []int{1, 2, 3}, last.Data)

	raw, err := os.ReadFile(filepath.Join(dir, production.DefaultConfigFile))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"structure_type": "array"`)
	require.Contains(t, string(raw), `"is_array": true`)
}

func TestRunTreeSearchMiss(t *testing.T) {
	dir := t.TempDir()
	code, _, errOut := execute(t, "", "run", "binary_search_tree", "search",
		"--values", "50,30,70,20", "--target", "40", "--output-dir", dir)
	require.Equal(t, ExitOK, code, errOut)

	doc, err := production.ReadTraceDocument(filepath.Join(dir, production.DefaultStepsFile))
	require.NoError(t, err)
	last := doc.Steps[len(doc.Steps)-1]
	require.Equal(t, "SEARCH_BST_NOT_FOUND", last.Action)
	require.Equal(t, []int{50, 30, 20, 70}, last.Data)
}

func TestRunRandomIsReproducible(t *testing.T) {
	var docs []string
	for i := 0; i < 2; i++ {
		dir := t.TempDir()
		code, _, errOut := execute(t, "", "run", "array", "merge_sort",
			"--random", "10", "--min", "-5", "--max", "5", "--seed", "3", "--output-dir", dir)
		require.Equal(t, ExitOK, code, errOut)
		raw, err := os.ReadFile(filepath.Join(dir, production.DefaultStepsFile))
		require.NoError(t, err)
		docs = append(docs, string(raw))

		doc, err := production.ReadTraceDocument(filepath.Join(dir, production.DefaultStepsFile))
		require.NoError(t, err)
		for _, s := range doc.Steps {
			require.Len(t, s.Data, 10)
			for _, v := range s.Data {
				require.True(t, v >= -5 && v <= 5, "value %d out of range", v)
			}
		}
	}
	require.Equal(t, docs[0], docs[1])
}

func TestRunReportsDroppedSteps(t *testing.T) {
	dir := t.TempDir()
	code, out, errOut := execute(t, "capacity: 5\n", "run", "array", "bubble_sort",
		"--values", "5,4,3,2,1", "--output-dir", dir)
	require.Equal(t, ExitOK, code, errOut)
	require.Contains(t, out, "5 steps recorded")
	require.Contains(t, out, "dropped")
	require.Contains(t, errOut, "trace capacity reached")
}

func TestRunInvalidInput(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown structure", []string{"run", "heap", "push"}},
		{"unknown operation", []string{"run", "stack", "bubble_sort"}},
		{"empty array", []string{"run", "array", "bubble_sort"}},
		{"array too large", []string{"run", "array", "bubble_sort", "--random", "51"}},
		{"inverted range", []string{"run", "array", "bubble_sort", "--random", "3", "--min", "9", "--max", "1"}},
		{"missing operation", []string{"run", "array"}},
		{"bad flag", []string{"run", "array", "bubble_sort", "--values", "a,b"}},
		{"unknown flag", []string{"run", "array", "bubble_sort", "--nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := execute(t, "", append(tt.args, "--output-dir", dir)...)
			require.Equal(t, ExitInvalidInput, code, errOut)
		})
	}
	_, err := os.Stat(filepath.Join(dir, production.DefaultStepsFile))
	require.True(t, os.IsNotExist(err))
}

func TestRunExportFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	code, _, errOut := execute(t, "", "run", "queue", "demo", "--output-dir", filepath.Join(blocker, "out"))
	require.Equal(t, ExitExport, code)
	require.Contains(t, errOut, "algotrace:")
}

func TestInvalidConfigFile(t *testing.T) {
	code, _, _ := execute(t, "archive_format: xml\n", "list")
	require.Equal(t, ExitInvalidInput, code)
}

func TestArchiveAndInspect(t *testing.T) {
	root := t.TempDir()
	config := "archive_format: yaml\narchive_dir: " + filepath.Join(root, "archive") + "\n"
	dir := filepath.Join(root, "out")

	code, out, errOut := execute(t, config, "run", "stack", "demo", "--output-dir", dir, "--archive")
	require.Equal(t, ExitOK, code, errOut)
	m := regexp.MustCompile(`archived as (\S+) in`).FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	id := m[1]
	_, err := os.Stat(filepath.Join(root, "archive", id+".yaml"))
	require.NoError(t, err)

	code, out, errOut = execute(t, config, "inspect", "--archive-id", id, "--width", "0")
	require.Equal(t, ExitOK, code, errOut)
	require.Contains(t, out, "run "+id+": stack/demo")
	require.Contains(t, out, "POP_AFTER")

	code, _, _ = execute(t, config, "inspect", "--archive-id", "missing")
	require.Equal(t, ExitFailure, code)
}

func TestArchiveDefaultsNextToExports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	code, out, errOut := execute(t, "", "run", "queue", "demo", "--output-dir", dir, "--archive")
	require.Equal(t, ExitOK, code, errOut)
	m := regexp.MustCompile(`archived as (\S+) in (\S+)`).FindStringSubmatch(out)
	require.Len(t, m, 3, out)
	require.Equal(t, filepath.Join(dir, "archive"), m[2])

	code, out, errOut = execute(t, "", "inspect", "--output-dir", dir, "--archive-id", m[1], "--width", "0")
	require.Equal(t, ExitOK, code, errOut)
	require.Contains(t, out, "run "+m[1]+": queue/demo")

	code, out, errOut = execute(t, "", "inspect", "--output-dir", dir, "--width", "0")
	require.Equal(t, ExitOK, code, errOut)
	require.Contains(t, out, "DEQUEUE_AFTER")
}

func TestRunRandomFullIntRange(t *testing.T) {
	dir := t.TempDir()
	code, _, errOut := execute(t, "", "run", "array", "bubble_sort", "--random", "5",
		"--min="+strconv.Itoa(math.MinInt), "--max="+strconv.Itoa(math.MaxInt), "--seed", "3", "--output-dir", dir)
	require.Equal(t, ExitOK, code, errOut)
	doc, err := production.ReadTraceDocument(filepath.Join(dir, production.DefaultStepsFile))
	require.NoError(t, err)
	final := doc.Steps[len(doc.Steps)-1].Data
	require.Len(t, final, 5)
	require.True(t, slices.IsSorted(final), "final data %v", final)
}

func TestRandomValuesStayInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tests := []struct{ lo, hi int }{
		{1, 100},
		{-5, -5},
		{math.MinInt, math.MinInt + 3},
		{math.MaxInt - 3, math.MaxInt},
		{math.MinInt, math.MaxInt},
	}
	for _, tt := range tests {
		for _, v := range randomValues(rng, 50, tt.lo, tt.hi) {
			require.GreaterOrEqual(t, v, tt.lo)
			require.LessOrEqual(t, v, tt.hi)
		}
	}
}

func TestInspectStepsFile(t *testing.T) {
	dir := t.TempDir()
	code, _, errOut := execute(t, "", "run", "linked_list", "multiple_operations", "--output-dir", dir)
	require.Equal(t, ExitOK, code, errOut)

	code, out, errOut := execute(t, "", "inspect", filepath.Join(dir, production.DefaultStepsFile), "--width", "20")
	require.Equal(t, ExitOK, code, errOut)
	require.Contains(t, out, "SEARCH_LIST_FOUND")
	require.Contains(t, out, "INSERT_SEQUENTIAL")
	require.True(t, strings.HasSuffix(out, "\n"))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"steps":[],"total_steps":4}`), 0o644))
	code, _, _ = execute(t, "", "inspect", bad)
	require.Equal(t, ExitFailure, code)
}

func TestInspectPlot(t *testing.T) {
	dir := t.TempDir()
	code, _, errOut := execute(t, "", "run", "array", "bubble_sort", "--values", "3,1,2", "--output-dir", dir)
	require.Equal(t, ExitOK, code, errOut)

	steps := filepath.Join(dir, production.DefaultStepsFile)
	code, out, errOut := execute(t, "", "inspect", steps, "--plot")
	require.Equal(t, ExitOK, code, errOut)
	require.Contains(t, out, "┤")

	code, out, _ = execute(t, "", "inspect", steps)
	require.Equal(t, ExitOK, code)
	require.NotContains(t, out, "┤")
}

func TestListShowsEveryOperation(t *testing.T) {
	code, out, errOut := execute(t, "", "list")
	require.Equal(t, ExitOK, code, errOut)
	for _, op := range drivers.Operations() {
		require.Contains(t, out, op.Name)
	}
	require.Contains(t, out, "binary_search_tree")
}

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "", "version")
	require.Equal(t, ExitOK, code)
	require.True(t, strings.HasPrefix(out, "algotrace "))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("boom"), ExitFailure},
		{errors.Wrap(production.ErrExport, "write"), ExitExport},
		{errors.Mark(errors.New("bad"), drivers.ErrInvalidInput), ExitInvalidInput},
		{errors.Wrap(drivers.ErrUnknownOperation, "lookup"), ExitInvalidInput},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ExitCode(tt.err), "%v", tt.err)
	}
}
