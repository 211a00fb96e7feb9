package trace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"typetrace/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func unknownEntries(start, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"id": %d, "flags": ["Never"]}`, start+i)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func traceDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "types.1.json", `[
		{"id": 1, "flags": ["Union"], "unionTypes": [2, 3]},
		{"id": 2, "flags": ["StringLiteral"], "display": "\"a\""},
		{"id": 3, "flags": ["NumberLiteral"], "display": "3"},
		{"id": 4, "flags": ["Never"]},
		{"flags": ["Union"]},
		null
	]`)
	writeFile(t, dir, "types.2.json", unknownEntries(100, 4))
	writeFile(t, dir, "trace.1.json", `not even json`)
	writeFile(t, dir, "legend.json", `{}`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "types.dir"), 0o755))
	return dir
}

func TestListTraceFiles(t *testing.T) {
	files, err := ListTraceFiles(traceDir(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"types.1.json", "types.2.json"}, files)
}

func TestListTraceFilesErrors(t *testing.T) {
	_, err := ListTraceFiles(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, ErrNotExist))

	dir := t.TempDir()
	writeFile(t, dir, "types.1.json", "[]")
	_, err = ListTraceFiles(filepath.Join(dir, "types.1.json"))
	assert.True(t, errors.Is(err, ErrNotDirectory))
}

func TestRun(t *testing.T) {
	dir := traceDir(t)
	res, err := NewAnalyzer(WithLogger(zap.NewNop())).Run(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, res.Files, 2)
	first := res.Files[0]
	assert.Equal(t, "types.1.json", first.File)
	assert.Equal(t, 2, first.Invalid)
	assert.Equal(t, model.Stats{Files: 1, Total: 4, Unions: 1, StringLiterals: 1, Unknown: 1}, first.Stats)

	second := res.Files[1]
	assert.Equal(t, model.Stats{Files: 1, Total: 4, Unknown: 4}, second.Stats)

	assert.Equal(t, 2, res.Totals.Files)
	assert.Equal(t, 8, res.Totals.Total)

	require.Len(t, res.Samples, 5)
	assert.Equal(t, model.TypeID(4), res.Samples[0].ID)
	assert.Equal(t, model.TypeID(103), res.Samples[4].ID)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 8; i++ {
		writeFile(t, dir, fmt.Sprintf("types.%d.json", i), unknownEntries(i*100, 2))
	}

	seq, err := NewAnalyzer(WithJobs(1)).Run(context.Background(), dir)
	require.NoError(t, err)
	par, err := NewAnalyzer(WithJobs(8)).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, seq.Files, par.Files)
	assert.Equal(t, seq.Samples, par.Samples)
}

func TestRunHoldsAtMostJobsDecodedFiles(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		writeFile(t, dir, fmt.Sprintf("types.%02d.json", i), unknownEntries(i*100, 1))
	}

	const jobs = 3
	samples := NewSampleCollector(0)
	a := NewAnalyzer(WithJobs(jobs), WithSamples(samples))
	var mu sync.Mutex
	started, ahead := 0, 0
	a.load = func(path string) ([]any, error) {
		mu.Lock()
		started++
		ahead = max(ahead, started-samples.Seen())
		mu.Unlock()
		return LoadFile(path)
	}

	res, err := a.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, res.Files, 12)
	assert.Equal(t, 12, samples.Seen())
	assert.LessOrEqual(t, ahead, jobs)
}

func TestRunFailsOnBadFile(t *testing.T) {
	dir := traceDir(t)
	writeFile(t, dir, "types.3.json", `{"not": "an array"}`)

	_, err := NewAnalyzer(WithJobs(3)).Run(context.Background(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotArray))
	assert.Contains(t, err.Error(), "types.3.json")
}

func TestRunMissingDirectory(t *testing.T) {
	_, err := NewAnalyzer().Run(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, ErrNotExist))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAnalyzer().Run(ctx, traceDir(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunEmptyDirectory(t *testing.T) {
	res, err := NewAnalyzer().Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Equal(t, 0, res.Totals.Files)
}
