package trace

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"typetrace/internal/model"
)

// Analyzer drives a trace directory through validation, filtering,
// classification and aggregation.
type Analyzer struct {
	filter  *Filter
	samples *SampleCollector
	jobs    int
	log     *zap.Logger
	load    func(path string) ([]any, error)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithFilter replaces the default exclusion filter.
func WithFilter(f *Filter) Option {
	return func(a *Analyzer) { a.filter = f }
}

// WithSamples sets the run-wide collector for unknown records.
func WithSamples(c *SampleCollector) Option {
	return func(a *Analyzer) { a.samples = c }
}

// WithJobs sets how many trace files may be decoded ahead of classification.
// Classification itself stays sequential.
func WithJobs(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.jobs = n
		}
	}
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		filter:  NewFilter(),
		samples: NewSampleCollector(DefaultSampleCapacity),
		jobs:    1,
		log:     zap.NewNop(),
		load:    LoadFile,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Samples returns the collector shared by every file of the analyzer's runs.
func (a *Analyzer) Samples() *SampleCollector {
	return a.samples
}

type loaded struct {
	values []any
	err    error
}

// Run analyzes every trace file in dir. Files are decoded concurrently but
// classified one after another in listing order, so the retained unknown
// samples match a sequential run.
func (a *Analyzer) Run(ctx context.Context, dir string) (model.AnalysisResult, error) {
	result := model.AnalysisResult{Dir: dir, Totals: model.Stats{}}

	files, err := ListTraceFiles(dir)
	if err != nil {
		return result, err
	}
	a.log.Info("Analyzing trace directory", zap.String("dir", dir), zap.Int("files", len(files)))

	slots := make([]chan loaded, len(files))
	for i := range slots {
		slots[i] = make(chan loaded, 1)
	}
	// A token is taken per file in listing order and handed back only once
	// the file has been classified, so at most jobs decoded files are held.
	sem := make(chan struct{}, a.jobs)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for i, name := range files {
			i, name := i, name
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				for _, slot := range slots[i:] {
					slot <- loaded{err: gctx.Err()}
				}
				return gctx.Err()
			}
			g.Go(func() error {
				values, err := a.load(filepath.Join(dir, name))
				slots[i] <- loaded{values: values, err: err}
				return err
			})
		}
		return nil
	})

	agg := NewAggregator(a.samples)
	for i, name := range files {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return result, err
		}
		var in loaded
		select {
		case in = <-slots[i]:
		case <-ctx.Done():
			_ = g.Wait()
			return result, ctx.Err()
		}
		if in.err != nil {
			waitErr := g.Wait()
			if waitErr != nil {
				return result, waitErr
			}
			return result, in.err
		}
		report := a.analyzeFile(agg, name, in.values)
		<-sem
		result.Files = append(result.Files, report)
		result.Totals.Add(report.Stats)
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	result.Samples = a.samples.Samples()
	a.log.Info("Trace directory analyzed",
		zap.String("dir", dir),
		zap.Int("total", result.Totals.Total),
		zap.Int("unknown", result.Totals.Unknown))
	return result, nil
}

// AnalyzeValues runs the per-record pipeline over already decoded values.
func (a *Analyzer) AnalyzeValues(file string, values []any) model.FileReport {
	return a.analyzeFile(NewAggregator(a.samples), file, values)
}

func (a *Analyzer) analyzeFile(agg *Aggregator, file string, values []any) model.FileReport {
	report := model.FileReport{File: file}
	stats := agg.NewStats()
	excluded := 0
	for _, v := range values {
		if !IsValid(v) {
			report.Invalid++
			continue
		}
		rec := model.NewRecord(v.(map[string]any))
		if a.filter.IsExcluded(rec) {
			excluded++
			agg.Exclude(stats)
			continue
		}
		agg.Record(stats, Classify(rec))
	}
	report.Stats = agg.Finalize(stats)

	a.log.Debug("Trace file classified",
		zap.String("file", file),
		zap.Int("entries", len(values)),
		zap.Int("invalid", report.Invalid),
		zap.Int("excluded", excluded),
		zap.Int("total", report.Stats.Total))
	return report
}
