package trace

import (
	"sync"

	"typetrace/internal/model"
)

// DefaultSampleCapacity is how many unknown records a run keeps for inspection.
const DefaultSampleCapacity = 5

// SampleCollector keeps the first n records offered to it and drops the rest.
// It lives for a whole run, so the cap is shared by every trace file.
type SampleCollector struct {
	mu      sync.Mutex
	limit   int
	samples []model.Record
	seen    int
}

func NewSampleCollector(capacity int) *SampleCollector {
	if capacity < 0 {
		capacity = 0
	}
	return &SampleCollector{limit: capacity}
}

// Offer retains r if there is room left and reports whether it did.
func (c *SampleCollector) Offer(r model.Record) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen++
	if len(c.samples) >= c.limit {
		return false
	}
	c.samples = append(c.samples, r)
	return true
}

// Samples returns the retained records in arrival order.
func (c *SampleCollector) Samples() []model.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Record(nil), c.samples...)
}

// Seen is the number of records offered so far, retained or not.
func (c *SampleCollector) Seen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seen
}

// Aggregator turns the classification stream of a file into Stats.
type Aggregator struct {
	samples *SampleCollector
}

// NewAggregator returns an Aggregator feeding unknown records into samples.
// A nil collector disables sampling.
func NewAggregator(samples *SampleCollector) *Aggregator {
	return &Aggregator{samples: samples}
}

// NewStats starts the counters for one trace file.
func (a *Aggregator) NewStats() *model.Stats {
	return &model.Stats{Files: 1}
}

// Exclude accounts for a valid record the filter dropped. It only moves the total.
func (a *Aggregator) Exclude(stats *model.Stats) {
	stats.Total++
}

// Record accounts for one classified record. Unknown records are offered to
// the sample collector.
func (a *Aggregator) Record(stats *model.Stats, shape model.Shape) {
	stats.Total++
	stats.Inc(shape.Category())
	if u, ok := shape.(model.UnknownType); ok && a.samples != nil {
		a.samples.Offer(u.Record)
	}
}

// Finalize returns the counters of a finished file by value.
func (a *Aggregator) Finalize(stats *model.Stats) model.Stats {
	return *stats
}
