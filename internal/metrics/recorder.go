package metrics

import (
	"sync"
	"time"
)

// Category identifies one of the instrumented capabilities.
type Category string

const (
	CategoryTranslation Category = "translation"
	CategorySentiment   Category = "sentiment"
	CategoryChat        Category = "chat"
)

// Categories lists every known category, in stable order.
func Categories() []Category {
	return []Category{CategoryTranslation, CategorySentiment, CategoryChat}
}

// OperationMetric is the externally visible statistics block for one category.
// AverageTime is derived at snapshot time, never stored.
type OperationMetric struct {
	TotalTime   float64 `json:"total_time"`
	Calls       int64   `json:"calls"`
	AverageTime float64 `json:"average_time"`
}

// Snapshot is a point-in-time read of every known category.
type Snapshot map[Category]OperationMetric

// Recorder accumulates per-category call durations for the lifetime of the
// process. It is shared by every in-flight request, so all access goes
// through its mutex. Counters are cumulative and never reset.
type Recorder struct {
	mu     sync.Mutex
	totals map[Category]*counters
}

type counters struct {
	totalTime time.Duration
	calls     int64
}

// NewRecorder creates a recorder with all known categories at zero.
func NewRecorder() *Recorder {
	totals := make(map[Category]*counters, len(Categories()))
	for _, cat := range Categories() {
		totals[cat] = &counters{}
	}
	return &Recorder{totals: totals}
}

// Record adds one call of the given duration to a category.
// Unknown categories are ignored, not errors.
func (r *Recorder) Record(category Category, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.totals[category]
	if !ok {
		return
	}
	c.totalTime += duration
	c.calls++
}

// Snapshot returns a consistent copy of every category's counters with the
// derived average. Categories with zero calls report a zero average.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := make(Snapshot, len(r.totals))
	for cat, c := range r.totals {
		m := OperationMetric{
			TotalTime: c.totalTime.Seconds(),
			Calls:     c.calls,
		}
		if c.calls > 0 {
			m.AverageTime = m.TotalTime / float64(c.calls)
		}
		snap[cat] = m
	}
	return snap
}
