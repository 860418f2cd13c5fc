package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestRecorderAccumulates(t *testing.T) {
	r := NewRecorder()

	r.Record(CategoryTranslation, 100*time.Millisecond)
	r.Record(CategoryTranslation, 300*time.Millisecond)
	r.Record(CategoryChat, 50*time.Millisecond)

	snap := r.Snapshot()

	tr := snap[CategoryTranslation]
	if tr.Calls != 2 {
		t.Errorf("translation calls = %d, want 2", tr.Calls)
	}
	if got, want := tr.TotalTime, 0.4; !almostEqual(got, want) {
		t.Errorf("translation total_time = %v, want %v", got, want)
	}
	if got, want := tr.AverageTime, 0.2; !almostEqual(got, want) {
		t.Errorf("translation average_time = %v, want %v", got, want)
	}

	if snap[CategoryChat].Calls != 1 {
		t.Errorf("chat calls = %d, want 1", snap[CategoryChat].Calls)
	}
}

func TestRecorderZeroCallsZeroAverage(t *testing.T) {
	snap := NewRecorder().Snapshot()

	if len(snap) != 3 {
		t.Fatalf("snapshot has %d categories, want 3", len(snap))
	}
	for _, cat := range Categories() {
		m, ok := snap[cat]
		if !ok {
			t.Fatalf("snapshot missing category %q", cat)
		}
		if m.Calls != 0 || m.TotalTime != 0 || m.AverageTime != 0 {
			t.Errorf("%s = %+v, want all zero", cat, m)
		}
	}
}

func TestRecorderIgnoresUnknownCategory(t *testing.T) {
	r := NewRecorder()
	r.Record(Category("summarization"), time.Second)

	snap := r.Snapshot()
	if _, ok := snap["summarization"]; ok {
		t.Error("unknown category leaked into snapshot")
	}
	for cat, m := range snap {
		if m.Calls != 0 {
			t.Errorf("%s calls = %d, want 0", cat, m.Calls)
		}
	}
}

func TestRecorderAverageInvariant(t *testing.T) {
	r := NewRecorder()
	durations := []time.Duration{
		17 * time.Millisecond,
		230 * time.Millisecond,
		1400 * time.Millisecond,
		3 * time.Millisecond,
	}
	for _, d := range durations {
		r.Record(CategorySentiment, d)
	}

	m := r.Snapshot()[CategorySentiment]
	if m.Calls != int64(len(durations)) {
		t.Fatalf("calls = %d, want %d", m.Calls, len(durations))
	}
	if want := m.TotalTime / float64(m.Calls); !almostEqual(m.AverageTime, want) {
		t.Errorf("average_time = %v, want total_time/calls = %v", m.AverageTime, want)
	}
}

func TestRecorderConcurrentWriters(t *testing.T) {
	r := NewRecorder()

	const writers = 8
	const perWriter = 200

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				r.Record(CategoryTranslation, time.Millisecond)
				r.Record(CategoryChat, time.Millisecond)
				// interleave reads with writes
				_ = r.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	want := int64(writers * perWriter)
	if snap[CategoryTranslation].Calls != want {
		t.Errorf("translation calls = %d, want %d", snap[CategoryTranslation].Calls, want)
	}
	if snap[CategoryChat].Calls != want {
		t.Errorf("chat calls = %d, want %d", snap[CategoryChat].Calls, want)
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
