package observ

import (
	"slices"
	"sync"
	"time"
)

// Timer collects the phases of one compile: parse, transform, codegen,
// assemble. It is safe for concurrent use.
type Timer struct {
	mu     sync.Mutex
	phases []PhaseReport
	total  time.Duration
}

func NewTimer() *Timer { return &Timer{} }

// Track starts phase name; the returned func stops it with a note
// ("3 templates", "cached"). Phases are reported in start order.
func (t *Timer) Track(name string) (stop func(note string)) {
	t.mu.Lock()
	idx := len(t.phases)
	t.phases = append(t.phases, PhaseReport{Name: name})
	t.mu.Unlock()

	start := time.Now()
	var once sync.Once
	return func(note string) {
		once.Do(func() {
			d := time.Since(start)
			t.mu.Lock()
			defer t.mu.Unlock()
			t.phases[idx].DurationMS = millis(d)
			t.phases[idx].Note = note
			t.total += d
		})
	}
}

// PhaseReport is one finished phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report is the serialisable view of a Timer.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.phases) == 0 {
		return Report{}
	}
	return Report{TotalMS: millis(t.total), Phases: slices.Clone(t.phases)}
}

// Add folds other into r, summing phases by name in first-seen order.
// Notes are per-file and are dropped.
func (r *Report) Add(other Report) {
	for _, p := range other.Phases {
		i := slices.IndexFunc(r.Phases, func(q PhaseReport) bool { return q.Name == p.Name })
		if i < 0 {
			r.Phases = append(r.Phases, PhaseReport{Name: p.Name})
			i = len(r.Phases) - 1
		}
		r.Phases[i].DurationMS += p.DurationMS
	}
	r.TotalMS += other.TotalMS
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
