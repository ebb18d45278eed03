package perf

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Timer logs how long an operation took, warning when it exceeds threshold
type Timer struct {
	name      string
	logger    *slog.Logger
	start     time.Time
	threshold time.Duration
}

func NewTimer(name string, logger *slog.Logger, threshold time.Duration) *Timer {
	return &Timer{
		name:      name,
		logger:    logger,
		start:     time.Now(),
		threshold: threshold,
	}
}

// Stop logs and returns the elapsed time
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.logger != nil {
		t.logger.Debug(t.name, "duration_ms", elapsed.Milliseconds())
		if t.threshold > 0 && elapsed > t.threshold {
			t.logger.Warn(t.name+"_slow", "duration_ms", elapsed.Milliseconds(), "threshold_ms", t.threshold.Milliseconds())
		}
	}
	return elapsed
}

// Stats is a snapshot of a Recorder
type Stats struct {
	Name    string
	Count   int64
	Failed  int64
	Total   time.Duration
	Max     time.Duration
	SlowOps int64
}

func (s Stats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Recorder accumulates durations of a repeated operation. Safe for
// concurrent use.
type Recorder struct {
	name      string
	threshold time.Duration
	count     int64
	failed    int64
	total     int64
	max       int64
	slowOps   int64
}

func NewRecorder(name string, threshold time.Duration) *Recorder {
	return &Recorder{name: name, threshold: threshold}
}

// Record adds one run. err marks the run as failed; its duration still counts.
func (r *Recorder) Record(elapsed time.Duration, err error) {
	ns := elapsed.Nanoseconds()
	atomic.AddInt64(&r.count, 1)
	atomic.AddInt64(&r.total, ns)
	if err != nil {
		atomic.AddInt64(&r.failed, 1)
	}
	if r.threshold > 0 && elapsed > r.threshold {
		atomic.AddInt64(&r.slowOps, 1)
	}

	for {
		cur := atomic.LoadInt64(&r.max)
		if ns <= cur || atomic.CompareAndSwapInt64(&r.max, cur, ns) {
			break
		}
	}
}

func (r *Recorder) Stats() Stats {
	return Stats{
		Name:    r.name,
		Count:   atomic.LoadInt64(&r.count),
		Failed:  atomic.LoadInt64(&r.failed),
		Total:   time.Duration(atomic.LoadInt64(&r.total)),
		Max:     time.Duration(atomic.LoadInt64(&r.max)),
		SlowOps: atomic.LoadInt64(&r.slowOps),
	}
}

// LogStats writes a summary line, skipping recorders that never ran
func (r *Recorder) LogStats(logger *slog.Logger) {
	s := r.Stats()
	if s.Count == 0 || logger == nil {
		return
	}
	logger.Info(r.name+"_stats",
		"count", s.Count,
		"failed", s.Failed,
		"avg_ms", s.Avg().Milliseconds(),
		"max_ms", s.Max.Milliseconds(),
		"slow_ops", s.SlowOps,
	)
}
