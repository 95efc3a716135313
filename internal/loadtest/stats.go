package loadtest

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Stats accumulates outcomes and latencies from every worker.
type Stats struct {
	mu       sync.Mutex
	success  int
	degraded int
	failed   int
	total    time.Duration
	min      time.Duration
	max      time.Duration
}

func (s *Stats) Record(outcome Outcome, latency time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch outcome {
	case OutcomeSuccess:
		s.success++
	case OutcomeDegraded:
		s.degraded++
	default:
		s.failed++
	}

	if s.count() == 1 || latency < s.min {
		s.min = latency
	}
	if latency > s.max {
		s.max = latency
	}
	s.total += latency
}

func (s *Stats) count() int {
	return s.success + s.degraded + s.failed
}

// Report summarises a finished run.
type Report struct {
	Total      int
	Success    int
	Degraded   int
	Failed     int
	Duration   time.Duration
	AvgLatency time.Duration
	MaxLatency time.Duration
	MinLatency time.Duration
	Throughput float64
}

func (s *Stats) Report(elapsed time.Duration) Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Report{
		Total:      s.count(),
		Success:    s.success,
		Degraded:   s.degraded,
		Failed:     s.failed,
		Duration:   elapsed,
		MaxLatency: s.max,
		MinLatency: s.min,
	}
	if r.Total > 0 {
		r.AvgLatency = s.total / time.Duration(r.Total)
	}
	if elapsed > 0 {
		r.Throughput = float64(r.Total) / elapsed.Seconds()
	}
	return r
}

// Fields renders the report for a single log line. Latencies are in
// milliseconds.
func (r Report) Fields() logrus.Fields {
	return logrus.Fields{
		"total":        r.Total,
		"success":      r.Success,
		"degraded":     r.Degraded,
		"failed":       r.Failed,
		"durationMs":   r.Duration.Milliseconds(),
		"avgLatencyMs": float64(r.AvgLatency.Microseconds()) / 1000,
		"maxLatencyMs": float64(r.MaxLatency.Microseconds()) / 1000,
		"minLatencyMs": float64(r.MinLatency.Microseconds()) / 1000,
		"throughput":   r.Throughput,
	}
}
