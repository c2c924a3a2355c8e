package slo

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"ai-toolkit/internal/handler/http/responsewriter"
)

// DefaultMaxSamples bounds the latency samples kept per window. Requests
// beyond it still count toward availability.
const DefaultMaxSamples = 10000

// Snapshot is the indicator set for one window.
type Snapshot struct {
	Requests     int
	Errors       int
	Availability float64
	ErrorRate    float64
	P95          time.Duration
	P99          time.Duration
}

// Tracker accumulates request outcomes and turns them into a Snapshot on
// every Flush. Each Flush starts a new window.
type Tracker struct {
	maxSamples int
	excludeLat []string
	logger     *slog.Logger
	cron       *cron.Cron

	mu        sync.Mutex
	requests  int
	errors    int
	latencies []time.Duration
}

// NewTracker creates a tracker. Requests whose path starts with one of
// excludeLatency count toward availability only; use it for routes that wait
// on remote services.
func NewTracker(logger *slog.Logger, excludeLatency ...string) *Tracker {
	return &Tracker{
		maxSamples: DefaultMaxSamples,
		excludeLat: excludeLatency,
		logger:     logger,
	}
}

// Observe records one finished request.
func (t *Tracker) Observe(path string, status int, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests++
	if status >= 500 {
		t.errors++
	}
	if len(t.latencies) < t.maxSamples && !t.excluded(path) {
		t.latencies = append(t.latencies, d)
	}
}

func (t *Tracker) excluded(path string) bool {
	for _, prefix := range t.excludeLat {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Middleware observes every request passing through it.
func (t *Tracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := responsewriter.Wrap(w)
		start := time.Now()
		next.ServeHTTP(rw, r)
		t.Observe(r.URL.Path, rw.StatusCode(), time.Since(start))
	})
}

// Flush computes the current window, publishes it and resets the counters.
// An empty window reports full availability and zero latency.
func (t *Tracker) Flush() Snapshot {
	t.mu.Lock()
	s := Snapshot{Requests: t.requests, Errors: t.errors, Availability: 1}
	samples := t.latencies
	t.requests, t.errors, t.latencies = 0, 0, nil
	t.mu.Unlock()

	if s.Requests > 0 {
		s.ErrorRate = float64(s.Errors) / float64(s.Requests)
		s.Availability = 1 - s.ErrorRate
	}
	slices.Sort(samples)
	s.P95 = percentile(samples, 0.95)
	s.P99 = percentile(samples, 0.99)

	Publish(s)
	if s.Availability*100 < AvailabilitySLO && t.logger != nil {
		t.logger.Warn("availability below objective",
			slog.Float64("availability", s.Availability),
			slog.Int("requests", s.Requests),
			slog.Int("errors", s.Errors))
	}
	return s
}

// percentile returns the nearest-rank percentile of sorted samples.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	return sorted[max(rank, 0)]
}

// Start flushes on the given cron schedule, e.g. "@every 1m".
func (t *Tracker) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { t.Flush() }); err != nil {
		return fmt.Errorf("invalid slo schedule %q: %w", schedule, err)
	}
	t.cron = c
	c.Start()
	return nil
}

// Stop halts the schedule, waiting for a running flush or ctx.
func (t *Tracker) Stop(ctx context.Context) {
	if t.cron == nil {
		return
	}
	select {
	case <-t.cron.Stop().Done():
	case <-ctx.Done():
	}
}
