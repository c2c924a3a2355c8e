package summarize

import (
	"context"
	"fmt"
	"sync"

	"ai-toolkit/internal/domain/entity"
	"ai-toolkit/internal/observability/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxSessions bounds the session table of a Runner.
const DefaultMaxSessions = 10000

// Runner gives each session latest-request-wins semantics: a job's result is
// only delivered if no newer job was submitted for the same session before the
// result was collected. Request IDs come from one monotonic sequence, so a
// larger ID is always the newer request.
type Runner struct {
	svc *Service

	mu     sync.Mutex
	seq    uint64
	latest *lru.Cache[string, uint64]
}

// Job is a summarization submitted to a Runner.
type Job struct {
	ID      uint64
	Session string

	runner *Runner
	done   chan struct{}
	result *entity.SummaryResult
	err    error
}

// NewRunner creates a Runner that tracks up to maxSessions sessions. The least
// recently used sessions are forgotten first; a forgotten session simply has no
// pending job that could be superseded.
func NewRunner(svc *Service, maxSessions int) (*Runner, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	cache, err := lru.New[string, uint64](maxSessions)
	if err != nil {
		return nil, fmt.Errorf("create session table: %w", err)
	}
	return &Runner{svc: svc, latest: cache}, nil
}

// Submit starts summarizing in on a new goroutine and returns immediately.
// An empty session opts out of supersession tracking.
func (r *Runner) Submit(ctx context.Context, session string, in Input) *Job {
	r.mu.Lock()
	r.seq++
	id := r.seq
	if session != "" {
		r.latest.Add(session, id)
	}
	r.mu.Unlock()

	job := &Job{
		ID:      id,
		Session: session,
		runner:  r,
		done:    make(chan struct{}),
	}
	go func() {
		defer close(job.done)
		job.result, job.err = r.svc.Summarize(ctx, in)
	}()
	return job
}

// Wait blocks until the job finishes or ctx is done. It returns ErrSuperseded
// when a newer job for the same session exists.
func (j *Job) Wait(ctx context.Context) (*entity.SummaryResult, error) {
	select {
	case <-j.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if !j.runner.isLatest(j.Session, j.ID) {
		metrics.RecordSuperseded()
		return nil, ErrSuperseded
	}
	return j.result, j.err
}

// Latest returns the newest request ID recorded for session.
func (r *Runner) Latest(session string) (uint64, bool) {
	return r.latest.Peek(session)
}

func (r *Runner) isLatest(session string, id uint64) bool {
	if session == "" {
		return true
	}
	latest, ok := r.latest.Get(session)
	return !ok || latest <= id
}
