package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"ai-toolkit/internal/observability/metrics"
	"ai-toolkit/internal/usecase/summarize"
)

// Reload outcomes, also used as the metrics status label.
const (
	ReloadApplied   = "applied"
	ReloadUnchanged = "unchanged"
	ReloadFailure   = "failure"
)

// EngineSetter receives a rebuilt engine after the key point file changes.
// summarize.Service implements it.
type EngineSetter interface {
	SetEngine(*summarize.Engine)
}

// Reloader re-reads the key point file on a cron schedule and swaps the
// summarizer's engine when the file has changed. A file that fails to load
// leaves the current engine in place.
type Reloader struct {
	path   string
	target EngineSetter
	logger *slog.Logger
	cron   *cron.Cron

	mu      sync.Mutex
	modTime time.Time
	size    int64
}

// NewReloader creates a reloader for path on the given cron schedule
// (standard five-field syntax).
func NewReloader(path, schedule string, target EngineSetter, logger *slog.Logger) (*Reloader, error) {
	r := &Reloader{
		path:   path,
		target: target,
		logger: logger,
		cron:   cron.New(),
	}
	if _, err := r.cron.AddFunc(schedule, func() { r.Reload() }); err != nil {
		return nil, fmt.Errorf("invalid reload schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start runs the schedule in the background.
func (r *Reloader) Start() {
	r.cron.Start()
	r.logger.Info("key point config reloader started",
		slog.String("path", r.path))
}

// Stop halts the schedule and waits for a running reload to finish or ctx to end.
func (r *Reloader) Stop(ctx context.Context) {
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Reload checks the file once and returns the outcome.
func (r *Reloader) Reload() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, err := os.Stat(r.path)
	if err != nil {
		return r.fail(fmt.Errorf("stat config file: %w", err))
	}
	if info.ModTime().Equal(r.modTime) && info.Size() == r.size {
		metrics.RecordKeyPointConfigReload(ReloadUnchanged)
		return ReloadUnchanged
	}

	cfg, err := LoadKeyPointConfig(r.path)
	if err != nil {
		return r.fail(err)
	}
	engine, err := summarize.NewEngine(cfg)
	if err != nil {
		return r.fail(err)
	}

	r.target.SetEngine(engine)
	r.modTime = info.ModTime()
	r.size = info.Size()
	metrics.RecordKeyPointConfigReload(ReloadApplied)
	r.logger.Info("key point config applied",
		slog.String("path", r.path),
		slog.Int("keywords", len(cfg.Keywords)),
		slog.Int("connectives", len(cfg.Connectives)))
	return ReloadApplied
}

func (r *Reloader) fail(err error) string {
	metrics.RecordKeyPointConfigReload(ReloadFailure)
	r.logger.Error("key point config reload failed, keeping current config",
		slog.String("path", r.path),
		slog.Any("error", err))
	return ReloadFailure
}
