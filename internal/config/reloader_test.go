package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-toolkit/internal/observability/metrics"
	"ai-toolkit/internal/usecase/summarize"
)

type recordingSetter struct {
	engines []*summarize.Engine
}

func (r *recordingSetter) SetEngine(e *summarize.Engine) {
	r.engines = append(r.engines, e)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func reloadCount(status string) float64 {
	return testutil.ToFloat64(metrics.KeyPointConfigReloadsTotal.WithLabelValues(status))
}

func TestReloader_Reload(t *testing.T) {
	path := writeFile(t, "key_points:\n  keywords: [alpha]\n")
	setter := &recordingSetter{}
	r, err := NewReloader(path, "@every 1h", setter, discardLogger())
	require.NoError(t, err)

	applied := reloadCount(ReloadApplied)
	unchanged := reloadCount(ReloadUnchanged)
	failed := reloadCount(ReloadFailure)

	// first check applies the file
	assert.Equal(t, ReloadApplied, r.Reload())
	require.Len(t, setter.engines, 1)
	assert.Equal(t, []string{"alpha"}, setter.engines[0].KeyPointConfig().Keywords)

	// untouched file is skipped
	assert.Equal(t, ReloadUnchanged, r.Reload())
	assert.Len(t, setter.engines, 1)

	// changed file is applied
	require.NoError(t, os.WriteFile(path, []byte("key_points:\n  keywords: [alpha, beta]\n"), 0o600))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))
	assert.Equal(t, ReloadApplied, r.Reload())
	require.Len(t, setter.engines, 2)
	assert.Equal(t, []string{"alpha", "beta"}, setter.engines[1].KeyPointConfig().Keywords)

	// broken file keeps the current engine
	require.NoError(t, os.WriteFile(path, []byte("key_points:\n  max_key_points: -1\n"), 0o600))
	evenLater := later.Add(time.Minute)
	require.NoError(t, os.Chtimes(path, evenLater, evenLater))
	assert.Equal(t, ReloadFailure, r.Reload())
	assert.Len(t, setter.engines, 2)

	// missing file fails too
	require.NoError(t, os.Remove(path))
	assert.Equal(t, ReloadFailure, r.Reload())

	assert.Equal(t, applied+2, reloadCount(ReloadApplied))
	assert.Equal(t, unchanged+1, reloadCount(ReloadUnchanged))
	assert.Equal(t, failed+2, reloadCount(ReloadFailure))
}

func TestNewReloader_InvalidSchedule(t *testing.T) {
	_, err := NewReloader("k.yaml", "not a schedule", &recordingSetter{}, discardLogger())

	assert.ErrorContains(t, err, "invalid reload schedule")
}

func TestReloader_StartStop(t *testing.T) {
	path := writeFile(t, "")
	r, err := NewReloader(path, "@every 1h", &recordingSetter{}, discardLogger())
	require.NoError(t, err)

	r.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r.Stop(ctx)
	assert.NoError(t, ctx.Err())
}

func TestReloader_UpdatesService(t *testing.T) {
	path := writeFile(t, "key_points:\n  keywords: [zebra]\n")
	svc := summarize.NewService(nil, nil, summarize.DefaultConfig())
	r, err := NewReloader(path, "@every 1h", svc, discardLogger())
	require.NoError(t, err)

	require.Equal(t, ReloadApplied, r.Reload())

	assert.Equal(t, []string{"zebra"}, svc.Engine().KeyPointConfig().Keywords)
}
