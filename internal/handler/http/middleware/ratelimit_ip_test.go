package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"ai-toolkit/internal/observability/metrics"
)

type mockIPExtractorFunc func(r *http.Request) (string, error)

func (f mockIPExtractorFunc) ExtractIP(r *http.Request) (string, error) {
	return f(r)
}

func headerExtractor() IPExtractor {
	return mockIPExtractorFunc(func(r *http.Request) (string, error) {
		return r.Header.Get("X-Test-IP"), nil
	})
}

func sendFrom(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", nil)
	req.Header.Set("X-Test-IP", ip)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewIPRateLimiter_Defaults(t *testing.T) {
	rl := NewIPRateLimiter(IPRateLimiterConfig{}, headerExtractor())

	if rl.config.RequestsPerMinute != 60 || rl.config.Burst != 10 || rl.config.MaxClients != 10000 {
		t.Errorf("unexpected defaults: %+v", rl.config)
	}
}

func TestIPRateLimiter_Middleware_DenyExceedingBurst(t *testing.T) {
	rl := NewIPRateLimiter(IPRateLimiterConfig{RequestsPerMinute: 60, Burst: 2, MaxClients: 100}, headerExtractor())
	h := rl.Middleware()(okHandler())
	before := testutil.ToFloat64(metrics.RateLimitedRequestsTotal)

	for i := 0; i < 2; i++ {
		if rr := sendFrom(h, "203.0.113.1"); rr.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rr.Code)
		}
	}

	rr := sendFrom(h, "203.0.113.1")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rr.Code)
	}
	if got := rr.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After = %q, want 1", got)
	}
	if got := rr.Header().Get("X-RateLimit-Limit"); got != "60" {
		t.Errorf("X-RateLimit-Limit = %q, want 60", got)
	}
	if got := testutil.ToFloat64(metrics.RateLimitedRequestsTotal) - before; got != 1 {
		t.Errorf("rate limited counter delta = %v, want 1", got)
	}

	if rr := sendFrom(h, "203.0.113.2"); rr.Code != http.StatusOK {
		t.Errorf("other client: status = %d, want 200", rr.Code)
	}
}

func TestIPRateLimiter_EvictsLeastRecentClient(t *testing.T) {
	rl := NewIPRateLimiter(IPRateLimiterConfig{RequestsPerMinute: 1, Burst: 1, MaxClients: 1}, headerExtractor())

	if ok, _ := rl.Allow("a"); !ok {
		t.Fatal("first request for a should pass")
	}
	if ok, _ := rl.Allow("a"); ok {
		t.Fatal("second request for a should be limited")
	}
	if ok, _ := rl.Allow("b"); !ok {
		t.Fatal("first request for b should pass")
	}
	if rl.Tracked() != 1 {
		t.Errorf("Tracked() = %d, want 1", rl.Tracked())
	}
	if ok, _ := rl.Allow("a"); !ok {
		t.Error("a was evicted and should start with a fresh bucket")
	}
}

func TestIPRateLimiter_Middleware_IPExtractionError(t *testing.T) {
	failing := mockIPExtractorFunc(func(*http.Request) (string, error) {
		return "", errors.New("no address")
	})
	rl := NewIPRateLimiter(IPRateLimiterConfig{RequestsPerMinute: 1, Burst: 1}, failing)
	h := rl.Middleware()(okHandler())

	for i := 0; i < 3; i++ {
		if rr := sendFrom(h, ""); rr.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rr.Code)
		}
	}
}
