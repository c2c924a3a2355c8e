package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"ai-toolkit/internal/handler/http/respond"
	"ai-toolkit/internal/observability/metrics"
)

// IPRateLimiterConfig holds configuration for the IP-based rate limiter.
type IPRateLimiterConfig struct {
	// RequestsPerMinute is the sustained rate allowed per client.
	RequestsPerMinute int
	// Burst is the number of requests a client may make at once.
	Burst int
	// MaxClients bounds the number of tracked clients. The least recently
	// seen client is evicted first.
	MaxClients int
}

// IPRateLimiter is a per-client token bucket limiter.
type IPRateLimiter struct {
	config    IPRateLimiterConfig
	extractor IPExtractor

	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
}

// NewIPRateLimiter creates a limiter. Non-positive config values fall back
// to 60 requests per minute, a burst of 10 and 10000 clients.
func NewIPRateLimiter(config IPRateLimiterConfig, extractor IPExtractor) *IPRateLimiter {
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = 60
	}
	if config.Burst <= 0 {
		config.Burst = 10
	}
	if config.MaxClients <= 0 {
		config.MaxClients = 10000
	}

	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, *rate.Limiter](config.MaxClients)
	return &IPRateLimiter{
		config:    config,
		extractor: extractor,
		limiters:  cache,
	}
}

func (rl *IPRateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.limiters.Get(ip); ok {
		return l
	}
	l := rate.NewLimiter(rate.Limit(float64(rl.config.RequestsPerMinute)/60), rl.config.Burst)
	rl.limiters.Add(ip, l)
	return l
}

// Allow reports whether ip may make a request now, and if not how long it
// should wait.
func (rl *IPRateLimiter) Allow(ip string) (bool, time.Duration) {
	l := rl.limiter(ip)
	now := time.Now()
	r := l.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Minute
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Tracked returns the number of clients currently held by the limiter.
func (rl *IPRateLimiter) Tracked() int {
	return rl.limiters.Len()
}

// Middleware rejects requests over the limit with 429 Too Many Requests and a
// Retry-After header. Requests whose client cannot be identified are let through.
func (rl *IPRateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, err := rl.extractor.ExtractIP(r)
			if err != nil {
				slog.Error("IP rate limiter: failed to extract IP, allowing request",
					slog.String("error", err.Error()),
					slog.String("remote_addr", r.RemoteAddr),
					slog.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			allowed, wait := rl.Allow(ip)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.config.RequestsPerMinute))
			if !allowed {
				metrics.RecordRateLimited()
				slog.Debug("rate limit exceeded",
					slog.String("ip", ip),
					slog.String("path", r.URL.Path),
					slog.Duration("retry_after", wait))
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				respond.JSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
