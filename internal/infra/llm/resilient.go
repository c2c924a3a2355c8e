package llm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ai-toolkit/internal/resilience/circuitbreaker"
	"ai-toolkit/internal/resilience/retry"
)

// callWithResilience runs fn through the circuit breaker, retrying transient
// failures with backoff. An open breaker fails the call at once.
func callWithResilience(ctx context.Context, cb *circuitbreaker.CircuitBreaker, retryCfg retry.Config, fn func() (string, error)) (string, error) {
	return retry.Do(ctx, retryCfg, func() (string, error) {
		reply, err := circuitbreaker.Do(cb, fn)
		if errors.Is(err, circuitbreaker.ErrOpen) {
			slog.WarnContext(ctx, "assistant circuit breaker open, request rejected",
				slog.String("circuit", cb.Name()))
		}
		return reply, err
	})
}

// statusError converts an SDK status code into a retry.HTTPError so 429 and
// 5xx responses are retried and 4xx responses do not trip the breaker.
func statusError(statusCode int, resp *http.Response, err error) error {
	if statusCode == 0 {
		return err
	}
	httpErr := &retry.HTTPError{StatusCode: statusCode, Message: err.Error()}
	if resp != nil {
		httpErr.RetryAfter = retry.ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
	}
	return httpErr
}
