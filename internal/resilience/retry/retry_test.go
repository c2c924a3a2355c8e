package retry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"syscall"
	"testing"
	"time"
)

func fastConfig(attempts int) Config {
	return Config{
		Name:           "test",
		MaxAttempts:    attempts,
		InitialDelay:   time.Millisecond,
		MaxDelay:       20 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestDo_ReturnsResult(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), fastConfig(3), func() (string, error) {
		calls++
		if calls < 3 {
			return "", &HTTPError{StatusCode: http.StatusBadGateway, Message: "upstream"}
		}
		return "done", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "done" {
		t.Errorf("got %q, want %q", got, "done")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDo_StopsAtMaxAttempts(t *testing.T) {
	calls := 0
	cause := &HTTPError{StatusCode: http.StatusServiceUnavailable, Message: "down"}
	_, err := Do(context.Background(), fastConfig(2), func() (int, error) {
		calls++
		return 0, cause
	})

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error %v does not wrap the last attempt's error", err)
	}
	if !strings.Contains(err.Error(), "max retry attempts (2) exceeded") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDo_NonRetryableReturnsImmediately(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "client error", err: &HTTPError{StatusCode: http.StatusBadRequest}},
		{name: "plain error", err: errors.New("invalid input")},
		{name: "permanent server error", err: Permanent(&HTTPError{StatusCode: http.StatusInternalServerError})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			_, err := Do(context.Background(), fastConfig(5), func() (struct{}, error) {
				calls++
				return struct{}{}, tt.err
			})
			if calls != 1 {
				t.Errorf("calls = %d, want 1", calls)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	cfg := fastConfig(5)
	cfg.InitialDelay = time.Second
	cfg.MaxDelay = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Do(ctx, cfg, func() (int, error) {
		return 0, syscall.ECONNRESET
	})

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want deadline exceeded", err)
	}
	if !strings.HasPrefix(err.Error(), "retry aborted") {
		t.Errorf("unexpected message: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Do kept waiting after cancellation: %v", elapsed)
	}
}

func TestDo_HonoursRetryAfter(t *testing.T) {
	cfg := fastConfig(2)
	cfg.JitterFraction = 0
	cfg.MaxDelay = time.Second

	calls := 0
	start := time.Now()
	_, err := Do(context.Background(), cfg, func() (int, error) {
		calls++
		if calls == 1 {
			return 0, &HTTPError{StatusCode: http.StatusTooManyRequests, RetryAfter: 50 * time.Millisecond}
		}
		return 1, nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("waited %v, want at least the Retry-After of 50ms", elapsed)
	}
}

func TestDo_RetryAfterCappedByMaxDelay(t *testing.T) {
	cfg := fastConfig(2)
	cfg.JitterFraction = 0

	calls := 0
	start := time.Now()
	_, _ = Do(context.Background(), cfg, func() (int, error) {
		calls++
		if calls == 1 {
			return 0, &HTTPError{StatusCode: http.StatusTooManyRequests, RetryAfter: time.Hour}
		}
		return 1, nil
	})

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("waited %v, want the wait capped at MaxDelay", elapsed)
	}
}

func TestWithBackoff(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(3), func() error {
		calls++
		if calls == 1 {
			return fmt.Errorf("dial: %w", syscall.ECONNREFUSED)
		}
		return nil
	})

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "network timeout", err: timeoutError{}, want: true},
		{name: "connection refused", err: syscall.ECONNREFUSED, want: true},
		{name: "wrapped connection reset", err: fmt.Errorf("read: %w", syscall.ECONNRESET), want: true},
		{name: "network unreachable", err: syscall.ENETUNREACH, want: true},
		{name: "500", err: &HTTPError{StatusCode: 500}, want: true},
		{name: "503", err: &HTTPError{StatusCode: 503}, want: true},
		{name: "429", err: &HTTPError{StatusCode: 429}, want: true},
		{name: "408", err: &HTTPError{StatusCode: 408}, want: true},
		{name: "400", err: &HTTPError{StatusCode: 400}, want: false},
		{name: "404", err: &HTTPError{StatusCode: 404}, want: false},
		{name: "permanent", err: Permanent(syscall.ECONNRESET), want: false},
		{name: "cancelled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("call: %w", context.DeadlineExceeded), want: false},
		{name: "unknown", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestPermanent(t *testing.T) {
	if Permanent(nil) != nil {
		t.Error("Permanent(nil) should be nil")
	}

	cause := &HTTPError{StatusCode: 503, Message: "maintenance"}
	err := Permanent(cause)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != 503 {
		t.Errorf("errors.As did not find the wrapped HTTPError")
	}
	if err.Error() != cause.Error() {
		t.Errorf("message = %q, want %q", err.Error(), cause.Error())
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "empty", value: "", want: 0},
		{name: "seconds", value: "7", want: 7 * time.Second},
		{name: "padded seconds", value: " 2 ", want: 2 * time.Second},
		{name: "negative seconds", value: "-4", want: 0},
		{name: "http date", value: now.Add(90 * time.Second).Format(http.TimeFormat), want: 90 * time.Second},
		{name: "date in the past", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRetryAfter(tt.value, now); got != tt.want {
				t.Errorf("ParseRetryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestHTTPError(t *testing.T) {
	err := &HTTPError{StatusCode: 502, Message: "bad gateway"}
	if err.Error() != "HTTP 502: bad gateway" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.HTTPStatus() != 502 {
		t.Errorf("HTTPStatus() = %d", err.HTTPStatus())
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero attempts", mutate: func(c *Config) { c.MaxAttempts = 0 }, wantErr: true},
		{name: "negative initial delay", mutate: func(c *Config) { c.InitialDelay = -time.Second }, wantErr: true},
		{name: "max below initial", mutate: func(c *Config) { c.MaxDelay = 0 }, wantErr: true},
		{name: "shrinking multiplier", mutate: func(c *Config) { c.Multiplier = 0.5 }, wantErr: true},
		{name: "jitter above one", mutate: func(c *Config) { c.JitterFraction = 1.5 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fastConfig(3)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPresetConfigsAreValid(t *testing.T) {
	for _, cfg := range []Config{ContentFetchConfig(), AssistantConfig("claude"), AssistantConfig("openai")} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: %v", cfg.Name, err)
		}
	}
	if got := AssistantConfig("claude").Name; got != "assistant-claude" {
		t.Errorf("AssistantConfig name = %q", got)
	}
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for range 50 {
		got := addJitter(base, 0.2)
		if got < base || got > base+20*time.Millisecond {
			t.Fatalf("addJitter(%v, 0.2) = %v, out of range", base, got)
		}
	}
	if got := addJitter(base, 0); got != base {
		t.Errorf("zero fraction changed the delay: %v", got)
	}
}
