// Package fetcher turns a web page URL into readable plain text for the
// summarizer. It uses Mozilla's Readability algorithm (go-readability) and
// guards every request against SSRF, oversized bodies, redirect loops and slow
// servers.
package fetcher

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"ai-toolkit/internal/resilience/circuitbreaker"
	"ai-toolkit/internal/resilience/retry"
)

// ReadabilityFetcher fetches a page and extracts its main article text.
// It implements summarize.ContentFetcher.
type ReadabilityFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
	resolve        ipResolver
}

// NewReadabilityFetcher creates a fetcher with the given configuration.
// Redirect targets are re-validated against the same SSRF rules as the
// initial URL.
func NewReadabilityFetcher(config Config) *ReadabilityFetcher {
	cbConfig := circuitbreaker.ContentFetchConfig()
	cbConfig.IsFailure = pageFailure

	f := &ReadabilityFetcher{
		circuitBreaker: circuitbreaker.New(cbConfig),
		retryConfig:    retry.ContentFetchConfig(),
		config:         config,
		resolve:        defaultResolver,
	}

	f.client = &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12, // Enforce TLS 1.2+
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > f.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.Context(), req.URL.String(), f.config.DenyPrivateIPs, f.resolve); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}

	return f
}

// pageFailure counts only transport failures against the breaker. A page
// that is too large or has no article body says nothing about the network.
func pageFailure(err error) bool {
	if errors.Is(err, ErrBodyTooLarge) || errors.Is(err, ErrReadabilityFailed) {
		return false
	}
	return circuitbreaker.DependencyFailure(err)
}

// BreakerState reports the circuit breaker state ("closed", "half-open" or "open").
func (f *ReadabilityFetcher) BreakerState() string {
	return f.circuitBreaker.StateName()
}

// FetchContent fetches urlStr and returns the extracted article text.
// Transient failures (timeouts, 5xx, 429) are retried through the circuit breaker.
func (f *ReadabilityFetcher) FetchContent(ctx context.Context, urlStr string) (string, error) {
	if err := validateURL(ctx, urlStr, f.config.DenyPrivateIPs, f.resolve); err != nil {
		return "", err
	}

	content, err := retry.Do(ctx, f.retryConfig, func() (string, error) {
		return circuitbreaker.Do(f.circuitBreaker, func() (string, error) {
			return f.doFetch(ctx, urlStr)
		})
	})
	if err != nil {
		slog.WarnContext(ctx, "content fetch failed",
			slog.String("url", urlStr),
			slog.Any("error", err))
		return "", err
	}
	return content, nil
}

// doFetch performs a single request and extraction without retry or circuit breaker.
func (f *ReadabilityFetcher) doFetch(ctx context.Context, urlStr string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		isURLErr := errors.As(err, &urlErr)
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) || (isURLErr && urlErr.Timeout()) {
			return "", fmt.Errorf("%w: request exceeded %v", ErrTimeout, f.config.Timeout)
		}
		if isURLErr && urlErr.Err != nil {
			return "", urlErr.Err
		}
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
			RetryAfter: retry.ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}
	}

	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(htmlBytes)) > f.config.MaxBodySize {
		return "", fmt.Errorf("%w: response exceeds %d bytes", ErrBodyTooLarge, f.config.MaxBodySize)
	}

	// Relative links resolve against the final URL after redirects.
	pageURL := resp.Request.URL

	article, err := readability.FromReader(bytes.NewReader(htmlBytes), pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadabilityFailed, err)
	}

	content := normalizeWhitespace(article.TextContent)
	if content == "" {
		return "", fmt.Errorf("%w: no readable content found", ErrReadabilityFailed)
	}

	slog.DebugContext(ctx, "content fetched",
		slog.String("url", pageURL.String()),
		slog.String("title", article.Title),
		slog.Int("bytes", len(htmlBytes)),
		slog.Int("text_length", len(content)))

	return content, nil
}

// normalizeWhitespace trims every line and collapses blank-line runs so the
// extracted text segments cleanly into sentences.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
