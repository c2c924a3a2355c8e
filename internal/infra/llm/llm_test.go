package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-toolkit/internal/resilience/retry"
	"ai-toolkit/internal/usecase/assistant"
)

// recordingMetrics implements CallMetricsRecorder for testing.
type recordingMetrics struct {
	mu      sync.Mutex
	calls   []bool
	lengths []int
}

func (r *recordingMetrics) RecordCall(_ string, _ time.Duration, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, success)
}

func (r *recordingMetrics) RecordReplyLength(_ string, length int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lengths = append(r.lengths, length)
}

func fastRetry() retry.Config {
	return retry.Config{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		Multiplier:   1,
	}
}

func testConfig(provider, baseURL string) Config {
	return Config{
		Provider:  provider,
		APIKey:    "test-key",
		Model:     "test-model",
		MaxTokens: 256,
		Timeout:   5 * time.Second,
		BaseURL:   baseURL,
	}
}

var testPrompt = assistant.Prompt{System: "be brief", User: "hello?"}

func TestClaude_Complete(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "test-model",
			"content": [{"type": "text", "text": "Hello "}, {"type": "text", "text": "there."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 3, "output_tokens": 2}
		}`))
	}))
	defer server.Close()

	metrics := &recordingMetrics{}
	c := NewClaude(testConfig(ProviderClaude, server.URL))
	c.metricsRecorder = metrics
	c.retryConfig = fastRetry()

	reply, err := c.Complete(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, "Hello there.", reply)
	assert.Equal(t, "test-model", body["model"])
	assert.EqualValues(t, 256, body["max_tokens"])
	assert.NotNil(t, body["system"])
	assert.Equal(t, []bool{true}, metrics.calls)
	assert.Equal(t, []int{12}, metrics.lengths)
	assert.Equal(t, ProviderClaude, c.Name())
}

func TestClaude_Complete_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{name: "bad request is not retried", status: http.StatusBadRequest, wantCalls: 1},
		{name: "server error is retried", status: http.StatusInternalServerError, wantCalls: 2},
		{name: "rate limit is retried", status: http.StatusTooManyRequests, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
			}))
			defer server.Close()

			c := NewClaude(testConfig(ProviderClaude, server.URL))
			c.metricsRecorder = &recordingMetrics{}
			c.retryConfig = fastRetry()

			_, err := c.Complete(context.Background(), testPrompt)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "claude completion failed")
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestClaude_Complete_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_01","type":"message","role":"assistant","model":"test-model","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`))
	}))
	defer server.Close()

	c := NewClaude(testConfig(ProviderClaude, server.URL))
	c.metricsRecorder = &recordingMetrics{}
	c.retryConfig = fastRetry()

	_, err := c.Complete(context.Background(), testPrompt)

	assert.ErrorIs(t, err, assistant.ErrEmptyCompletion)
}

func TestOpenAI_Complete(t *testing.T) {
	var req struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hi!"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
		}`))
	}))
	defer server.Close()

	metrics := &recordingMetrics{}
	o := NewOpenAI(testConfig(ProviderOpenAI, server.URL+"/v1"))
	o.metricsRecorder = metrics
	o.retryConfig = fastRetry()

	reply, err := o.Complete(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, "Hi!", reply)
	assert.Equal(t, "test-model", req.Model)
	assert.Equal(t, 256, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "be brief", req.Messages[0].Content)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Equal(t, []bool{true}, metrics.calls)
}

func TestOpenAI_Complete_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCalls int32
		wantErr   error
	}{
		{
			name:      "unauthorized is not retried",
			status:    http.StatusUnauthorized,
			body:      `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`,
			wantCalls: 1,
		},
		{
			name:      "service unavailable is retried",
			status:    http.StatusServiceUnavailable,
			body:      `{"error":{"message":"overloaded","type":"server_error"}}`,
			wantCalls: 2,
		},
		{
			name:      "empty choices",
			status:    http.StatusOK,
			body:      `{"id":"x","object":"chat.completion","created":1,"model":"test-model","choices":[]}`,
			wantCalls: 1,
			wantErr:   assistant.ErrEmptyCompletion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			o := NewOpenAI(testConfig(ProviderOpenAI, server.URL+"/v1"))
			o.metricsRecorder = &recordingMetrics{}
			o.retryConfig = fastRetry()

			_, err := o.Complete(context.Background(), testPrompt)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestNoop(t *testing.T) {
	n := NewNoop()

	_, err := n.Complete(context.Background(), testPrompt)

	assert.ErrorIs(t, err, assistant.ErrProviderDisabled)
	assert.Equal(t, ProviderNoop, n.Name())
}
