package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSummarization(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		source string
		status string
	}{
		{name: "text success", level: "short", source: "text", status: "success"},
		{name: "url failure", level: "medium", source: "url", status: "failure"},
		{name: "invalid", level: "long", source: "text", status: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := SummarizationsTotal.WithLabelValues(tt.level, tt.source, tt.status)
			before := testutil.ToFloat64(counter)

			RecordSummarization(tt.level, tt.source, tt.status)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordSummaryProduced(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordSummaryProduced("medium", 250*time.Microsecond, 60)
		RecordSummaryProduced("short", 0, 0)
	})
}

func TestRecordSuperseded(t *testing.T) {
	before := testutil.ToFloat64(SummarizeSupersededTotal)
	RecordSuperseded()
	assert.Equal(t, before+1, testutil.ToFloat64(SummarizeSupersededTotal))
}

func TestRecordKeyPointConfigReload(t *testing.T) {
	for _, status := range []string{"applied", "unchanged", "failure"} {
		t.Run(status, func(t *testing.T) {
			counter := KeyPointConfigReloadsTotal.WithLabelValues(status)
			before := testutil.ToFloat64(counter)
			RecordKeyPointConfigReload(status)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordContentFetch(t *testing.T) {
	success := ContentFetchAttemptsTotal.WithLabelValues("success")
	failure := ContentFetchAttemptsTotal.WithLabelValues("failure")
	beforeSuccess := testutil.ToFloat64(success)
	beforeFailure := testutil.ToFloat64(failure)

	RecordContentFetchSuccess(100*time.Millisecond, 2048)
	RecordContentFetchFailed(3 * time.Second)

	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailure+1, testutil.ToFloat64(failure))
}

func TestRecordAssistantRequest(t *testing.T) {
	counter := AssistantRequestsTotal.WithLabelValues("document_qa", "fallback")
	before := testutil.ToFloat64(counter)
	RecordAssistantRequest("document_qa", "fallback")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordLearningPathGenerated(t *testing.T) {
	counter := LearningPathsGeneratedTotal.WithLabelValues("data-science")
	before := testutil.ToFloat64(counter)
	RecordLearningPathGenerated("data-science")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordHTTPRequest(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues("POST", "/api/summarize", "200")
	before := testutil.ToFloat64(counter)
	RecordHTTPRequest("POST", "/api/summarize", "200", 5*time.Millisecond, 512, 1024)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
