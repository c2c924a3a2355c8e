package metrics

import (
	"time"
)

// RecordSummarization records the outcome of one summarization request.
// Source is "text" or "url"; status is "success", "invalid" or "failure".
func RecordSummarization(level, source, status string) {
	SummarizationsTotal.WithLabelValues(level, source, status).Inc()
}

// RecordSummaryProduced records engine latency and the reduction achieved.
func RecordSummaryProduced(level string, duration time.Duration, reduction int) {
	SummarizationDuration.WithLabelValues(level).Observe(duration.Seconds())
	SummaryReductionPercent.Observe(float64(reduction))
}

// RecordBatchSize records the number of documents in a batch request.
func RecordBatchSize(size int) {
	SummarizeBatchSize.Observe(float64(size))
}

// RecordSuperseded records a session job whose result was discarded.
func RecordSuperseded() {
	SummarizeSupersededTotal.Inc()
}

// RecordKeyPointConfigReload records a configuration reload attempt.
// Status should be "applied", "unchanged" or "failure".
func RecordKeyPointConfigReload(status string) {
	KeyPointConfigReloadsTotal.WithLabelValues(status).Inc()
}

// RecordContentFetchSuccess records a successful content fetch operation.
// This tracks both the duration and size of fetched content.
//
// Example:
//
//	start := time.Now()
//	content, err := fetcher.FetchContent(ctx, url)
//	if err == nil {
//	    RecordContentFetchSuccess(time.Since(start), len(content))
//	}
func RecordContentFetchSuccess(duration time.Duration, size int) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
	ContentFetchSize.Observe(float64(size))
}

// RecordContentFetchFailed records a failed content fetch operation.
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordAssistantRequest records an assistant request.
// Operation is "document_qa" or "website_chat".
func RecordAssistantRequest(operation, status string) {
	AssistantRequestsTotal.WithLabelValues(operation, status).Inc()
}

// RecordLearningPathGenerated records a learning path built from template.
func RecordLearningPathGenerated(template string) {
	LearningPathsGeneratedTotal.WithLabelValues(template).Inc()
}
