// Package metrics declares the Prometheus collectors served on /metrics and
// small Record helpers for them. Collectors register with the default
// registry through promauto at package init.
//
// HTTP collectors are fed by the metrics middleware; business collectors by
// the summarize, assistant and learning path services:
//
//	start := time.Now()
//	result := engine.Summarize(text, entity.LevelMedium)
//	metrics.RecordSummaryProduced("medium", time.Since(start), result.WordCount.Reduction)
package metrics
