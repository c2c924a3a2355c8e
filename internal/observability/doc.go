// Package observability groups the service's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog construction from LOG_LEVEL / LOG_FORMAT and request-scoped loggers
//   - metrics: Prometheus collectors for HTTP traffic, summaries, URL ingestion and the assistant
//   - tracing: OpenTelemetry tracer and HTTP server span middleware
package observability
