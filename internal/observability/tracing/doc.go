// Package tracing provides OpenTelemetry tracing for the service.
//
// The tracer is taken from the global provider, so spans are no-ops until
// main calls Setup. Tests install an sdk provider with an in-memory exporter.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "summarize.Service.Summarize")
//	defer span.End()
package tracing
