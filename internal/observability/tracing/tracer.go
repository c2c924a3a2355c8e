package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans created by this service.
const TracerName = "ai-toolkit"

// GetTracer returns the service tracer from the current global provider.
// It is resolved on every call so a provider installed after package
// initialization (main, tests) takes effect.
func GetTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
