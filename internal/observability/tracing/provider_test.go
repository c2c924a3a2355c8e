package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
}

func TestSetup_SamplesAll(t *testing.T) {
	restoreGlobals(t)
	shutdown := Setup(1)

	_, span := GetTracer().Start(context.Background(), "op")
	sc := span.SpanContext()
	span.End()

	assert.True(t, sc.IsValid())
	assert.True(t, sc.IsSampled())
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_SamplesNone(t *testing.T) {
	restoreGlobals(t)
	shutdown := Setup(0)
	defer func() { _ = shutdown(context.Background()) }()

	_, span := GetTracer().Start(context.Background(), "op")
	sc := span.SpanContext()
	span.End()

	assert.True(t, sc.IsValid(), "trace ID is still generated for unsampled spans")
	assert.False(t, sc.IsSampled())
}
