package observability_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/gradefang/pkg/config"
	"github.com/Sumatoshi-tech/gradefang/pkg/observability"
)

func TestNewLoggerToJSONIncludesService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := observability.NewLoggerTo(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	logger.InfoContext(t.Context(), "hello", "records", 3)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "hello", decoded["msg"])
	assert.Equal(t, "gradefang", decoded["service"])
	assert.InDelta(t, 3.0, decoded["records"], 0.001)
}

func TestNewLoggerToRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := observability.NewLoggerTo(config.LoggingConfig{Level: "error", Format: "json"}, &buf)
	logger.InfoContext(t.Context(), "suppressed")
	assert.Empty(t, buf.String())

	logger.ErrorContext(t.Context(), "boom")
	assert.Contains(t, buf.String(), "boom")
}

func TestNewLoggerToTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := observability.NewLoggerTo(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)
	logger.DebugContext(t.Context(), "detail")

	assert.Contains(t, buf.String(), "msg=detail")
	assert.Contains(t, buf.String(), "service=gradefang")
}

func TestTracingHandlerInjectsSpanContext(t *testing.T) {
	t.Parallel()

	traceID := trace.TraceID{0x01}
	spanID := trace.SpanID{0x02}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	})
	ctx := trace.ContextWithSpanContext(t.Context(), sc)

	var buf bytes.Buffer

	logger := observability.NewLoggerTo(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	logger.InfoContext(ctx, "traced")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, traceID.String(), decoded["trace_id"])
	assert.Equal(t, spanID.String(), decoded["span_id"])
}

func TestTracer(t *testing.T) {
	t.Parallel()

	tracer := observability.Tracer()
	require.NotNil(t, tracer)

	_, span := tracer.Start(t.Context(), "noop")
	span.End()
}
