// Package observability provides structured logging with OpenTelemetry trace
// correlation for gradefang.
package observability

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/gradefang/pkg/config"
)

const (
	tracerName = "gradefang"

	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
)

// Tracer returns the named tracer for creating spans. It resolves against the
// globally registered provider, which is a no-op unless one was installed.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// TracingHandler is an [slog.Handler] that injects OpenTelemetry trace context
// (trace_id, span_id) and the service name into every log record.
// The service attribute is pre-attached at construction so it remains at the
// top level even when groups are used.
type TracingHandler struct {
	inner slog.Handler
}

// NewTracingHandler wraps an [slog.Handler], injecting trace context and the service name.
func NewTracingHandler(inner slog.Handler, service string) *TracingHandler {
	return &TracingHandler{
		inner: inner.WithAttrs([]slog.Attr{slog.String(attrService, service)}),
	}
}

// Enabled delegates to the inner handler.
func (th *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return th.inner.Enabled(ctx, level)
}

// Handle adds trace context attributes from the span context, then delegates.
func (th *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	if sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	err := th.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("tracing handler: %w", err)
	}

	return nil
}

// WithAttrs returns a new TracingHandler with additional attributes on the inner handler.
func (th *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{
		inner: th.inner.WithAttrs(attrs),
	}
}

// WithGroup returns a new TracingHandler with a group prefix on the inner handler.
func (th *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{
		inner: th.inner.WithGroup(name),
	}
}

// NewLogger builds a structured logger according to the logging configuration.
func NewLogger(cfg config.LoggingConfig) *slog.Logger {
	return slog.New(NewTracingHandler(buildHandler(cfg, loggerOutput(cfg.Output)), tracerName))
}

// NewLoggerTo builds a structured logger writing to the given writer.
// Tests use it to capture output.
func NewLoggerTo(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	return slog.New(NewTracingHandler(buildHandler(cfg, w), tracerName))
}

func buildHandler(cfg config.LoggingConfig, w io.Writer) slog.Handler {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if cfg.Format == "text" {
		return slog.NewTextHandler(w, handlerOpts)
	}

	return slog.NewJSONHandler(w, handlerOpts)
}

func loggerOutput(output string) io.Writer {
	if output == "stdout" {
		return os.Stdout
	}

	return os.Stderr
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
