// Package tracing wraps the process-wide otel tracer so call sites can open
// spans without threading a tracer through every constructor. Until SetTracer
// runs every helper is a no-op.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

var tracer trace.Tracer

// SetTracer installs the tracer used by StartSpan. Called once at boot.
func SetTracer(t trace.Tracer) {
	tracer = t
}

// StartSpan opens a child span named after the calling component, e.g.
// "matching.Service.EvaluateBatch". Callers must End the returned span.
func StartSpan(ctx context.Context, spanName string) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, spanName)
}

// GetActiveSpan returns the span recorded on ctx, or nil when tracing is
// disabled or nothing has been recorded.
func GetActiveSpan(ctx context.Context) trace.Span {
	if tracer == nil {
		return nil
	}
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return nil
	}
	return span
}

// GetTraceID returns the active trace ID, or "" when there is no active span.
// Error responses carry it so a failed request can be found in the collector.
func GetTraceID(ctx context.Context) string {
	span := GetActiveSpan(ctx)
	if span == nil {
		return ""
	}
	return span.SpanContext().TraceID().String()
}
