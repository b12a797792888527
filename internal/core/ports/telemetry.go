package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// EmitPlan signals the set of activities planned for execution, in
	// schedule order, together with their dependency names.
	EmitPlan(ctx context.Context, activities []string, deps map[string][]string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer

	// End completes the span.
	End()

	// RecordError records an error for the span.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Placeholder to support the option pattern; no options are defined yet.
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

type spanContextKey struct{}

// ContextWithSpan returns a context carrying the given span.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	return context.WithValue(ctx, spanContextKey{}, span)
}

// SpanFromContext returns the span carried by the context, if any.
func SpanFromContext(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(spanContextKey{}).(Span)
	return span, ok
}
