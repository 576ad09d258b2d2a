package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Span is a span started by a [Recorder].
type Span struct {
	ctx      context.Context
	span     trace.Span
	recorder *Recorder
}

// StartSpan starts a new span and counts it as an in-flight conversion until
// [Span.End] is called.
func (r *Recorder) StartSpan(
	ctx context.Context,
	name string,
	attrs ...Attr,
) (context.Context, *Span) {
	ctx, span := r.tracer.Start(
		ctx,
		name,
		trace.WithAttributes(asAttrKeyValues(attrs)...),
	)

	r.conversions(ctx, 1)
	r.conversionsInFlight(ctx, 1)

	return ctx, &Span{ctx, span, r}
}

// SetAttributes adds attributes to the span.
func (s *Span) SetAttributes(attrs ...Attr) {
	s.span.SetAttributes(asAttrKeyValues(attrs)...)
}

// End completes the span.
func (s *Span) End() {
	s.recorder.conversionsInFlight(s.ctx, -1)
	s.span.End()
}
