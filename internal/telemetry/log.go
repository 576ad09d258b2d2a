package telemetry

import (
	"context"

	"github.com/dogmatiq/serdeconv"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
)

// Info records a successful conversion as a log record and a span event.
func (r *Recorder) Info(
	ctx context.Context,
	event, message string,
	attrs ...Attr,
) {
	r.emit(ctx, log.SeverityInfo, event, message, attrs)
}

// Error records a failed conversion as a log record and a span event.
//
// The [serdeconv.ErrorKind] of err, if any, is added as the "error.kind"
// attribute. The span is marked as failed and the failure is counted.
func (r *Recorder) Error(
	ctx context.Context,
	event, message string,
	err error,
	attrs ...Attr,
) {
	kind, ok := serdeconv.KindOf(err)
	kindAttr := If(ok, Stringer("error.kind", kind))

	r.emit(
		ctx,
		log.SeverityError,
		event,
		message,
		append(attrs, String("error", err.Error()), kindAttr),
	)
	r.failures(ctx, 1, kindAttr)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(asAttrKeyValues([]Attr{kindAttr})...)
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}

func (r *Recorder) emit(
	ctx context.Context,
	severity log.Severity,
	event, message string,
	attrs []Attr,
) {
	trace.SpanFromContext(ctx).AddEvent(
		event,
		trace.WithAttributes(attribute.String("message", message)),
		trace.WithAttributes(asAttrKeyValues(attrs)...),
	)

	if !r.logger.Enabled(ctx, log.EnabledParameters{Severity: severity}) {
		return
	}

	var rec log.Record
	rec.SetEventName(event)
	rec.SetSeverity(severity)
	rec.SetBody(log.StringValue(message))
	rec.AddAttributes(asLogKeyValues(attrs)...)

	r.logger.Emit(ctx, rec)
}
