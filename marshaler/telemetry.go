package marshaler

import (
	"context"

	"github.com/dogmatiq/serdeconv/internal/telemetry"
	"github.com/dogmatiq/serdeconv/internal/x/xtelemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// WithTelemetry returns a [Marshaler] that adds telemetry to m.
//
// Each call produces a span, an informational or error log record, and
// updates metrics describing the size of the encoded data.
func WithTelemetry[T any](
	m Marshaler[T],
	p trace.TracerProvider,
	mp metric.MeterProvider,
	l log.LoggerProvider,
) Marshaler[T] {
	telem := telemetry.NewRecorder(
		"github.com/dogmatiq/serdeconv/marshaler",
		p,
		mp,
		l,
		telemetry.Type("marshaler.type", m),
		telemetry.String("marshaler.handle", xtelemetry.HandleID()),
	)

	return &instrumented[T]{
		Next:      m,
		Telemetry: telem,
		DataIO:    telem.Counter("data.io", "By", "The cumulative size of the data that has been encoded or decoded."),
		DataSize:  telem.Histogram("data.size", "By", "The sizes of the data that has been encoded or decoded."),
	}
}

// instrumented is a decorator that adds instrumentation to a [Marshaler].
type instrumented[T any] struct {
	Next      Marshaler[T]
	Telemetry *telemetry.Recorder

	DataIO   telemetry.Instrument[int64]
	DataSize telemetry.Instrument[int64]
}

func (m *instrumented[T]) Marshal(v T) ([]byte, error) {
	ctx, span := m.Telemetry.StartSpan(
		context.Background(),
		"marshal",
		telemetry.Type("value.type", v),
	)
	defer span.End()

	data, err := m.Next.Marshal(v)
	if err != nil {
		m.Telemetry.Error(ctx, "marshal.error", "unable to marshal value", err)
		return nil, err
	}

	size := int64(len(data))

	m.DataIO(ctx, size, telemetry.WriteDirection)
	m.DataSize(ctx, size, telemetry.WriteDirection)

	span.SetAttributes(
		telemetry.Binary("data", data),
		telemetry.Int("data_size", size),
	)

	m.Telemetry.Info(ctx, "marshal.ok", "marshaled value")

	return data, nil
}

func (m *instrumented[T]) Unmarshal(data []byte) (T, error) {
	size := int64(len(data))

	ctx, span := m.Telemetry.StartSpan(
		context.Background(),
		"unmarshal",
		telemetry.Binary("data", data),
		telemetry.Int("data_size", size),
	)
	defer span.End()

	m.DataIO(ctx, size, telemetry.ReadDirection)
	m.DataSize(ctx, size, telemetry.ReadDirection)

	v, err := m.Next.Unmarshal(data)
	if err != nil {
		m.Telemetry.Error(ctx, "unmarshal.error", "unable to unmarshal value", err)
		return v, err
	}

	span.SetAttributes(
		telemetry.Type("value.type", v),
	)

	m.Telemetry.Info(ctx, "unmarshal.ok", "unmarshaled value")

	return v, nil
}
