package telemetry

import (
	"runtime/debug"
	"sync"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Recorder records traces, metrics and logs for the conversions performed by
// an instrumented component, such as a marshaler.
type Recorder struct {
	tracer trace.Tracer
	meter  metric.Meter
	logger log.Logger

	conversions         Instrument[int64]
	conversionsInFlight Instrument[int64]
	failures            Instrument[int64]
}

// NewRecorder returns a new Recorder.
//
// pkg is the path of the public package that performs the instrumentation.
// attrs describe the instrumented component and are attached to everything it
// records.
func NewRecorder(
	pkg string,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	lp log.LoggerProvider,
	attrs ...Attr,
) *Recorder {
	version := moduleVersion()
	kvs := asAttrKeyValues(attrs)

	r := &Recorder{
		tracer: tp.Tracer(
			pkg,
			trace.WithInstrumentationVersion(version),
			trace.WithInstrumentationAttributes(kvs...),
		),
		meter: mp.Meter(
			pkg,
			metric.WithInstrumentationVersion(version),
			metric.WithInstrumentationAttributes(kvs...),
		),
		logger: lp.Logger(
			pkg,
			log.WithInstrumentationVersion(version),
			log.WithInstrumentationAttributes(kvs...),
		),
	}

	r.conversions = r.Counter("conversions", "{conversion}", "The number of conversions that have been started.")
	r.conversionsInFlight = r.UpDownCounter("conversions.in_flight", "{conversion}", "The number of conversions that are currently in progress.")
	r.failures = r.Counter("conversions.failed", "{conversion}", "The number of conversions that have failed, by error kind.")

	return r
}

// moduleVersion returns the version of this module that is linked into the
// running binary, or "unknown" if it cannot be determined.
var moduleVersion = sync.OnceValue(func() string {
	const modulePath = "github.com/dogmatiq/serdeconv"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Path == modulePath {
		return info.Main.Version
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}

	return "unknown"
})
