package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Instrumentation opens spans and records metrics for outgoing requests.
type Instrumentation struct {
	tracer  trace.Tracer
	metrics *Metrics
}

// Option configures an Instrumentation.
type Option func(*options)

type options struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithTracerProvider sets the tracer provider. Defaults to the otel global.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the meter provider. Defaults to the otel global.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// New creates an Instrumentation.
func New(opts ...Option) (*Instrumentation, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}

	metrics, err := NewMetrics(o.meterProvider.Meter(ScopeName))
	if err != nil {
		return nil, err
	}
	return &Instrumentation{
		tracer:  o.tracerProvider.Tracer(ScopeName),
		metrics: metrics,
	}, nil
}

// Noop returns an Instrumentation that records nothing.
func Noop() *Instrumentation {
	inst, _ := New(
		WithTracerProvider(tracenoop.NewTracerProvider()),
		WithMeterProvider(metricnoop.NewMeterProvider()),
	)
	return inst
}

// Call tracks one in-flight request.
type Call struct {
	ctx     context.Context
	span    trace.Span
	metrics *Metrics
	method  string
	start   time.Time
}

// Start opens a client span for the request and marks it in flight.
func (i *Instrumentation) Start(ctx context.Context, method, url string) (context.Context, *Call) {
	ctx, span := i.tracer.Start(ctx, SpanPrefix+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrMethod, method),
			attribute.String(AttrURL, url),
		),
	)
	i.metrics.RecordRequestStart(ctx)
	return ctx, &Call{ctx: ctx, span: span, metrics: i.metrics, method: method, start: time.Now()}
}

// SetRequestID tags the span with the request ID header value.
func (c *Call) SetRequestID(id string) {
	c.span.SetAttributes(attribute.String(AttrRequestID, id))
}

// End closes the span and records the request metrics. status is 0 when no
// response was received; outcome classifies err ("ok" when err is nil).
func (c *Call) End(status int, outcome string, err error) {
	if status > 0 {
		c.span.SetAttributes(attribute.Int(AttrStatus, status))
	}
	if err != nil {
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, err.Error())
		c.span.SetAttributes(attribute.String(AttrErrorCode, outcome))
	} else {
		outcome = "ok"
	}
	c.metrics.RecordRequestEnd(c.ctx, c.method, status, outcome, time.Since(c.start))
	c.span.End()
}
