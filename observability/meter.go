package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricRequests        = "baasic.client.requests"
	MetricRequestDuration = "baasic.client.request.duration"
	MetricRequestsActive  = "baasic.client.requests.active"
)

// Metrics holds the client request instruments.
type Metrics struct {
	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestActive   metric.Int64UpDownCounter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requestTotal, err := meter.Int64Counter(MetricRequests,
		metric.WithDescription("Total number of Baasic API requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRequests, err)
	}

	requestDuration, err := meter.Float64Histogram(MetricRequestDuration,
		metric.WithDescription("Duration of Baasic API requests"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricRequestDuration, err)
	}

	requestActive, err := meter.Int64UpDownCounter(MetricRequestsActive,
		metric.WithDescription("Number of in-flight Baasic API requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRequestsActive, err)
	}

	return &Metrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestActive:   requestActive,
	}, nil
}

// RecordRequestStart increments the active request count.
func (m *Metrics) RecordRequestStart(ctx context.Context) {
	m.requestActive.Add(ctx, 1)
}

// RecordRequestEnd decrements active requests and records the completed request.
// outcome is "ok" or an error classification.
func (m *Metrics) RecordRequestEnd(ctx context.Context, method string, status int, outcome string, duration time.Duration) {
	m.requestActive.Add(ctx, -1)
	m.requestTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.Int("status", status),
		attribute.String("outcome", outcome),
	))
	m.requestDuration.Record(ctx, float64(duration)/float64(time.Millisecond), metric.WithAttributes(
		attribute.String("method", method),
	))
}
