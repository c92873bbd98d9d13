package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OperationMetrics counts calls per operation and records their latency.
// Every data point carries "operation" and "outcome" (ok or error).
type OperationMetrics struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOperationMetrics registers the instruments on the global meter provider
// under scope, named "<prefix>.operations" and "<prefix>.operation.duration".
func NewOperationMetrics(scope, prefix string) (*OperationMetrics, error) {
	return NewOperationMetricsWith(otel.GetMeterProvider(), scope, prefix)
}

// NewOperationMetricsWith is NewOperationMetrics on an explicit provider.
func NewOperationMetricsWith(mp metric.MeterProvider, scope, prefix string) (*OperationMetrics, error) {
	meter := mp.Meter(scope)

	calls, err := meter.Int64Counter(prefix+".operations",
		metric.WithDescription("Number of operations by name and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: counter: %w", err)
	}
	duration, err := meter.Float64Histogram(prefix+".operation.duration",
		metric.WithDescription("Operation latency"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: histogram: %w", err)
	}
	return &OperationMetrics{calls: calls, duration: duration}, nil
}

// Record adds one call of op that started at start and ended with err.
// A nil receiver records nothing.
func (m *OperationMetrics) Record(ctx context.Context, op string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	)
	m.calls.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, attrs)
}
