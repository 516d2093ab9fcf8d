package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Operation outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BusinessMetrics records cipher, key and envelope operations.
//
// domain is one of "hybrid", "keys" or "envelopes". operation names the use
// case method in snake case, e.g. "encrypt" or "key_pair_derive".
type BusinessMetrics interface {
	RecordOperation(ctx context.Context, domain, operation, status string)
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
	// RecordSymbols observes the normalized message length of a cipher operation.
	RecordSymbols(ctx context.Context, domain, operation string, symbols int)
}

// symbolBuckets span a single block up to the default message length limit.
var symbolBuckets = []float64{16, 64, 256, 1024, 4096, 16384, 65536}

type businessMetrics struct {
	operations metric.Int64Counter
	duration   metric.Float64Histogram
	symbols    metric.Int64Histogram
}

// NewBusinessMetrics creates the operation instruments under namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, opErr := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	duration, durErr := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	symbols, symErr := meter.Int64Histogram(
		fmt.Sprintf("%s_message_symbols", namespace),
		metric.WithDescription("Number of symbols processed by cipher operations"),
		metric.WithUnit("{symbol}"),
		metric.WithExplicitBucketBoundaries(symbolBuckets...),
	)
	if err := errors.Join(opErr, durErr, symErr); err != nil {
		return nil, fmt.Errorf("failed to create business instruments: %w", err)
	}

	return &businessMetrics{operations: operations, duration: duration, symbols: symbols}, nil
}

func operationAttributes(domain, operation string, extra ...attribute.KeyValue) metric.MeasurementOption {
	attrs := append([]attribute.KeyValue{
		attribute.String("domain", domain),
		attribute.String("operation", operation),
	}, extra...)
	return metric.WithAttributes(attrs...)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, operationAttributes(domain, operation, attribute.String("status", status)))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.duration.Record(ctx, duration.Seconds(),
		operationAttributes(domain, operation, attribute.String("status", status)))
}

func (b *businessMetrics) RecordSymbols(ctx context.Context, domain, operation string, symbols int) {
	b.symbols.Record(ctx, int64(symbols), operationAttributes(domain, operation))
}

// NoOpBusinessMetrics discards every observation. It is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics returns a BusinessMetrics that records nothing.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return NoOpBusinessMetrics{}
}

func (NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}

func (NoOpBusinessMetrics) RecordSymbols(context.Context, string, string, int) {}
