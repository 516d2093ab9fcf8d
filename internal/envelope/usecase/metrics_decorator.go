package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	envelopeDomain "github.com/allisson/hybridcrypt/internal/envelope/domain"
	hybridDomain "github.com/allisson/hybridcrypt/internal/hybrid/domain"
	"github.com/allisson/hybridcrypt/internal/metrics"
)

// envelopeUseCaseWithMetrics decorates EnvelopeUseCase with metrics instrumentation.
type envelopeUseCaseWithMetrics struct {
	next    EnvelopeUseCase
	metrics metrics.BusinessMetrics
}

// NewEnvelopeUseCaseWithMetrics wraps an EnvelopeUseCase with metrics recording.
func NewEnvelopeUseCaseWithMetrics(useCase EnvelopeUseCase, m metrics.BusinessMetrics) EnvelopeUseCase {
	return &envelopeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Seal records metrics for envelope sealing.
func (e *envelopeUseCaseWithMetrics) Seal(
	ctx context.Context,
	input *hybridDomain.EncryptInput,
) (*envelopeDomain.Envelope, error) {
	start := time.Now()
	envelope, err := e.next.Seal(ctx, input)
	e.record(ctx, "envelope_seal", start, err)
	return envelope, err
}

// Get records metrics for envelope retrieval.
func (e *envelopeUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.Envelope, error) {
	start := time.Now()
	envelope, err := e.next.Get(ctx, id)
	e.record(ctx, "envelope_get", start, err)
	return envelope, err
}

// List records metrics for envelope listing.
func (e *envelopeUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*envelopeDomain.Envelope, error) {
	start := time.Now()
	envelopes, err := e.next.List(ctx, offset, limit)
	e.record(ctx, "envelope_list", start, err)
	return envelopes, err
}

// Open records metrics for envelope opening.
func (e *envelopeUseCaseWithMetrics) Open(
	ctx context.Context,
	id uuid.UUID,
	input *hybridDomain.DecryptInput,
) (*hybridDomain.DecryptionResult, error) {
	start := time.Now()
	result, err := e.next.Open(ctx, id, input)
	e.record(ctx, "envelope_open", start, err)
	return result, err
}

// Delete records metrics for envelope deletion.
func (e *envelopeUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := e.next.Delete(ctx, id)
	e.record(ctx, "envelope_delete", start, err)
	return err
}

func (e *envelopeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	e.metrics.RecordOperation(ctx, "envelopes", operation, status)
	e.metrics.RecordDuration(ctx, "envelopes", operation, time.Since(start), status)
}
