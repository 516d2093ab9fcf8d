package usecase

import (
	"context"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
	"github.com/allisson/hybridcrypt/internal/metrics"
)

// hybridUseCaseWithMetrics decorates HybridUseCase with metrics instrumentation.
type hybridUseCaseWithMetrics struct {
	next    HybridUseCase
	metrics metrics.BusinessMetrics
}

// NewHybridUseCaseWithMetrics wraps a HybridUseCase with metrics recording.
func NewHybridUseCaseWithMetrics(useCase HybridUseCase, m metrics.BusinessMetrics) HybridUseCase {
	return &hybridUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encrypt records metrics for hybrid encryption operations.
func (h *hybridUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	input *domain.EncryptInput,
) (*domain.EncryptionResult, error) {
	start := time.Now()
	result, err := h.next.Encrypt(ctx, input)
	record(ctx, h.metrics, "hybrid", "encrypt", start, err)
	if err == nil {
		h.metrics.RecordSymbols(ctx, "hybrid", "encrypt", result.MessageLength)
	}
	return result, err
}

// Decrypt records metrics for hybrid decryption operations.
func (h *hybridUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	input *domain.DecryptInput,
) (*domain.DecryptionResult, error) {
	start := time.Now()
	result, err := h.next.Decrypt(ctx, input)
	record(ctx, h.metrics, "hybrid", "decrypt", start, err)
	if err == nil {
		h.metrics.RecordSymbols(ctx, "hybrid", "decrypt", utf8.RuneCountInString(result.Plaintext))
	}
	return result, err
}

// keyUseCaseWithMetrics decorates KeyUseCase with metrics instrumentation.
type keyUseCaseWithMetrics struct {
	next    KeyUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyUseCaseWithMetrics wraps a KeyUseCase with metrics recording.
func NewKeyUseCaseWithMetrics(useCase KeyUseCase, m metrics.BusinessMetrics) KeyUseCase {
	return &keyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GenerateKeyMatrix records metrics for key matrix generation.
func (k *keyUseCaseWithMetrics) GenerateKeyMatrix(ctx context.Context, dimension int) (domain.KeyMatrix, error) {
	start := time.Now()
	key, err := k.next.GenerateKeyMatrix(ctx, dimension)
	record(ctx, k.metrics, "keys", "key_matrix_generate", start, err)
	return key, err
}

// DeriveKeyPair records metrics for key pair derivation.
func (k *keyUseCaseWithMetrics) DeriveKeyPair(ctx context.Context, p, q, e *big.Int) (*domain.KeyPair, error) {
	start := time.Now()
	pair, err := k.next.DeriveKeyPair(ctx, p, q, e)
	record(ctx, k.metrics, "keys", "key_pair_derive", start, err)
	return pair, err
}

// GenerateKeyPair records metrics for key pair generation.
func (k *keyUseCaseWithMetrics) GenerateKeyPair(ctx context.Context, bits int, e *big.Int) (*domain.KeyPair, error) {
	start := time.Now()
	pair, err := k.next.GenerateKeyPair(ctx, bits, e)
	record(ctx, k.metrics, "keys", "key_pair_generate", start, err)
	return pair, err
}

func record(ctx context.Context, m metrics.BusinessMetrics, domainName, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	m.RecordOperation(ctx, domainName, operation, status)
	m.RecordDuration(ctx, domainName, operation, time.Since(start), status)
}
