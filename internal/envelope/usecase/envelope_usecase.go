package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/hybridcrypt/internal/database"
	envelopeDomain "github.com/allisson/hybridcrypt/internal/envelope/domain"
	hybridDomain "github.com/allisson/hybridcrypt/internal/hybrid/domain"
	hybridUseCase "github.com/allisson/hybridcrypt/internal/hybrid/usecase"
)

// envelopeUseCase implements the EnvelopeUseCase interface.
type envelopeUseCase struct {
	txManager     database.TxManager
	envelopeRepo  EnvelopeRepository
	hybridUseCase hybridUseCase.HybridUseCase
}

// NewEnvelopeUseCase creates a new EnvelopeUseCase.
func NewEnvelopeUseCase(
	txManager database.TxManager,
	envelopeRepo EnvelopeRepository,
	hybridUseCase hybridUseCase.HybridUseCase,
) EnvelopeUseCase {
	return &envelopeUseCase{
		txManager:     txManager,
		envelopeRepo:  envelopeRepo,
		hybridUseCase: hybridUseCase,
	}
}

// Seal encrypts the input and persists the resulting envelope.
func (e *envelopeUseCase) Seal(
	ctx context.Context,
	input *hybridDomain.EncryptInput,
) (*envelopeDomain.Envelope, error) {
	result, err := e.hybridUseCase.Encrypt(ctx, input)
	if err != nil {
		return nil, err
	}

	envelope := envelopeDomain.NewEnvelope(result)

	err = e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return e.envelopeRepo.Create(txCtx, envelope)
	})
	if err != nil {
		return nil, err
	}

	return envelope, nil
}

// Get retrieves an envelope by id.
func (e *envelopeUseCase) Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.Envelope, error) {
	return e.envelopeRepo.Get(ctx, id)
}

// List retrieves envelopes newest first.
func (e *envelopeUseCase) List(ctx context.Context, offset, limit int) ([]*envelopeDomain.Envelope, error) {
	return e.envelopeRepo.List(ctx, offset, limit)
}

// Open decrypts a stored envelope with the key material in input.
func (e *envelopeUseCase) Open(
	ctx context.Context,
	id uuid.UUID,
	input *hybridDomain.DecryptInput,
) (*hybridDomain.DecryptionResult, error) {
	if input == nil {
		input = &hybridDomain.DecryptInput{}
	}

	envelope, err := e.envelopeRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Work on a copy so the caller's input is left untouched
	resolved := *input
	resolved.Ciphertext = envelope.Ciphertext
	if resolved.PrivateKey != nil && len(resolved.WrappedKey) == 0 {
		resolved.WrappedKey = envelope.WrappedKey
	}
	if resolved.MessageLength == 0 {
		resolved.MessageLength = envelope.MessageLength
	}

	return e.hybridUseCase.Decrypt(ctx, &resolved)
}

// Delete removes an envelope by id.
func (e *envelopeUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return e.envelopeRepo.Delete(txCtx, id)
	})
}
