// Package usecase defines the interfaces and implementations for the envelope store.
// Envelopes persist hybrid encryption results so a receiver can open them later with
// the shared key matrix or with the private key matching the wrapped key.
package usecase

import (
	"context"

	"github.com/google/uuid"

	envelopeDomain "github.com/allisson/hybridcrypt/internal/envelope/domain"
	hybridDomain "github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// EnvelopeRepository defines the interface for Envelope persistence operations.
type EnvelopeRepository interface {
	Create(ctx context.Context, envelope *envelopeDomain.Envelope) error
	Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.Envelope, error)
	List(ctx context.Context, offset, limit int) ([]*envelopeDomain.Envelope, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EnvelopeUseCase defines the interface for envelope store business logic.
type EnvelopeUseCase interface {
	// Seal encrypts the input and persists the result.
	Seal(ctx context.Context, input *hybridDomain.EncryptInput) (*envelopeDomain.Envelope, error)
	Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.Envelope, error)
	List(ctx context.Context, offset, limit int) ([]*envelopeDomain.Envelope, error)
	// Open decrypts a stored envelope. The ciphertext comes from the envelope. When only
	// a private key is given the stored wrapped key is used, and the stored message length
	// applies unless the input sets one.
	Open(
		ctx context.Context,
		id uuid.UUID,
		input *hybridDomain.DecryptInput,
	) (*hybridDomain.DecryptionResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
