package usecase

import (
	"context"
	"math/big"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// HybridUseCase defines the two top-level hybrid cipher operations.
type HybridUseCase interface {
	// Encrypt validates the key matrix, encrypts the message and, when a public
	// key is supplied, wraps the key matrix into the result.
	Encrypt(ctx context.Context, input *domain.EncryptInput) (*domain.EncryptionResult, error)
	// Decrypt resolves the key matrix from exactly one key path and decrypts.
	Decrypt(ctx context.Context, input *domain.DecryptInput) (*domain.DecryptionResult, error)
}

// KeyUseCase defines explicit key material generation.
type KeyUseCase interface {
	GenerateKeyMatrix(ctx context.Context, dimension int) (domain.KeyMatrix, error)
	DeriveKeyPair(ctx context.Context, p, q, e *big.Int) (*domain.KeyPair, error)
	GenerateKeyPair(ctx context.Context, bits int, e *big.Int) (*domain.KeyPair, error)
}
