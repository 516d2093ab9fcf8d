package usecase

import (
	"context"
	"math/big"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
	"github.com/allisson/hybridcrypt/internal/hybrid/service"
)

// keyUseCase implements KeyUseCase. Key material is only ever produced on
// explicit request; nothing here is called implicitly by encrypt or decrypt.
type keyUseCase struct {
	generator service.KeyGenerator
}

// NewKeyUseCase creates a KeyUseCase backed by generator.
func NewKeyUseCase(generator service.KeyGenerator) KeyUseCase {
	return &keyUseCase{generator: generator}
}

// GenerateKeyMatrix returns a random invertible key matrix of the given dimension.
func (k *keyUseCase) GenerateKeyMatrix(ctx context.Context, dimension int) (domain.KeyMatrix, error) {
	return k.generator.GenerateKeyMatrix(dimension)
}

// DeriveKeyPair derives a key pair from primes p, q and public exponent e.
func (k *keyUseCase) DeriveKeyPair(ctx context.Context, p, q, e *big.Int) (*domain.KeyPair, error) {
	return k.generator.DeriveKeyPair(p, q, e)
}

// GenerateKeyPair generates a key pair with a modulus of the given bit size.
func (k *keyUseCase) GenerateKeyPair(ctx context.Context, bits int, e *big.Int) (*domain.KeyPair, error) {
	return k.generator.GenerateKeyPair(bits, e)
}
