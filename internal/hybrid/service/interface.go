// Package service implements the hybrid cipher primitives: the alphabet codec,
// modular matrix arithmetic, the Hill block cipher, and the RSA key wrap.
//
// All services are stateless after construction and safe for concurrent use.
package service

import (
	"math/big"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// KeyValidator is the single gate every key matrix passes before use.
type KeyValidator interface {
	// Validate returns nil or an error matching domain.ErrInvalidKey.
	Validate(key domain.KeyMatrix) error
}

// BlockCipher encrypts and decrypts text with a key matrix.
type BlockCipher interface {
	EncryptBlock(block []int, key domain.KeyMatrix) ([]int, error)
	DecryptBlock(block []int, key domain.KeyMatrix) ([]int, error)
	Encrypt(message string, key domain.KeyMatrix) (string, error)
	Decrypt(ciphertext string, key domain.KeyMatrix) (string, error)
}

// KeyWrapper transports a key matrix under an RSA key pair.
type KeyWrapper interface {
	Wrap(key domain.KeyMatrix, publicKey domain.PublicKey) (domain.WrappedKey, error)
	Unwrap(wrapped domain.WrappedKey, privateKey domain.PrivateKey) (domain.KeyMatrix, error)
}

// KeyGenerator produces key material on explicit request.
type KeyGenerator interface {
	GenerateKeyMatrix(dimension int) (domain.KeyMatrix, error)
	DeriveKeyPair(p, q, e *big.Int) (*domain.KeyPair, error)
	GenerateKeyPair(bits int, e *big.Int) (*domain.KeyPair, error)
}
