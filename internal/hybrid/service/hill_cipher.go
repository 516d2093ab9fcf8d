package service

import (
	"fmt"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

type hillCipher struct {
	codec *Codec
}

// NewHillCipher creates the matrix block cipher. Keys must have passed the KeyValidator.
func NewHillCipher(codec *Codec) BlockCipher {
	return &hillCipher{codec: codec}
}

// EncryptBlock returns key.block mod N for the column vector block.
func (h *hillCipher) EncryptBlock(block []int, key domain.KeyMatrix) ([]int, error) {
	return MultiplyVector(key, block, domain.Modulus)
}

// DecryptBlock returns inverse(key).block mod N.
//
// ErrNotInvertible here means an unvalidated key reached the engine.
func (h *hillCipher) DecryptBlock(block []int, key domain.KeyMatrix) ([]int, error) {
	inverse, err := Inverse(key, domain.Modulus)
	if err != nil {
		return nil, err
	}
	return MultiplyVector(inverse, block, domain.Modulus)
}

// Encrypt normalizes and pads message to a multiple of the key dimension, then
// encrypts it block by block.
func (h *hillCipher) Encrypt(message string, key domain.KeyMatrix) (string, error) {
	normalized, err := h.codec.Normalize(message)
	if err != nil {
		return "", err
	}

	text := h.codec.split(normalized)
	if len(text.indices) == 0 {
		return "", fmt.Errorf("%w: message has no alphabet symbols", domain.ErrMalformedInput)
	}

	n := key.Dimension()
	padded := h.codec.Pad(text.indices, n)
	out := make([]int, 0, len(padded))
	for start := 0; start < len(padded); start += n {
		block, err := h.EncryptBlock(padded[start:start+n], key)
		if err != nil {
			return "", err
		}
		out = append(out, block...)
	}

	return text.render(out)
}

// Decrypt requires the number of alphabet symbols in ciphertext to be a multiple
// of the key dimension. Fill symbols are left in place.
func (h *hillCipher) Decrypt(ciphertext string, key domain.KeyMatrix) (string, error) {
	normalized, err := h.codec.Normalize(ciphertext)
	if err != nil {
		return "", err
	}

	text := h.codec.split(normalized)
	n := key.Dimension()
	if len(text.indices) == 0 || len(text.indices)%n != 0 {
		return "", fmt.Errorf(
			"%w: %d symbols for block size %d",
			domain.ErrMalformedCiphertext,
			len(text.indices),
			n,
		)
	}

	// The inverse is computed once per message rather than once per block.
	inverse, err := Inverse(key, domain.Modulus)
	if err != nil {
		return "", err
	}

	out := make([]int, 0, len(text.indices))
	for start := 0; start < len(text.indices); start += n {
		block, err := MultiplyVector(inverse, text.indices[start:start+n], domain.Modulus)
		if err != nil {
			return "", err
		}
		out = append(out, block...)
	}

	return text.render(out)
}
