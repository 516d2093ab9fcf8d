package domain

import (
	"github.com/allisson/hybridcrypt/internal/errors"
)

// Hybrid cipher error definitions.
//
// Each error carries a machine-readable code that is returned to API clients,
// and wraps a generic kind from internal/errors that decides the HTTP status.
var (
	// ErrInvalidKey indicates the key matrix is not square, out of bounds, or not invertible mod N.
	ErrInvalidKey = errors.NewCoded(errors.ErrInvalidInput, "invalid_key", "invalid key matrix")

	// ErrNotInvertible indicates a modular inverse does not exist. Past key validation this
	// is a defect, never a caller error.
	ErrNotInvertible = errors.NewCoded(errors.ErrInternal, "not_invertible", "value is not invertible")

	// ErrMalformedInput indicates key or message text failed to parse.
	ErrMalformedInput = errors.NewCoded(errors.ErrInvalidInput, "malformed_input", "malformed input")

	// ErrInvalidCharacter indicates a character outside the alphabet under the strict policy.
	ErrInvalidCharacter = errors.NewCoded(
		errors.ErrInvalidInput,
		"invalid_character",
		"character outside the cipher alphabet",
	)

	// ErrMalformedCiphertext indicates the ciphertext length is not a multiple of the block size.
	ErrMalformedCiphertext = errors.NewCoded(
		errors.ErrInvalidInput,
		"malformed_ciphertext",
		"ciphertext length is not a multiple of the block size",
	)

	// ErrKeyTooLarge indicates a serialized key value is not smaller than the public modulus.
	ErrKeyTooLarge = errors.NewCoded(
		errors.ErrInvalidInput,
		"key_too_large",
		"serialized key value exceeds the public modulus",
	)

	// ErrAmbiguousOrMissingKey indicates a decrypt request carries neither or both key paths.
	ErrAmbiguousOrMissingKey = errors.NewCoded(
		errors.ErrInvalidInput,
		"ambiguous_or_missing_key",
		"exactly one of key matrix or wrapped key with private key is required",
	)

	// ErrKeyGenerationExhausted indicates random sampling found no invertible matrix in time.
	ErrKeyGenerationExhausted = errors.NewCoded(
		errors.ErrInternal,
		"key_generation_exhausted",
		"no invertible key matrix found within the attempt limit",
	)
)
