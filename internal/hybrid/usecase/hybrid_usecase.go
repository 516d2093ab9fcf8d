// Package usecase implements the hybrid cipher orchestration.
//
// The orchestrator composes the key validator, the Hill block cipher and the RSA
// key wrap into encrypt and decrypt operations. Every call is a single
// self-contained transaction: no state is kept between calls and every failure
// is returned as an error value carrying a machine-readable code.
//
// # Key resolution
//
// Decrypt accepts exactly one of two key paths:
//
//	DirectKey:  KeyMatrix                 -> validate -> decrypt
//	WrappedKey: WrappedKey + PrivateKey   -> unwrap (validates) -> decrypt
//
// Supplying neither or both fails with domain.ErrAmbiguousOrMissingKey.
//
// # Padding
//
// Encryption pads the message with the fill symbol to a multiple of the block
// size. The padding is not self-describing, so the result carries the original
// message length. Decrypt trims the padded tail only when that length is
// passed back; fill symbols are never stripped heuristically.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	apperrors "github.com/allisson/hybridcrypt/internal/errors"
	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
	"github.com/allisson/hybridcrypt/internal/hybrid/service"
)

// hybridUseCase implements HybridUseCase.
type hybridUseCase struct {
	validator        service.KeyValidator
	cipher           service.BlockCipher
	wrapper          service.KeyWrapper
	maxMessageLength int
	logger           *slog.Logger
}

// NewHybridUseCase creates the hybrid orchestrator. A maxMessageLength of 0
// disables the message size limit.
func NewHybridUseCase(
	validator service.KeyValidator,
	cipher service.BlockCipher,
	wrapper service.KeyWrapper,
	maxMessageLength int,
	logger *slog.Logger,
) HybridUseCase {
	return &hybridUseCase{
		validator:        validator,
		cipher:           cipher,
		wrapper:          wrapper,
		maxMessageLength: maxMessageLength,
		logger:           logger,
	}
}

// Encrypt validates the key, encrypts the message and wraps the key when a
// public key is present. No ciphertext is produced for an invalid key.
func (h *hybridUseCase) Encrypt(
	ctx context.Context,
	input *domain.EncryptInput,
) (*domain.EncryptionResult, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: encrypt input is required", domain.ErrMalformedInput)
	}
	if err := h.checkLength(input.Message); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(input.KeyMatrix); err != nil {
		return nil, err
	}

	ciphertext, err := h.cipher.Encrypt(input.Message, input.KeyMatrix)
	if err != nil {
		return nil, err
	}

	var wrapped domain.WrappedKey
	if input.PublicKey != nil {
		wrapped, err = h.wrapper.Wrap(input.KeyMatrix, *input.PublicKey)
		if err != nil {
			return nil, err
		}
	}

	return &domain.EncryptionResult{
		Ciphertext:    ciphertext,
		WrappedKey:    wrapped,
		MessageLength: utf8.RuneCountInString(input.Message),
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Decrypt resolves the key matrix and decrypts the ciphertext.
func (h *hybridUseCase) Decrypt(
	ctx context.Context,
	input *domain.DecryptInput,
) (*domain.DecryptionResult, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: decrypt input is required", domain.ErrMalformedInput)
	}
	if input.MessageLength < 0 {
		return nil, fmt.Errorf("%w: message length must not be negative", domain.ErrMalformedInput)
	}
	if err := h.checkLength(input.Ciphertext); err != nil {
		return nil, err
	}

	key, err := h.resolveKey(input)
	if err != nil {
		return nil, err
	}

	plaintext, err := h.cipher.Decrypt(input.Ciphertext, key)
	if err != nil {
		if apperrors.Is(err, domain.ErrNotInvertible) {
			h.logger.ErrorContext(ctx, "validated key matrix is not invertible", slog.Any("error", err))
		}
		return nil, err
	}

	if input.MessageLength > 0 {
		runes := []rune(plaintext)
		if input.MessageLength > len(runes) {
			return nil, fmt.Errorf(
				"%w: message length %d exceeds decrypted length %d",
				domain.ErrMalformedInput,
				input.MessageLength,
				len(runes),
			)
		}
		plaintext = string(runes[:input.MessageLength])
	}

	return &domain.DecryptionResult{Plaintext: plaintext}, nil
}

// resolveKey returns the validated key matrix for the selected key path.
func (h *hybridUseCase) resolveKey(input *domain.DecryptInput) (domain.KeyMatrix, error) {
	mode, err := input.Mode()
	if err != nil {
		return nil, err
	}

	if mode == domain.DecryptModeWrapped {
		return h.wrapper.Unwrap(input.WrappedKey, *input.PrivateKey)
	}

	if err := h.validator.Validate(input.KeyMatrix); err != nil {
		return nil, err
	}
	return input.KeyMatrix, nil
}

func (h *hybridUseCase) checkLength(text string) error {
	if h.maxMessageLength > 0 && utf8.RuneCountInString(text) > h.maxMessageLength {
		return fmt.Errorf("%w: text exceeds %d characters", domain.ErrMalformedInput, h.maxMessageLength)
	}
	return nil
}
