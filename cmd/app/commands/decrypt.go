package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/hybridcrypt/internal/hybrid/http/dto"
	hybridUseCase "github.com/allisson/hybridcrypt/internal/hybrid/usecase"
	customValidation "github.com/allisson/hybridcrypt/internal/validation"
)

// DecryptOptions carries the key path of a decrypt command. Either KeyMatrix, or
// EncryptedKey together with PrivateKey, must be set.
type DecryptOptions struct {
	EncryptedMessage string
	KeyMatrix        string
	EncryptedKey     string
	PrivateKey       string
	MessageLength    int
}

// RunDecrypt decrypts a message. An encrypted message of "-" is read from the command input.
func RunDecrypt(
	ctx context.Context,
	useCase hybridUseCase.HybridUseCase,
	logger *slog.Logger,
	streams IOTuple,
	opts DecryptOptions,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	ciphertext, err := readValue(opts.EncryptedMessage, streams.Reader)
	if err != nil {
		return err
	}

	req := dto.DecryptRequest{
		EncryptedMessage: ciphertext,
		KeyMatrix:        opts.KeyMatrix,
		EncryptedKey:     dto.EncryptedKey(opts.EncryptedKey),
		PrivateKey:       opts.PrivateKey,
		MessageLength:    opts.MessageLength,
	}
	if err := req.Validate(); err != nil {
		return customValidation.WrapValidationError(err)
	}

	input, err := req.ToInput()
	if err != nil {
		return err
	}

	result, err := useCase.Decrypt(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to decrypt message: %w", err)
	}

	logger.Debug("message decrypted", slog.Bool("key_wrapped", input.WrappedKey != nil))

	if format == formatJSON {
		return writeJSON(streams.Writer, dto.DecryptResponse{DecryptedMessage: result.Plaintext})
	}

	_, err = fmt.Fprintln(streams.Writer, result.Plaintext)
	return err
}
