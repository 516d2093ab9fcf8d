package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/hybridcrypt/internal/hybrid/http/dto"
	hybridUseCase "github.com/allisson/hybridcrypt/internal/hybrid/usecase"
	customValidation "github.com/allisson/hybridcrypt/internal/validation"
)

// RunEncrypt encrypts a message with a key matrix and optionally wraps the key
// under a public key. A message of "-" is read from the command input.
//
// The request goes through the same validation as POST /v1/hybrid/encrypt.
func RunEncrypt(
	ctx context.Context,
	useCase hybridUseCase.HybridUseCase,
	logger *slog.Logger,
	streams IOTuple,
	message string,
	keyMatrix string,
	publicKey string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	message, err := readValue(message, streams.Reader)
	if err != nil {
		return err
	}

	req := dto.EncryptRequest{
		Message:   message,
		KeyMatrix: keyMatrix,
		PublicKey: publicKey,
	}
	if err := req.Validate(); err != nil {
		return customValidation.WrapValidationError(err)
	}

	input, err := req.ToInput()
	if err != nil {
		return err
	}

	result, err := useCase.Encrypt(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to encrypt message: %w", err)
	}

	logger.Debug("message encrypted",
		slog.Int("message_length", result.MessageLength),
		slog.Bool("key_wrapped", result.WrappedKey != nil),
	)

	response := dto.MapEncryptResponse(result)
	if format == formatJSON {
		return writeJSON(streams.Writer, response)
	}
	return outputEncryptText(streams.Writer, response)
}

// outputEncryptText prints the ciphertext and, when present, the wrapped key.
func outputEncryptText(writer io.Writer, response dto.EncryptResponse) error {
	if _, err := fmt.Fprintf(writer, "Encrypted message: %s\n", response.EncryptedMessage); err != nil {
		return err
	}
	if response.EncryptedKey != "" {
		if _, err := fmt.Fprintf(writer, "Encrypted key: %s\n", response.EncryptedKey); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(writer, "Message length: %d\n", response.MessageLength)
	return err
}
