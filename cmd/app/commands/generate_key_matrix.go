package commands

import (
	"context"
	"fmt"

	"github.com/allisson/hybridcrypt/internal/hybrid/http/dto"
	hybridUseCase "github.com/allisson/hybridcrypt/internal/hybrid/usecase"
	customValidation "github.com/allisson/hybridcrypt/internal/validation"
)

// RunGenerateKeyMatrix prints a random invertible key matrix of the given dimension.
// Text output is the row-per-line form accepted by --key-matrix.
func RunGenerateKeyMatrix(
	ctx context.Context,
	useCase hybridUseCase.KeyUseCase,
	streams IOTuple,
	dimension int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	req := dto.GenerateKeyMatrixRequest{Dimension: dimension}
	if err := req.Validate(); err != nil {
		return customValidation.WrapValidationError(err)
	}

	key, err := useCase.GenerateKeyMatrix(ctx, req.Dimension)
	if err != nil {
		return fmt.Errorf("failed to generate key matrix: %w", err)
	}

	if format == formatJSON {
		return writeJSON(streams.Writer, dto.MapKeyMatrixResponse(key))
	}

	_, err = fmt.Fprintln(streams.Writer, key.String())
	return err
}
