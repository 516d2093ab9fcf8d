package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
	"github.com/allisson/hybridcrypt/internal/hybrid/http/dto"
	hybridUseCase "github.com/allisson/hybridcrypt/internal/hybrid/usecase"
	customValidation "github.com/allisson/hybridcrypt/internal/validation"
)

// KeyPairOptions selects derivation from P and Q (with E), or generation with Bits.
// Numbers are decimal strings so arbitrarily large primes can be passed.
type KeyPairOptions struct {
	P    string
	Q    string
	E    string
	Bits int
}

// RunGenerateKeyPair derives or generates an RSA key pair and prints both halves
// in "<exponent>,<modulus>" form.
func RunGenerateKeyPair(
	ctx context.Context,
	useCase hybridUseCase.KeyUseCase,
	streams IOTuple,
	opts KeyPairOptions,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	req := dto.KeyPairRequest{
		P:    json.Number(opts.P),
		Q:    json.Number(opts.Q),
		E:    json.Number(opts.E),
		Bits: opts.Bits,
	}
	if err := req.Validate(); err != nil {
		return customValidation.WrapValidationError(err)
	}

	var pair *domain.KeyPair
	var err error
	if req.Derive() {
		p, q, e := req.Primes()
		pair, err = useCase.DeriveKeyPair(ctx, p, q, e)
	} else {
		pair, err = useCase.GenerateKeyPair(ctx, req.Bits, req.Exponent())
	}
	if err != nil {
		return fmt.Errorf("failed to create key pair: %w", err)
	}

	response := dto.MapKeyPairResponse(pair)
	if format == formatJSON {
		return writeJSON(streams.Writer, response)
	}

	_, err = fmt.Fprintf(streams.Writer, "Public key: %s\nPrivate key: %s\n", response.PublicKey, response.PrivateKey)
	return err
}
