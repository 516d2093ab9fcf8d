// Package dto provides data transfer objects for envelope HTTP request and response handling.
package dto

import (
	"strings"

	validation "github.com/jellydator/validation"

	hybridDomain "github.com/allisson/hybridcrypt/internal/hybrid/domain"
	customValidation "github.com/allisson/hybridcrypt/internal/validation"
)

// OpenEnvelopeRequest carries the receiver's key material for opening a stored envelope.
// Either KeyMatrix or PrivateKey is expected. The envelope's own wrapped key and message
// length are used unless MessageLength is set.
type OpenEnvelopeRequest struct {
	KeyMatrix     string `json:"keyMatrix,omitempty"`
	PrivateKey    string `json:"privateKey,omitempty"`
	MessageLength int    `json:"messageLength,omitempty"`
}

// Validate checks if the open request is valid.
func (r *OpenEnvelopeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.KeyMatrix,
			customValidation.KeyMatrixText,
		),
		validation.Field(&r.PrivateKey,
			customValidation.ExponentModulusPair,
		),
		validation.Field(&r.MessageLength,
			validation.Min(0),
		),
	)
}

// ToInput parses the request into a decrypt input without ciphertext.
func (r *OpenEnvelopeRequest) ToInput() (*hybridDomain.DecryptInput, error) {
	input := &hybridDomain.DecryptInput{MessageLength: r.MessageLength}

	var err error
	if strings.TrimSpace(r.KeyMatrix) != "" {
		if input.KeyMatrix, err = hybridDomain.ParseKeyMatrix(r.KeyMatrix); err != nil {
			return nil, err
		}
	}
	if r.PrivateKey != "" {
		if input.PrivateKey, err = hybridDomain.ParsePrivateKey(r.PrivateKey); err != nil {
			return nil, err
		}
	}
	return input, nil
}
