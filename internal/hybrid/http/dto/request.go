// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
	customValidation "github.com/allisson/hybridcrypt/internal/validation"
)

// EncryptedKey is the wire form of a wrapped key. It decodes from either the
// canonical comma-separated string or a JSON array of integers, and always holds
// the canonical string.
type EncryptedKey string

// UnmarshalJSON normalizes a string or an integer array to the canonical form.
func (k *EncryptedKey) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*k = EncryptedKey(text)
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var values []json.Number
	if err := decoder.Decode(&values); err != nil {
		return errors.New("encryptedKey must be a string or an array of integers")
	}
	if len(values) == 0 {
		return errors.New("encryptedKey must not be an empty array")
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	*k = EncryptedKey(strings.Join(parts, ","))
	return nil
}

// EncryptRequest contains the parameters for hybrid encryption.
type EncryptRequest struct {
	Message   string `json:"message"`
	KeyMatrix string `json:"keyMatrix"`           // Rows by newline, entries by whitespace
	PublicKey string `json:"publicKey,omitempty"` // Format: "<e>,<m>"
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Message,
			validation.Required,
		),
		validation.Field(&r.KeyMatrix,
			validation.Required,
			customValidation.NotBlank,
			customValidation.KeyMatrixText,
		),
		validation.Field(&r.PublicKey,
			customValidation.ExponentModulusPair,
		),
	)
}

// ToInput parses the request into the domain encrypt input.
func (r *EncryptRequest) ToInput() (*domain.EncryptInput, error) {
	key, err := domain.ParseKeyMatrix(r.KeyMatrix)
	if err != nil {
		return nil, err
	}

	input := &domain.EncryptInput{Message: r.Message, KeyMatrix: key}
	if r.PublicKey != "" {
		input.PublicKey, err = domain.ParsePublicKey(r.PublicKey)
		if err != nil {
			return nil, err
		}
	}
	return input, nil
}

// DecryptRequest contains the parameters for hybrid decryption.
//
// Exactly one key path is expected: KeyMatrix, or EncryptedKey with PrivateKey.
// The check is left to the use case so the error carries its machine-readable code.
type DecryptRequest struct {
	EncryptedMessage string       `json:"encryptedMessage"`
	KeyMatrix        string       `json:"keyMatrix,omitempty"`
	EncryptedKey     EncryptedKey `json:"encryptedKey,omitempty"`
	PrivateKey       string       `json:"privateKey,omitempty"` // Format: "<d>,<m>"
	MessageLength    int          `json:"messageLength,omitempty"`
}

// Validate checks if the decrypt request is valid.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EncryptedMessage,
			validation.Required,
			customValidation.NotBlank,
		),
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

// ToInput parses the request into the domain decrypt input.
func (r *DecryptRequest) ToInput() (*domain.DecryptInput, error) {
	input := &domain.DecryptInput{
		Ciphertext:    r.EncryptedMessage,
		MessageLength: r.MessageLength,
	}

	var err error
	if strings.TrimSpace(r.KeyMatrix) != "" {
		if input.KeyMatrix, err = domain.ParseKeyMatrix(r.KeyMatrix); err != nil {
			return nil, err
		}
	}
	if r.EncryptedKey != "" {
		if input.WrappedKey, err = domain.ParseWrappedKey(string(r.EncryptedKey)); err != nil {
			return nil, err
		}
	}
	if r.PrivateKey != "" {
		if input.PrivateKey, err = domain.ParsePrivateKey(r.PrivateKey); err != nil {
			return nil, err
		}
	}
	return input, nil
}

// GenerateKeyMatrixRequest contains the parameters for random key matrix generation.
type GenerateKeyMatrixRequest struct {
	Dimension int `json:"dimension"`
}

// Validate checks if the key matrix generation request is valid.
func (r *GenerateKeyMatrixRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Dimension,
			validation.Required,
			validation.Min(domain.MinDimension),
			validation.Max(domain.MaxDimension),
		),
	)
}

// KeyPairRequest asks for a key pair, either derived from primes p, q and the
// public exponent e, or generated with a modulus of Bits bits. When generating,
// E is optional and defaults to 65537.
type KeyPairRequest struct {
	P    json.Number `json:"p,omitempty"`
	Q    json.Number `json:"q,omitempty"`
	E    json.Number `json:"e,omitempty"`
	Bits int         `json:"bits,omitempty"`
}

// Validate checks if the key pair request is valid.
func (r *KeyPairRequest) Validate() error {
	derive := r.Derive()
	return validation.ValidateStruct(r,
		validation.Field(&r.P,
			validation.When(r.Bits == 0, validation.Required),
			validation.By(positiveInteger),
		),
		validation.Field(&r.Q,
			validation.When(r.Bits == 0, validation.Required),
			validation.By(positiveInteger),
		),
		validation.Field(&r.E,
			validation.When(derive, validation.Required),
			validation.By(positiveInteger),
		),
		validation.Field(&r.Bits,
			validation.When(derive, validation.Empty.Error("must be blank when p and q are given")),
		),
	)
}

// Derive reports whether the request asks for a key pair derived from p and q.
func (r *KeyPairRequest) Derive() bool {
	return r.P != "" || r.Q != ""
}

// Primes returns p, q and e as integers. e is nil when omitted.
func (r *KeyPairRequest) Primes() (p, q, e *big.Int) {
	return toBigInt(r.P), toBigInt(r.Q), toBigInt(r.E)
}

// Exponent returns e, or nil when omitted.
func (r *KeyPairRequest) Exponent() *big.Int {
	return toBigInt(r.E)
}

func toBigInt(n json.Number) *big.Int {
	if n == "" {
		return nil
	}
	v, ok := new(big.Int).SetString(n.String(), 10)
	if !ok {
		return nil
	}
	return v
}

func positiveInteger(value interface{}) error {
	n, _ := value.(json.Number)
	if n == "" {
		return nil
	}
	v, ok := new(big.Int).SetString(n.String(), 10)
	if !ok || v.Sign() <= 0 {
		return validation.NewError("validation_positive_integer", "must be a positive integer")
	}
	return nil
}
