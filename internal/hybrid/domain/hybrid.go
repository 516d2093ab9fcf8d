package domain

import (
	"fmt"
	"time"
)

// TextPolicy decides how characters outside the alphabet are treated.
type TextPolicy string

const (
	// TextPolicyStrict rejects any character outside the alphabet.
	TextPolicyStrict TextPolicy = "strict"
	// TextPolicyPassthrough keeps other characters in place and leaves them unencrypted.
	TextPolicyPassthrough TextPolicy = "passthrough"
)

// DecryptMode identifies how the key matrix of a decrypt call is resolved.
type DecryptMode int

const (
	// DecryptModeDirect uses a key matrix shared out of band.
	DecryptModeDirect DecryptMode = iota + 1
	// DecryptModeWrapped unwraps the key matrix with a private key.
	DecryptModeWrapped
)

// EncryptInput holds the parameters of an encrypt call.
type EncryptInput struct {
	Message   string
	KeyMatrix KeyMatrix
	// PublicKey is optional. When set the key matrix is wrapped into the result.
	PublicKey *PublicKey
}

// DecryptInput holds the parameters of a decrypt call.
//
// Exactly one key path must be present: KeyMatrix alone, or WrappedKey together
// with PrivateKey.
type DecryptInput struct {
	Ciphertext string
	KeyMatrix  KeyMatrix
	WrappedKey WrappedKey
	PrivateKey *PrivateKey
	// MessageLength, when positive, trims the padded tail of the plaintext.
	MessageLength int
}

// Mode resolves the key path of the input.
//
// Returns ErrAmbiguousOrMissingKey when no path or both paths are present, or
// when the wrapped path is incomplete.
func (in *DecryptInput) Mode() (DecryptMode, error) {
	hasDirect := len(in.KeyMatrix) > 0
	hasWrapped := len(in.WrappedKey) > 0 || in.PrivateKey != nil

	switch {
	case hasDirect && hasWrapped:
		return 0, fmt.Errorf("%w: both key matrix and wrapped key supplied", ErrAmbiguousOrMissingKey)
	case hasDirect:
		return DecryptModeDirect, nil
	case len(in.WrappedKey) > 0 && in.PrivateKey != nil:
		return DecryptModeWrapped, nil
	case hasWrapped:
		return 0, fmt.Errorf("%w: wrapped key and private key must be supplied together", ErrAmbiguousOrMissingKey)
	default:
		return 0, fmt.Errorf("%w: no key supplied", ErrAmbiguousOrMissingKey)
	}
}

// EncryptionResult is the immutable output envelope of an encrypt call.
type EncryptionResult struct {
	Ciphertext string
	// WrappedKey is nil unless a public key was supplied.
	WrappedKey WrappedKey
	// MessageLength is the normalized message length before padding.
	MessageLength int
	CreatedAt     time.Time
}

// DecryptionResult is the output of a decrypt call.
type DecryptionResult struct {
	Plaintext string
}
