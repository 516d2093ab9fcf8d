package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// PublicKey is the wrapping half of an RSA key pair: exponent e and modulus m.
type PublicKey struct {
	Exponent *big.Int
	Modulus  *big.Int
}

// PrivateKey is the unwrapping half of an RSA key pair: exponent d and modulus m.
type PrivateKey struct {
	Exponent *big.Int
	Modulus  *big.Int
}

// KeyPair holds both halves of a key pair sharing one modulus.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// String renders the key in its wire form "<e>,<m>".
func (k PublicKey) String() string {
	return formatExponentModulus(k.Exponent, k.Modulus)
}

// String renders the key in its wire form "<d>,<m>".
func (k PrivateKey) String() string {
	return formatExponentModulus(k.Exponent, k.Modulus)
}

// ParsePublicKey parses "<e>,<m>" decimal text.
func ParsePublicKey(text string) (*PublicKey, error) {
	exponent, modulus, err := parseExponentModulus(text)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	return &PublicKey{Exponent: exponent, Modulus: modulus}, nil
}

// ParsePrivateKey parses "<d>,<m>" decimal text.
func ParsePrivateKey(text string) (*PrivateKey, error) {
	exponent, modulus, err := parseExponentModulus(text)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	return &PrivateKey{Exponent: exponent, Modulus: modulus}, nil
}

func formatExponentModulus(exponent, modulus *big.Int) string {
	return exponent.String() + "," + modulus.String()
}

func parseExponentModulus(text string) (*big.Int, *big.Int, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("%w: expected format '<exponent>,<modulus>'", ErrMalformedInput)
	}

	exponent, ok := new(big.Int).SetString(strings.TrimSpace(parts[0]), 10)
	if !ok || exponent.Sign() <= 0 {
		return nil, nil, fmt.Errorf("%w: exponent must be a positive integer", ErrMalformedInput)
	}

	modulus, ok := new(big.Int).SetString(strings.TrimSpace(parts[1]), 10)
	if !ok || modulus.Cmp(big.NewInt(1)) <= 0 {
		return nil, nil, fmt.Errorf("%w: modulus must be an integer greater than 1", ErrMalformedInput)
	}

	return exponent, modulus, nil
}
