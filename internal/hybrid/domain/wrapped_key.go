package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// WrappedKey is the transport form of a KeyMatrix: one RSA-encrypted value per
// matrix entry, in row-major order.
type WrappedKey []*big.Int

// String renders the canonical wire form: decimal values joined by ",".
func (w WrappedKey) String() string {
	values := make([]string, len(w))
	for i, v := range w {
		values[i] = v.String()
	}
	return strings.Join(values, ",")
}

// MaxWrappedValues is the entry count of the largest wrappable key.
const MaxWrappedValues = MaxDimension * MaxDimension

// ParseWrappedKey parses the canonical wire form of a wrapped key.
// More than MaxWrappedValues entries is ErrMalformedInput.
func ParseWrappedKey(text string) (WrappedKey, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: wrapped key is empty", ErrMalformedInput)
	}
	if count := strings.Count(text, ",") + 1; count > MaxWrappedValues {
		return nil, fmt.Errorf("%w: wrapped key has %d values, at most %d allowed", ErrMalformedInput, count, MaxWrappedValues)
	}

	parts := strings.Split(text, ",")
	wrapped := make(WrappedKey, len(parts))
	for i, part := range parts {
		v, ok := new(big.Int).SetString(strings.TrimSpace(part), 10)
		if !ok || v.Sign() < 0 {
			return nil, fmt.Errorf("%w: wrapped value %q is not a non-negative integer", ErrMalformedInput, part)
		}
		wrapped[i] = v
	}
	return wrapped, nil
}
