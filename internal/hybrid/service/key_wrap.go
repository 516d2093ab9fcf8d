package service

import (
	"fmt"
	"math/big"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

type keyWrapper struct {
	validator KeyValidator
}

// NewKeyWrapper creates the RSA key wrap. Unwrapped keys are checked by validator.
func NewKeyWrapper(validator KeyValidator) KeyWrapper {
	return &keyWrapper{validator: validator}
}

// Wrap encrypts each row-major key entry v as v^e mod m.
//
// Entries are wrapped one by one so small moduli work as long as m > v.
// Returns ErrKeyTooLarge when an entry is not smaller than m.
func (w *keyWrapper) Wrap(key domain.KeyMatrix, publicKey domain.PublicKey) (domain.WrappedKey, error) {
	values := key.Flatten()
	wrapped := make(domain.WrappedKey, len(values))
	for i, v := range values {
		value := big.NewInt(int64(v))
		if value.Cmp(publicKey.Modulus) >= 0 {
			return nil, fmt.Errorf(
				"%w: entry %d is not smaller than modulus %s",
				domain.ErrKeyTooLarge,
				v,
				publicKey.Modulus,
			)
		}
		wrapped[i] = ModExp(value, publicKey.Exponent, publicKey.Modulus)
	}
	return wrapped, nil
}

// Unwrap decrypts each value as w^d mod m, rebuilds the matrix and validates it.
//
// The entry count is checked against the key dimension bounds before any
// exponentiation. Returns ErrMalformedInput for values outside [0, m) and
// ErrInvalidKey when the recovered values do not form a valid key, which
// signals a wrong private key or tampering.
func (w *keyWrapper) Unwrap(wrapped domain.WrappedKey, privateKey domain.PrivateKey) (domain.KeyMatrix, error) {
	if _, err := domain.KeyDimension(len(wrapped)); err != nil {
		return nil, err
	}

	values := make([]int, len(wrapped))
	modulus := big.NewInt(int64(domain.Modulus))
	for i, c := range wrapped {
		if c == nil || c.Sign() < 0 || c.Cmp(privateKey.Modulus) >= 0 {
			return nil, fmt.Errorf("%w: wrapped value %d is outside [0, modulus)", domain.ErrMalformedInput, i)
		}
		v := ModExp(c, privateKey.Exponent, privateKey.Modulus)
		if v.Cmp(modulus) >= 0 {
			return nil, fmt.Errorf("%w: unwrapped value %d is not a residue mod %d", domain.ErrInvalidKey, i, domain.Modulus)
		}
		values[i] = int(v.Int64())
	}

	key, err := domain.KeyMatrixFromValues(values)
	if err != nil {
		return nil, err
	}
	if err := w.validator.Validate(key); err != nil {
		return nil, err
	}
	return key, nil
}

// ModExp returns base^exp mod m using right-to-left binary exponentiation.
// exp must be non-negative and m positive.
func ModExp(base, exp, m *big.Int) *big.Int {
	one := big.NewInt(1)
	if m.Cmp(one) == 0 {
		return new(big.Int)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, m)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
		b.Mul(b, b)
		b.Mod(b, m)
	}
	return result
}
