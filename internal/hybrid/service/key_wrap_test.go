package service

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

func wrappedOf(values ...int64) domain.WrappedKey {
	wrapped := make(domain.WrappedKey, len(values))
	for i, v := range values {
		wrapped[i] = big.NewInt(v)
	}
	return wrapped
}

// smallKeyPair derives the demonstration pair p=3, q=11, e=3 and checks that
// e.d = 1 mod lcm(p-1, q-1) independently of the generator.
func smallKeyPair(t *testing.T) *domain.KeyPair {
	t.Helper()
	pair, err := newKeyGenerator(NewKeyValidator(), nil, 1).DeriveKeyPair(big.NewInt(3), big.NewInt(11), big.NewInt(3))
	require.NoError(t, err)

	lambda := big.NewInt(10)
	product := new(big.Int).Mul(pair.Public.Exponent, pair.Private.Exponent)
	require.Equal(t, int64(1), new(big.Int).Mod(product, lambda).Int64())
	return pair
}

func TestModExp(t *testing.T) {
	tests := []struct {
		base, exp, mod, expected int64
	}{
		{base: 4, exp: 13, mod: 497, expected: 445},
		{base: 2, exp: 0, mod: 7, expected: 1},
		{base: 0, exp: 5, mod: 7, expected: 0},
		{base: 8, exp: 7, mod: 33, expected: 2},
		{base: 10, exp: 3, mod: 1, expected: 0},
		{base: -3, exp: 3, mod: 33, expected: 6},
	}

	for _, tt := range tests {
		result := ModExp(big.NewInt(tt.base), big.NewInt(tt.exp), big.NewInt(tt.mod))
		assert.Equal(t, tt.expected, result.Int64(), "%d^%d mod %d", tt.base, tt.exp, tt.mod)
	}

	t.Run("agrees with big.Int.Exp", func(t *testing.T) {
		m, _ := new(big.Int).SetString("340282366920938463463374607431768211297", 10)
		base := big.NewInt(123456789)
		exp := big.NewInt(65537)
		assert.Equal(t, new(big.Int).Exp(base, exp, m), ModExp(base, exp, m))
	})
}

func TestKeyWrapper_Wrap(t *testing.T) {
	wrapper := NewKeyWrapper(NewKeyValidator())
	pair := smallKeyPair(t)

	t.Run("Success_PerEntry", func(t *testing.T) {
		wrapped, err := wrapper.Wrap(key2x2, pair.Public)

		require.NoError(t, err)
		assert.Equal(t, "8,27,1,31", wrapped.String())
	})

	t.Run("Error_KeyTooLarge", func(t *testing.T) {
		small := domain.PublicKey{Exponent: big.NewInt(3), Modulus: big.NewInt(15)}

		wrapped, err := wrapper.Wrap(key3x3, small)

		assert.Nil(t, wrapped)
		assert.ErrorIs(t, err, domain.ErrKeyTooLarge)
	})
}

func TestKeyWrapper_Unwrap(t *testing.T) {
	wrapper := NewKeyWrapper(NewKeyValidator())
	pair := smallKeyPair(t)

	t.Run("Success_RoundTrip", func(t *testing.T) {
		for _, key := range []domain.KeyMatrix{key2x2, key3x3, identity(4)} {
			wrapped, err := wrapper.Wrap(key, pair.Public)
			require.NoError(t, err)

			unwrapped, err := wrapper.Unwrap(wrapped, pair.Private)
			require.NoError(t, err)
			assert.Equal(t, key, unwrapped)
		}
	})

	t.Run("Success_EveryResidue", func(t *testing.T) {
		for v := int64(0); v < int64(domain.Modulus); v++ {
			c := ModExp(big.NewInt(v), pair.Public.Exponent, pair.Public.Modulus)
			assert.Equal(t, v, ModExp(c, pair.Private.Exponent, pair.Private.Modulus).Int64())
		}
	})

	t.Run("Error_WrongPrivateKey", func(t *testing.T) {
		wrong := domain.PrivateKey{Exponent: big.NewInt(3), Modulus: big.NewInt(33)}

		_, err := wrapper.Unwrap(wrappedOf(8, 27, 1, 31), wrong)
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
	})

	t.Run("Error_ValueNotResidue", func(t *testing.T) {
		_, err := wrapper.Unwrap(wrappedOf(6, 27, 1, 31), pair.Private)
		require.ErrorIs(t, err, domain.ErrInvalidKey)
		assert.Contains(t, err.Error(), "unwrapped value 0 is not a residue")
	})

	t.Run("Error_OversizedKeyRejectedBeforeExponentiation", func(t *testing.T) {
		modulus := new(big.Int).Lsh(big.NewInt(1), 4096)
		modulus.Sub(modulus, big.NewInt(1))
		huge := domain.PrivateKey{Exponent: new(big.Int).Sub(modulus, big.NewInt(2)), Modulus: modulus}

		for _, count := range []int{81, 2000} {
			wrapped := make(domain.WrappedKey, count)
			for i := range wrapped {
				wrapped[i] = big.NewInt(7)
			}

			start := time.Now()
			key, err := wrapper.Unwrap(wrapped, huge)

			assert.Nil(t, key)
			assert.ErrorIs(t, err, domain.ErrInvalidKey)
			assert.Less(t, time.Since(start), time.Second, "count %d", count)
		}
	})

	t.Run("Error_NotSquare", func(t *testing.T) {
		_, err := wrapper.Unwrap(wrappedOf(8, 27, 1), pair.Private)
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
	})

	t.Run("Error_Empty", func(t *testing.T) {
		_, err := wrapper.Unwrap(domain.WrappedKey{}, pair.Private)
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
	})

	t.Run("Error_ValueNotBelowModulus", func(t *testing.T) {
		_, err := wrapper.Unwrap(wrappedOf(8, 27, 1, 33), pair.Private)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}
