package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/hybridcrypt/internal/errors"
	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
	"github.com/allisson/hybridcrypt/internal/hybrid/service"
	"github.com/allisson/hybridcrypt/internal/hybrid/usecase"
)

var helloKey = domain.KeyMatrix{{2, 3}, {1, 4}}

func newHybridUseCase(t *testing.T, maxMessageLength int) usecase.HybridUseCase {
	t.Helper()
	codec, err := service.NewCodec(domain.DefaultFillSymbol, domain.TextPolicyStrict)
	require.NoError(t, err)

	validator := service.NewKeyValidator()
	return usecase.NewHybridUseCase(
		validator,
		service.NewHillCipher(codec),
		service.NewKeyWrapper(validator),
		maxMessageLength,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

// demoKeyPair derives the pair for p=3, q=11, e=3 and checks e.d = 1 mod lcm(2, 10).
func demoKeyPair(t *testing.T) *domain.KeyPair {
	t.Helper()
	pair, err := service.NewKeyGenerator(service.NewKeyValidator(), 1).
		DeriveKeyPair(big.NewInt(3), big.NewInt(11), big.NewInt(3))
	require.NoError(t, err)

	product := new(big.Int).Mul(pair.Public.Exponent, pair.Private.Exponent)
	require.Equal(t, int64(1), new(big.Int).Mod(product, big.NewInt(10)).Int64())
	return pair
}

func TestHybridUseCase_Encrypt(t *testing.T) {
	ctx := context.Background()
	uc := newHybridUseCase(t, 0)

	t.Run("Success_WithoutPublicKey", func(t *testing.T) {
		// Arrange
		before := time.Now().UTC()

		// Act
		result, err := uc.Encrypt(ctx, &domain.EncryptInput{Message: "HELLO", KeyMatrix: helloKey})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "AXDDTC", result.Ciphertext)
		assert.Nil(t, result.WrappedKey)
		assert.Equal(t, 5, result.MessageLength)
		assert.Equal(t, time.UTC, result.CreatedAt.Location())
		assert.WithinDuration(t, before, result.CreatedAt, time.Minute)
	})

	t.Run("Success_WithPublicKey", func(t *testing.T) {
		// Arrange
		pair := demoKeyPair(t)

		// Act
		result, err := uc.Encrypt(ctx, &domain.EncryptInput{
			Message:   "HELLO",
			KeyMatrix: helloKey,
			PublicKey: &pair.Public,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "AXDDTC", result.Ciphertext)
		assert.Equal(t, "8,27,1,31", result.WrappedKey.String())
	})

	t.Run("Error_SingularKey", func(t *testing.T) {
		result, err := uc.Encrypt(ctx, &domain.EncryptInput{
			Message:   "HELLO",
			KeyMatrix: domain.KeyMatrix{{1, 1}, {1, 1}},
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
		assert.Equal(t, "invalid_key", apperrors.CodeOf(err))
	})

	t.Run("Error_KeyTooLarge", func(t *testing.T) {
		small := &domain.PublicKey{Exponent: big.NewInt(3), Modulus: big.NewInt(15)}

		result, err := uc.Encrypt(ctx, &domain.EncryptInput{
			Message:   "HELLO",
			KeyMatrix: domain.KeyMatrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}},
			PublicKey: small,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrKeyTooLarge)
	})

	t.Run("Error_InvalidCharacter", func(t *testing.T) {
		_, err := uc.Encrypt(ctx, &domain.EncryptInput{Message: "HELLO!", KeyMatrix: helloKey})
		assert.ErrorIs(t, err, domain.ErrInvalidCharacter)
	})

	t.Run("Error_NilInput", func(t *testing.T) {
		_, err := uc.Encrypt(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("Error_MessageTooLong", func(t *testing.T) {
		limited := newHybridUseCase(t, 4)

		_, err := limited.Encrypt(ctx, &domain.EncryptInput{Message: "HELLO", KeyMatrix: helloKey})
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}

func TestHybridUseCase_Decrypt(t *testing.T) {
	ctx := context.Background()
	uc := newHybridUseCase(t, 0)
	pair := demoKeyPair(t)

	t.Run("Success_DirectKey", func(t *testing.T) {
		result, err := uc.Decrypt(ctx, &domain.DecryptInput{Ciphertext: "AXDDTC", KeyMatrix: helloKey})

		require.NoError(t, err)
		assert.Equal(t, "HELLOX", result.Plaintext)
	})

	t.Run("Success_WrappedKey", func(t *testing.T) {
		wrapped, err := domain.ParseWrappedKey("8,27,1,31")
		require.NoError(t, err)

		result, err := uc.Decrypt(ctx, &domain.DecryptInput{
			Ciphertext: "AXDDTC",
			WrappedKey: wrapped,
			PrivateKey: &pair.Private,
		})

		require.NoError(t, err)
		assert.Equal(t, "HELLOX", result.Plaintext)
	})

	t.Run("Success_MessageLengthTrimsPadding", func(t *testing.T) {
		result, err := uc.Decrypt(ctx, &domain.DecryptInput{
			Ciphertext:    "AXDDTC",
			KeyMatrix:     helloKey,
			MessageLength: 5,
		})

		require.NoError(t, err)
		assert.Equal(t, "HELLO", result.Plaintext)
	})

	t.Run("Error_BothKeyPaths", func(t *testing.T) {
		wrapped, err := domain.ParseWrappedKey("8,27,1,31")
		require.NoError(t, err)

		result, err := uc.Decrypt(ctx, &domain.DecryptInput{
			Ciphertext: "AXDDTC",
			KeyMatrix:  helloKey,
			WrappedKey: wrapped,
			PrivateKey: &pair.Private,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrAmbiguousOrMissingKey)
		assert.Equal(t, "ambiguous_or_missing_key", apperrors.CodeOf(err))
	})

	t.Run("Error_NoKeyPath", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, &domain.DecryptInput{Ciphertext: "AXDDTC"})
		assert.ErrorIs(t, err, domain.ErrAmbiguousOrMissingKey)
	})

	t.Run("Error_InvalidDirectKey", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, &domain.DecryptInput{
			Ciphertext: "AXDDTC",
			KeyMatrix:  domain.KeyMatrix{{2, 4}, {1, 4}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
	})

	t.Run("Error_WrongPrivateKey", func(t *testing.T) {
		wrapped, err := domain.ParseWrappedKey("8,27,1,31")
		require.NoError(t, err)

		_, err = uc.Decrypt(ctx, &domain.DecryptInput{
			Ciphertext: "AXDDTC",
			WrappedKey: wrapped,
			PrivateKey: &domain.PrivateKey{Exponent: big.NewInt(3), Modulus: big.NewInt(33)},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
	})

	t.Run("Error_MalformedCiphertext", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, &domain.DecryptInput{Ciphertext: "AXDDT", KeyMatrix: helloKey})
		assert.ErrorIs(t, err, domain.ErrMalformedCiphertext)
	})

	t.Run("Error_MessageLengthTooLarge", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, &domain.DecryptInput{
			Ciphertext:    "AXDDTC",
			KeyMatrix:     helloKey,
			MessageLength: 7,
		})
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("Error_NegativeMessageLength", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, &domain.DecryptInput{
			Ciphertext:    "AXDDTC",
			KeyMatrix:     helloKey,
			MessageLength: -1,
		})
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}

func TestHybridUseCase_RoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := newHybridUseCase(t, 0)
	keys := service.NewKeyGenerator(service.NewKeyValidator(), 1000)

	pair, err := keys.GenerateKeyPair(64, nil)
	require.NoError(t, err)

	for dimension := 2; dimension <= 4; dimension++ {
		key, err := keys.GenerateKeyMatrix(dimension)
		require.NoError(t, err)

		for _, message := range []string{"meetmeatnoon", "X", strings.Repeat("ABC", 17)} {
			encrypted, err := uc.Encrypt(ctx, &domain.EncryptInput{
				Message:   message,
				KeyMatrix: key,
				PublicKey: &pair.Public,
			})
			require.NoError(t, err)

			decrypted, err := uc.Decrypt(ctx, &domain.DecryptInput{
				Ciphertext:    encrypted.Ciphertext,
				WrappedKey:    encrypted.WrappedKey,
				PrivateKey:    &pair.Private,
				MessageLength: encrypted.MessageLength,
			})
			require.NoError(t, err)
			assert.Equal(t, strings.ToUpper(message), decrypted.Plaintext)
		}
	}
}

func TestKeyUseCase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewKeyUseCase(service.NewKeyGenerator(service.NewKeyValidator(), 1000))

	key, err := uc.GenerateKeyMatrix(ctx, 3)
	require.NoError(t, err)
	assert.NoError(t, service.NewKeyValidator().Validate(key))

	pair, err := uc.DeriveKeyPair(ctx, big.NewInt(3), big.NewInt(11), big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, "7,33", pair.Private.String())

	generated, err := uc.GenerateKeyPair(ctx, 32, nil)
	require.NoError(t, err)
	assert.Equal(t, generated.Public.Modulus, generated.Private.Modulus)

	_, err = uc.GenerateKeyMatrix(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}
