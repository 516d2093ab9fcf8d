package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
	"github.com/allisson/hybridcrypt/internal/hybrid/http/dto"
	"github.com/allisson/hybridcrypt/internal/hybrid/usecase/mocks"
)

// setupTestKeyHandler creates a test key handler with mocked dependencies.
func setupTestKeyHandler(t *testing.T) (*KeyHandler, *mocks.MockKeyUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockKeyUseCase{}
	t.Cleanup(func() { mockUseCase.AssertExpectations(t) })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewKeyHandler(mockUseCase, logger), mockUseCase
}

func demoKeyPair() *domain.KeyPair {
	return &domain.KeyPair{
		Public:  domain.PublicKey{Exponent: big.NewInt(17), Modulus: big.NewInt(3233)},
		Private: domain.PrivateKey{Exponent: big.NewInt(413), Modulus: big.NewInt(3233)},
	}
}

func TestKeyHandler_GenerateKeyMatrixHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestKeyHandler(t)

		mockUseCase.On("GenerateKeyMatrix", mock.Anything, 2).
			Return(domain.KeyMatrix{{2, 3}, {1, 4}}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/keys/matrix", dto.GenerateKeyMatrixRequest{Dimension: 2})

		handler.GenerateKeyMatrixHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response dto.KeyMatrixResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "2 3\n1 4", response.KeyMatrix)
		assert.Equal(t, 2, response.Dimension)
	})

	t.Run("Error_DimensionTooSmall", func(t *testing.T) {
		handler, _ := setupTestKeyHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/keys/matrix", dto.GenerateKeyMatrixRequest{Dimension: 1})

		handler.GenerateKeyMatrixHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_GenerationExhausted", func(t *testing.T) {
		handler, mockUseCase := setupTestKeyHandler(t)

		mockUseCase.On("GenerateKeyMatrix", mock.Anything, 3).
			Return(nil, domain.ErrKeyGenerationExhausted).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/keys/matrix", dto.GenerateKeyMatrixRequest{Dimension: 3})

		handler.GenerateKeyMatrixHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "key_generation_exhausted", decodeError(t, w.Body.Bytes()).Code)
	})
}

func TestKeyHandler_GenerateKeyPairHandler(t *testing.T) {
	t.Run("Success_DeriveFromPrimes", func(t *testing.T) {
		handler, mockUseCase := setupTestKeyHandler(t)

		mockUseCase.On("DeriveKeyPair", mock.Anything,
			mock.MatchedBy(func(p *big.Int) bool { return p.Int64() == 61 }),
			mock.MatchedBy(func(q *big.Int) bool { return q.Int64() == 53 }),
			mock.MatchedBy(func(e *big.Int) bool { return e.Int64() == 17 }),
		).Return(demoKeyPair(), nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/keys/pair", `{"p": 61, "q": 53, "e": 17}`)

		handler.GenerateKeyPairHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response dto.KeyPairResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "17,3233", response.PublicKey)
		assert.Equal(t, "413,3233", response.PrivateKey)
	})

	t.Run("Success_GenerateWithDefaultExponent", func(t *testing.T) {
		handler, mockUseCase := setupTestKeyHandler(t)

		mockUseCase.On("GenerateKeyPair", mock.Anything, 64, (*big.Int)(nil)).
			Return(demoKeyPair(), nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/keys/pair", `{"bits": 64}`)

		handler.GenerateKeyPairHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestKeyHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/keys/pair", `{"p": }`)

		handler.GenerateKeyPairHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_MissingQ", func(t *testing.T) {
		handler, _ := setupTestKeyHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/keys/pair", `{"p": 61, "e": 17}`)

		handler.GenerateKeyPairHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_error", decodeError(t, w.Body.Bytes()).Error)
	})

	t.Run("Error_NotPrime", func(t *testing.T) {
		handler, mockUseCase := setupTestKeyHandler(t)

		mockUseCase.On("DeriveKeyPair", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: p and q must be prime", domain.ErrMalformedInput)).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/keys/pair", `{"p": 60, "q": 53, "e": 17}`)

		handler.GenerateKeyPairHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "malformed_input", decodeError(t, w.Body.Bytes()).Code)
	})
}
