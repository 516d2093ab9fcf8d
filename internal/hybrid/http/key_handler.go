package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/hybridcrypt/internal/httputil"
	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
	"github.com/allisson/hybridcrypt/internal/hybrid/http/dto"
	hybridUseCase "github.com/allisson/hybridcrypt/internal/hybrid/usecase"
	customValidation "github.com/allisson/hybridcrypt/internal/validation"
)

// KeyHandler handles HTTP requests for key matrix and key pair generation.
type KeyHandler struct {
	keyUseCase hybridUseCase.KeyUseCase
	logger     *slog.Logger
}

// NewKeyHandler creates a new key handler with required dependencies.
func NewKeyHandler(keyUseCase hybridUseCase.KeyUseCase, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{
		keyUseCase: keyUseCase,
		logger:     logger,
	}
}

// GenerateKeyMatrixHandler returns a random invertible key matrix.
// POST /v1/keys/matrix
func (h *KeyHandler) GenerateKeyMatrixHandler(c *gin.Context) {
	var req dto.GenerateKeyMatrixRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	key, err := h.keyUseCase.GenerateKeyMatrix(c.Request.Context(), req.Dimension)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapKeyMatrixResponse(key))
}

// GenerateKeyPairHandler derives a key pair from p and q, or generates one of the
// requested modulus size.
// POST /v1/keys/pair
func (h *KeyHandler) GenerateKeyPairHandler(c *gin.Context) {
	var req dto.KeyPairRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	ctx := c.Request.Context()

	var pair *domain.KeyPair
	var err error
	if req.Derive() {
		p, q, e := req.Primes()
		pair, err = h.keyUseCase.DeriveKeyPair(ctx, p, q, e)
	} else {
		pair, err = h.keyUseCase.GenerateKeyPair(ctx, req.Bits, req.Exponent())
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapKeyPairResponse(pair))
}
