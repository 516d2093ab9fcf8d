// Package http provides HTTP handlers for hybrid encryption and key generation.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/hybridcrypt/internal/httputil"
	"github.com/allisson/hybridcrypt/internal/hybrid/http/dto"
	hybridUseCase "github.com/allisson/hybridcrypt/internal/hybrid/usecase"
	customValidation "github.com/allisson/hybridcrypt/internal/validation"
)

// HybridHandler handles HTTP requests for hybrid encryption and decryption.
type HybridHandler struct {
	hybridUseCase hybridUseCase.HybridUseCase
	logger        *slog.Logger
}

// NewHybridHandler creates a new hybrid handler with required dependencies.
func NewHybridHandler(hybridUseCase hybridUseCase.HybridUseCase, logger *slog.Logger) *HybridHandler {
	return &HybridHandler{
		hybridUseCase: hybridUseCase,
		logger:        logger,
	}
}

// EncryptHandler encrypts a message with a Hill key matrix and optionally wraps the key.
// POST /v1/hybrid/encrypt
// Returns 200 OK with the ciphertext, the wrapped key when a public key was sent,
// the message length and a UTC timestamp.
func (h *HybridHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	result, err := h.hybridUseCase.Encrypt(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEncryptResponse(result))
}

// DecryptHandler decrypts a ciphertext with either a key matrix or a wrapped key
// and private key.
// POST /v1/hybrid/decrypt
// Returns 200 OK with the decrypted message.
func (h *HybridHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	result, err := h.hybridUseCase.Decrypt(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecryptResponse{DecryptedMessage: result.Plaintext})
}
