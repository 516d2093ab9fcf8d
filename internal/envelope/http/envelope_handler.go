// Package http provides HTTP handlers for the envelope store.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	envelopeDTO "github.com/allisson/hybridcrypt/internal/envelope/http/dto"
	envelopeUseCase "github.com/allisson/hybridcrypt/internal/envelope/usecase"
	"github.com/allisson/hybridcrypt/internal/httputil"
	hybridDTO "github.com/allisson/hybridcrypt/internal/hybrid/http/dto"
	customValidation "github.com/allisson/hybridcrypt/internal/validation"
)

// EnvelopeHandler handles HTTP requests for sealing, listing, opening and deleting envelopes.
type EnvelopeHandler struct {
	envelopeUseCase envelopeUseCase.EnvelopeUseCase
	logger          *slog.Logger
}

// NewEnvelopeHandler creates a new envelope handler with required dependencies.
func NewEnvelopeHandler(envelopeUseCase envelopeUseCase.EnvelopeUseCase, logger *slog.Logger) *EnvelopeHandler {
	return &EnvelopeHandler{
		envelopeUseCase: envelopeUseCase,
		logger:          logger,
	}
}

// SealHandler encrypts a message and stores the result.
// POST /v1/envelopes - Accepts the same body as /v1/hybrid/encrypt.
// Returns 201 Created with the stored envelope.
func (h *EnvelopeHandler) SealHandler(c *gin.Context) {
	var req hybridDTO.EncryptRequest

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

	envelope, err := h.envelopeUseCase.Seal(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, envelopeDTO.MapEnvelopeToResponse(envelope))
}

// GetHandler retrieves an envelope by id.
// GET /v1/envelopes/:id
func (h *EnvelopeHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	envelope, err := h.envelopeUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, envelopeDTO.MapEnvelopeToResponse(envelope))
}

// ListHandler lists envelopes with offset/limit pagination, newest first.
// GET /v1/envelopes?offset=0&limit=50
func (h *EnvelopeHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	envelopes, err := h.envelopeUseCase.List(c.Request.Context(), page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, envelopeDTO.MapEnvelopesToListResponse(envelopes))
}

// OpenHandler decrypts a stored envelope with a key matrix or a private key.
// POST /v1/envelopes/:id/open
// Returns 200 OK with the decrypted message.
func (h *EnvelopeHandler) OpenHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req envelopeDTO.OpenEnvelopeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	result, err := h.envelopeUseCase.Open(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, hybridDTO.DecryptResponse{DecryptedMessage: result.Plaintext})
}

// DeleteHandler removes an envelope.
// DELETE /v1/envelopes/:id
// Returns 204 No Content.
func (h *EnvelopeHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.envelopeUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter and writes a validation error when it is not a UUID.
func (h *EnvelopeHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid envelope ID format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return id, true
}
