package dto

import (
	"time"

	envelopeDomain "github.com/allisson/hybridcrypt/internal/envelope/domain"
)

// EnvelopeResponse represents a stored envelope in API responses.
type EnvelopeResponse struct {
	ID               string `json:"id"`
	EncryptedMessage string `json:"encryptedMessage"`
	EncryptedKey     string `json:"encryptedKey,omitempty"`
	MessageLength    int    `json:"messageLength"`
	CreatedAt        string `json:"createdAt"` // RFC3339, UTC
}

// MapEnvelopeToResponse converts a domain envelope to an API response.
func MapEnvelopeToResponse(envelope *envelopeDomain.Envelope) EnvelopeResponse {
	response := EnvelopeResponse{
		ID:               envelope.ID.String(),
		EncryptedMessage: envelope.Ciphertext,
		MessageLength:    envelope.MessageLength,
		CreatedAt:        envelope.CreatedAt.UTC().Format(time.RFC3339),
	}
	if envelope.HasWrappedKey() {
		response.EncryptedKey = envelope.WrappedKey.String()
	}
	return response
}

// ListEnvelopesResponse represents a page of envelopes.
type ListEnvelopesResponse struct {
	Data []EnvelopeResponse `json:"data"`
}

// MapEnvelopesToListResponse converts a slice of domain envelopes to a list API response.
func MapEnvelopesToListResponse(envelopes []*envelopeDomain.Envelope) ListEnvelopesResponse {
	data := make([]EnvelopeResponse, 0, len(envelopes))
	for _, envelope := range envelopes {
		data = append(data, MapEnvelopeToResponse(envelope))
	}
	return ListEnvelopesResponse{Data: data}
}
