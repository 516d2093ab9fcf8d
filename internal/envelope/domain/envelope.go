// Package domain defines the envelope entity, a persisted hybrid encryption result.
package domain

import (
	"time"

	"github.com/google/uuid"

	hybridDomain "github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// Envelope is a stored encryption result. It holds what a sender may publish:
// the ciphertext, the optional wrapped key and the length hint. Key matrices and
// private keys are never part of an envelope.
type Envelope struct {
	ID            uuid.UUID
	Ciphertext    string
	WrappedKey    hybridDomain.WrappedKey // nil when sealed without a public key
	MessageLength int
	CreatedAt     time.Time
}

// NewEnvelope builds an envelope from an encryption result with a fresh v7 id.
func NewEnvelope(result *hybridDomain.EncryptionResult) *Envelope {
	return &Envelope{
		ID:            uuid.Must(uuid.NewV7()),
		Ciphertext:    result.Ciphertext,
		WrappedKey:    result.WrappedKey,
		MessageLength: result.MessageLength,
		CreatedAt:     result.CreatedAt,
	}
}

// HasWrappedKey reports whether the envelope carries a wrapped key.
func (e *Envelope) HasWrappedKey() bool {
	return len(e.WrappedKey) > 0
}
