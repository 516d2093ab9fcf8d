package dto

import (
	"time"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// EncryptResponse represents the result of hybrid encryption.
type EncryptResponse struct {
	EncryptedMessage string `json:"encryptedMessage"`
	EncryptedKey     string `json:"encryptedKey,omitempty"` // Present iff a public key was supplied
	MessageLength    int    `json:"messageLength"`
	Timestamp        string `json:"timestamp"` // RFC3339, UTC
}

// MapEncryptResponse converts an encryption result into an API response.
func MapEncryptResponse(result *domain.EncryptionResult) EncryptResponse {
	response := EncryptResponse{
		EncryptedMessage: result.Ciphertext,
		MessageLength:    result.MessageLength,
		Timestamp:        result.CreatedAt.UTC().Format(time.RFC3339),
	}
	if result.WrappedKey != nil {
		response.EncryptedKey = result.WrappedKey.String()
	}
	return response
}

// DecryptResponse represents the result of hybrid decryption.
type DecryptResponse struct {
	DecryptedMessage string `json:"decryptedMessage"`
}

// KeyMatrixResponse represents a generated key matrix.
type KeyMatrixResponse struct {
	KeyMatrix string `json:"keyMatrix"`
	Dimension int    `json:"dimension"`
}

// MapKeyMatrixResponse converts a key matrix into an API response.
func MapKeyMatrixResponse(key domain.KeyMatrix) KeyMatrixResponse {
	return KeyMatrixResponse{
		KeyMatrix: key.String(),
		Dimension: key.Dimension(),
	}
}

// KeyPairResponse represents a generated key pair in "<exp>,<mod>" form.
type KeyPairResponse struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// MapKeyPairResponse converts a key pair into an API response.
func MapKeyPairResponse(pair *domain.KeyPair) KeyPairResponse {
	return KeyPairResponse{
		PublicKey:  pair.Public.String(),
		PrivateKey: pair.Private.String(),
	}
}
