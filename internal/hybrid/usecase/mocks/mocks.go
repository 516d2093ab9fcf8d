// Package mocks provides mock implementations of the hybrid use cases for testing.
package mocks

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// MockHybridUseCase is a mock implementation of HybridUseCase.
type MockHybridUseCase struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of HybridUseCase.
func (m *MockHybridUseCase) Encrypt(
	ctx context.Context,
	input *domain.EncryptInput,
) (*domain.EncryptionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EncryptionResult), args.Error(1)
}

// Decrypt mocks the Decrypt method of HybridUseCase.
func (m *MockHybridUseCase) Decrypt(
	ctx context.Context,
	input *domain.DecryptInput,
) (*domain.DecryptionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DecryptionResult), args.Error(1)
}

// MockKeyUseCase is a mock implementation of KeyUseCase.
type MockKeyUseCase struct {
	mock.Mock
}

// GenerateKeyMatrix mocks the GenerateKeyMatrix method of KeyUseCase.
func (m *MockKeyUseCase) GenerateKeyMatrix(ctx context.Context, dimension int) (domain.KeyMatrix, error) {
	args := m.Called(ctx, dimension)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.KeyMatrix), args.Error(1)
}

// DeriveKeyPair mocks the DeriveKeyPair method of KeyUseCase.
func (m *MockKeyUseCase) DeriveKeyPair(ctx context.Context, p, q, e *big.Int) (*domain.KeyPair, error) {
	args := m.Called(ctx, p, q, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KeyPair), args.Error(1)
}

// GenerateKeyPair mocks the GenerateKeyPair method of KeyUseCase.
func (m *MockKeyUseCase) GenerateKeyPair(ctx context.Context, bits int, e *big.Int) (*domain.KeyPair, error) {
	args := m.Called(ctx, bits, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KeyPair), args.Error(1)
}
