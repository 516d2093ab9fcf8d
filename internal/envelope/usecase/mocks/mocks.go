// Package mocks provides mock implementations of the envelope use case and repository for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	envelopeDomain "github.com/allisson/hybridcrypt/internal/envelope/domain"
	hybridDomain "github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// MockEnvelopeRepository is a mock implementation of EnvelopeRepository.
type MockEnvelopeRepository struct {
	mock.Mock
}

// Create mocks the Create method of EnvelopeRepository.
func (m *MockEnvelopeRepository) Create(ctx context.Context, envelope *envelopeDomain.Envelope) error {
	args := m.Called(ctx, envelope)
	return args.Error(0)
}

// Get mocks the Get method of EnvelopeRepository.
func (m *MockEnvelopeRepository) Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.Envelope, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*envelopeDomain.Envelope), args.Error(1)
}

// List mocks the List method of EnvelopeRepository.
func (m *MockEnvelopeRepository) List(ctx context.Context, offset, limit int) ([]*envelopeDomain.Envelope, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*envelopeDomain.Envelope), args.Error(1)
}

// Delete mocks the Delete method of EnvelopeRepository.
func (m *MockEnvelopeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEnvelopeUseCase is a mock implementation of EnvelopeUseCase.
type MockEnvelopeUseCase struct {
	mock.Mock
}

// Seal mocks the Seal method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) Seal(
	ctx context.Context,
	input *hybridDomain.EncryptInput,
) (*envelopeDomain.Envelope, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*envelopeDomain.Envelope), args.Error(1)
}

// Get mocks the Get method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.Envelope, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*envelopeDomain.Envelope), args.Error(1)
}

// List mocks the List method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) List(ctx context.Context, offset, limit int) ([]*envelopeDomain.Envelope, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*envelopeDomain.Envelope), args.Error(1)
}

// Open mocks the Open method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) Open(
	ctx context.Context,
	id uuid.UUID,
	input *hybridDomain.DecryptInput,
) (*hybridDomain.DecryptionResult, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hybridDomain.DecryptionResult), args.Error(1)
}

// Delete mocks the Delete method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTxManager runs the function inline without a database.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method of TxManager and runs fn when no error is configured.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
