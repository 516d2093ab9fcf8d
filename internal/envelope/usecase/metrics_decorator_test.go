package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	envelopeDomain "github.com/allisson/hybridcrypt/internal/envelope/domain"
	"github.com/allisson/hybridcrypt/internal/envelope/usecase"
	"github.com/allisson/hybridcrypt/internal/envelope/usecase/mocks"
	hybridDomain "github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordSymbols(ctx context.Context, domain, operation string, symbols int) {
	m.Called(ctx, domain, operation, symbols)
}

func expectEnvelopeMetrics(m *mockBusinessMetrics, ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "envelopes", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "envelopes", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestEnvelopeUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	tests := []struct {
		name      string
		operation string
		status    string
		arrange   func(next *mocks.MockEnvelopeUseCase)
		act       func(uc usecase.EnvelopeUseCase) error
	}{
		{
			name:      "Seal_Success",
			operation: "envelope_seal",
			status:    "success",
			arrange: func(next *mocks.MockEnvelopeUseCase) {
				next.On("Seal", ctx, mock.Anything).Return(&envelopeDomain.Envelope{ID: id}, nil).Once()
			},
			act: func(uc usecase.EnvelopeUseCase) error {
				_, err := uc.Seal(ctx, &hybridDomain.EncryptInput{Message: "HELLO", KeyMatrix: helloKey})
				return err
			},
		},
		{
			name:      "Get_Error",
			operation: "envelope_get",
			status:    "error",
			arrange: func(next *mocks.MockEnvelopeUseCase) {
				next.On("Get", ctx, id).Return(nil, envelopeDomain.ErrEnvelopeNotFound).Once()
			},
			act: func(uc usecase.EnvelopeUseCase) error {
				_, err := uc.Get(ctx, id)
				return err
			},
		},
		{
			name:      "List_Success",
			operation: "envelope_list",
			status:    "success",
			arrange: func(next *mocks.MockEnvelopeUseCase) {
				next.On("List", ctx, 0, 10).Return([]*envelopeDomain.Envelope{}, nil).Once()
			},
			act: func(uc usecase.EnvelopeUseCase) error {
				_, err := uc.List(ctx, 0, 10)
				return err
			},
		},
		{
			name:      "Open_Error",
			operation: "envelope_open",
			status:    "error",
			arrange: func(next *mocks.MockEnvelopeUseCase) {
				next.On("Open", ctx, id, mock.Anything).Return(nil, hybridDomain.ErrAmbiguousOrMissingKey).Once()
			},
			act: func(uc usecase.EnvelopeUseCase) error {
				_, err := uc.Open(ctx, id, &hybridDomain.DecryptInput{})
				return err
			},
		},
		{
			name:      "Delete_Success",
			operation: "envelope_delete",
			status:    "success",
			arrange: func(next *mocks.MockEnvelopeUseCase) {
				next.On("Delete", ctx, id).Return(nil).Once()
			},
			act: func(uc usecase.EnvelopeUseCase) error {
				return uc.Delete(ctx, id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			next := &mocks.MockEnvelopeUseCase{}
			mockMetrics := &mockBusinessMetrics{}
			uc := usecase.NewEnvelopeUseCaseWithMetrics(next, mockMetrics)
			tt.arrange(next)
			expectEnvelopeMetrics(mockMetrics, ctx, tt.operation, tt.status)

			// Act
			err := tt.act(uc)

			// Assert
			if tt.status == "success" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
			next.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}
