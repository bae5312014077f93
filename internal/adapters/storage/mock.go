package storage

import (
	"context"
	"time"

	"partflow/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockBlobStore is a mock implementation of BlobStore
type MockBlobStore struct {
	mock.Mock
}

// NewMockBlobStore creates a new MockBlobStore
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{}
}

func (m *MockBlobStore) StartUpload(ctx context.Context, key string, contentType string) (string, error) {
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) PresignPart(ctx context.Context, key string, uploadID string, partNumber int, contentLength int64) (string, *time.Time, error) {
	args := m.Called(ctx, key, uploadID, partNumber, contentLength)
	return args.String(0), args.Get(1).(*time.Time), args.Error(2)
}

func (m *MockBlobStore) Complete(ctx context.Context, key string, uploadID string, parts []domain.Part) error {
	args := m.Called(ctx, key, uploadID, parts)
	return args.Error(0)
}

func (m *MockBlobStore) Abort(ctx context.Context, key string, uploadID string) error {
	args := m.Called(ctx, key, uploadID)
	return args.Error(0)
}

func (m *MockBlobStore) ListParts(ctx context.Context, key string, uploadID string) ([]domain.Part, error) {
	args := m.Called(ctx, key, uploadID)
	return args.Get(0).([]domain.Part), args.Error(1)
}
