package upload

import (
	"context"

	"partflow/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) StartOrReuseSession(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockUploadService) PauseSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockUploadService) ResumeSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockUploadService) CompleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockUploadService) CancelSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockUploadService) RegisterFile(ctx context.Context, sessionID string, fileName string, fileSize int64, chunkCount int) (*domain.FileRegistration, error) {
	args := m.Called(ctx, sessionID, fileName, fileSize, chunkCount)
	return args.Get(0).(*domain.FileRegistration), args.Error(1)
}

func (m *MockUploadService) PresignPartURL(ctx context.Context, fileID string, partNumber int) (string, error) {
	args := m.Called(ctx, fileID, partNumber)
	return args.String(0), args.Error(1)
}

func (m *MockUploadService) CompleteFile(ctx context.Context, fileID string, uploadID string, parts []domain.Part) error {
	args := m.Called(ctx, fileID, uploadID, parts)
	return args.Error(0)
}

func (m *MockUploadService) PauseFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockUploadService) ResumeFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockUploadService) GetSessionStatus(ctx context.Context, sessionID string) (*domain.SessionProgress, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(*domain.SessionProgress), args.Error(1)
}

func (m *MockUploadService) GetFileParts(ctx context.Context, fileID string) (*domain.FileParts, error) {
	args := m.Called(ctx, fileID)
	return args.Get(0).(*domain.FileParts), args.Error(1)
}
