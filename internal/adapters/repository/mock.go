package repository

import (
	"context"
	"time"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

func (m *MockSessionRepository) Create(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) FindOpenByUserID(ctx context.Context, userID string) (*domain.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockSessionRepository) FindAllStale(ctx context.Context, cutoff time.Time) ([]domain.Session, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Session), args.Error(1)
}

type MockFileRepository struct {
	mock.Mock
}

func NewMockFileRepository() *MockFileRepository {
	return &MockFileRepository{}
}

func (m *MockFileRepository) Create(ctx context.Context, file domain.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id string) (*domain.File, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *MockFileRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.File, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *MockFileRepository) FindBySessionID(ctx context.Context, sessionID string) ([]domain.File, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]domain.File), args.Error(1)
}

func (m *MockFileRepository) UpdateStatus(ctx context.Context, id string, status domain.FileStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFileRepository) MarkUploaded(ctx context.Context, id string, uploadedChunks int) error {
	args := m.Called(ctx, id, uploadedChunks)
	return args.Error(0)
}

type MockChunkRepository struct {
	mock.Mock
}

func NewMockChunkRepository() *MockChunkRepository {
	return &MockChunkRepository{}
}

func (m *MockChunkRepository) CreateMany(ctx context.Context, chunks []domain.Chunk) error {
	args := m.Called(ctx, chunks)
	return args.Error(0)
}

func (m *MockChunkRepository) FindByFileID(ctx context.Context, fileID string) ([]domain.Chunk, error) {
	args := m.Called(ctx, fileID)
	return args.Get(0).([]domain.Chunk), args.Error(1)
}

func (m *MockChunkRepository) FindByFileIDAndIndex(ctx context.Context, fileID string, index int) (*domain.Chunk, error) {
	args := m.Called(ctx, fileID, index)
	return args.Get(0).(*domain.Chunk), args.Error(1)
}

func (m *MockChunkRepository) MarkUploaded(ctx context.Context, fileID string, index int, receipt string, uploadedAt time.Time) error {
	args := m.Called(ctx, fileID, index, receipt, uploadedAt)
	return args.Error(0)
}

// MockUnitOfWork runs the transactional closure against the same mocks,
// so expectations set on the repo mocks cover both paths.
type MockUnitOfWork struct {
	sessionRepo *MockSessionRepository
	fileRepo    *MockFileRepository
	chunkRepo   *MockChunkRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		sessionRepo: NewMockSessionRepository(),
		fileRepo:    NewMockFileRepository(),
		chunkRepo:   NewMockChunkRepository(),
	}
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	return fn(m)
}

func (m *MockUnitOfWork) SessionRepo() port.SessionRepository {
	return m.sessionRepo
}

func (m *MockUnitOfWork) FileRepo() port.FileRepository {
	return m.fileRepo
}

func (m *MockUnitOfWork) ChunkRepo() port.ChunkRepository {
	return m.chunkRepo
}

func (m *MockUnitOfWork) GetSessionRepoMock() *MockSessionRepository {
	return m.sessionRepo
}

func (m *MockUnitOfWork) GetFileRepoMock() *MockFileRepository {
	return m.fileRepo
}

func (m *MockUnitOfWork) GetChunkRepoMock() *MockChunkRepository {
	return m.chunkRepo
}

func (m *MockUnitOfWork) AssertExpectations(t mock.TestingT) {
	m.sessionRepo.AssertExpectations(t)
	m.fileRepo.AssertExpectations(t)
	m.chunkRepo.AssertExpectations(t)
}
