package upload_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"partflow/internal/adapters/eventbroker"
	"partflow/internal/adapters/idgen"
	"partflow/internal/adapters/repository"
	"partflow/internal/adapters/storage"
	"partflow/internal/config"
	"partflow/internal/core/domain"
	"partflow/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultCfg = config.UploadConfig{
	ContentType: "application/octet-stream",
	ReapAfter:   24 * time.Hour,
	ReapEvery:   time.Hour,
}

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestUploadService_StartOrReuseSession_ReusesOpenSession(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStore := storage.NewMockBlobStore()
	mockIDs := idgen.NewMockIDAllocator()
	mockEvents := eventbroker.NewMockEventPublisher()
	service := upload.NewUploadService(mockUow, mockStore, mockIDs, mockEvents, defaultCfg, testLogger)

	existing := &domain.Session{ID: "sess_existing", UserID: "user-1", Status: domain.SessionStatusPaused}
	mockUow.GetSessionRepoMock().On("FindOpenByUserID", ctx, "user-1").Return(existing, nil)

	// Act
	sessionID, err := service.StartOrReuseSession(ctx, "user-1")

	// Assert
	assert.NoError(t, err)
	require.Equal(t, "sess_existing", sessionID)
	mockUow.AssertExpectations(t)
	mockUow.GetSessionRepoMock().AssertNotCalled(t, "Create")
}

func TestUploadService_StartOrReuseSession_CreatesWhenNoneOpen(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStore := storage.NewMockBlobStore()
	mockIDs := idgen.NewMockIDAllocator()
	mockEvents := eventbroker.NewMockEventPublisher()
	service := upload.NewUploadService(mockUow, mockStore, mockIDs, mockEvents, defaultCfg, testLogger)

	mockUow.GetSessionRepoMock().On("FindOpenByUserID", ctx, "user-1").
		Return((*domain.Session)(nil), domain.ErrSessionNotFound).Once()
	mockIDs.On("SessionID").Return("sess_new")
	mockUow.GetSessionRepoMock().On("Create", ctx, domain.Session{
		ID:     "sess_new",
		UserID: "user-1",
		Status: domain.SessionStatusInProgress,
	}).Return(nil)

	// Act
	sessionID, err := service.StartOrReuseSession(ctx, "user-1")

	// Assert
	assert.NoError(t, err)
	require.Equal(t, "sess_new", sessionID)
	mockUow.AssertExpectations(t)
}

func TestUploadService_StartOrReuseSession_LosesCreationRace(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStore := storage.NewMockBlobStore()
	mockIDs := idgen.NewMockIDAllocator()
	mockEvents := eventbroker.NewMockEventPublisher()
	service := upload.NewUploadService(mockUow, mockStore, mockIDs, mockEvents, defaultCfg, testLogger)

	winner := &domain.Session{ID: "sess_winner", UserID: "user-1", Status: domain.SessionStatusInProgress}
	mockUow.GetSessionRepoMock().On("FindOpenByUserID", ctx, "user-1").
		Return((*domain.Session)(nil), domain.ErrSessionNotFound).Once()
	mockIDs.On("SessionID").Return("sess_loser")
	mockUow.GetSessionRepoMock().On("Create", ctx, domain.Session{
		ID:     "sess_loser",
		UserID: "user-1",
		Status: domain.SessionStatusInProgress,
	}).Return(domain.ErrAlreadyExists)
	mockUow.GetSessionRepoMock().On("FindOpenByUserID", ctx, "user-1").
		Return(winner, nil).Once()

	// Act
	sessionID, err := service.StartOrReuseSession(ctx, "user-1")

	// Assert
	assert.NoError(t, err)
	require.Equal(t, "sess_winner", sessionID)
	mockUow.AssertExpectations(t)
}

func TestUploadService_StartOrReuseSession_LookupFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockStore := storage.NewMockBlobStore()
	mockIDs := idgen.NewMockIDAllocator()
	mockEvents := eventbroker.NewMockEventPublisher()
	service := upload.NewUploadService(mockUow, mockStore, mockIDs, mockEvents, defaultCfg, testLogger)

	dbErr := errors.New("connection refused")
	mockUow.GetSessionRepoMock().On("FindOpenByUserID", ctx, "user-1").
		Return((*domain.Session)(nil), dbErr)

	// Act
	sessionID, err := service.StartOrReuseSession(ctx, "user-1")

	// Assert
	assert.ErrorIs(t, err, dbErr)
	require.Empty(t, sessionID)
	mockUow.GetSessionRepoMock().AssertNotCalled(t, "Create")
}
