package postgres_test

import (
	"context"
	"testing"
	"time"

	"partflow/internal/adapters/repository/postgres"
	"partflow/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestSqlSessionRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	sessionRepo := postgres.NewSQLSessionRepository(dbConnection)

	t.Run("Create - Nominal case", func(t *testing.T) {
		// Arrange
		truncate()
		session := domain.Session{
			ID:     "sess_create",
			UserID: "user-1",
			Status: domain.SessionStatusInProgress,
		}

		// Act
		err := sessionRepo.Create(ctx, session)

		// Assert
		require.NoError(t, err)
		saved, err := sessionRepo.FindByID(ctx, session.ID)
		require.NoError(t, err)
		require.Equal(t, session.ID, saved.ID)
		require.Equal(t, session.UserID, saved.UserID)
		require.Equal(t, domain.SessionStatusInProgress, saved.Status)
		require.False(t, saved.CreatedAt.IsZero())
	})

	t.Run("Create - Second open session for user is rejected", func(t *testing.T) {
		// Arrange
		truncate()
		first := domain.Session{ID: "sess_first", UserID: "user-1", Status: domain.SessionStatusInProgress}
		require.NoError(t, sessionRepo.Create(ctx, first))

		// Act
		err := sessionRepo.Create(ctx, domain.Session{
			ID: "sess_second", UserID: "user-1", Status: domain.SessionStatusPaused,
		})

		// Assert
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("Create - New open session allowed after previous is terminal", func(t *testing.T) {
		// Arrange
		truncate()
		first := domain.Session{ID: "sess_first", UserID: "user-1", Status: domain.SessionStatusInProgress}
		require.NoError(t, sessionRepo.Create(ctx, first))
		require.NoError(t, sessionRepo.UpdateStatus(ctx, first.ID, domain.SessionStatusCompleted))

		// Act
		err := sessionRepo.Create(ctx, domain.Session{
			ID: "sess_second", UserID: "user-1", Status: domain.SessionStatusInProgress,
		})

		// Assert
		require.NoError(t, err)
	})

	t.Run("FindByID - Not found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		saved, err := sessionRepo.FindByID(ctx, "sess_missing")

		// Assert
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
		require.Nil(t, saved)
	})

	t.Run("FindOpenByUserID - Returns the single open session", func(t *testing.T) {
		// Arrange
		truncate()
		open := domain.Session{ID: "sess_open", UserID: "user-1", Status: domain.SessionStatusPaused}
		require.NoError(t, sessionRepo.Create(ctx, open))
		done := domain.Session{ID: "sess_done", UserID: "user-2", Status: domain.SessionStatusInProgress}
		require.NoError(t, sessionRepo.Create(ctx, done))
		require.NoError(t, sessionRepo.UpdateStatus(ctx, done.ID, domain.SessionStatusCompleted))

		// Act
		found, err := sessionRepo.FindOpenByUserID(ctx, "user-1")

		// Assert
		require.NoError(t, err)
		require.Equal(t, "sess_open", found.ID)

		_, err = sessionRepo.FindOpenByUserID(ctx, "user-2")
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("UpdateStatus - Not found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		err := sessionRepo.UpdateStatus(ctx, "sess_missing", domain.SessionStatusPaused)

		// Assert
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("FindAllStale - Only non-terminal sessions past cutoff", func(t *testing.T) {
		// Arrange
		truncate()
		stale := domain.Session{ID: "sess_stale", UserID: "user-1", Status: domain.SessionStatusInProgress}
		require.NoError(t, sessionRepo.Create(ctx, stale))
		terminal := domain.Session{ID: "sess_term", UserID: "user-2", Status: domain.SessionStatusInProgress}
		require.NoError(t, sessionRepo.Create(ctx, terminal))
		require.NoError(t, sessionRepo.UpdateStatus(ctx, terminal.ID, domain.SessionStatusCancelled))

		// age the stale row behind the cutoff
		_, err := dbConnection.Exec(`UPDATE upload_session SET updated_at = now() - interval '2 days' WHERE id = $1`, stale.ID)
		require.NoError(t, err)

		// Act
		found, err := sessionRepo.FindAllStale(ctx, time.Now().Add(-24*time.Hour))

		// Assert
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, "sess_stale", found[0].ID)
	})
}
