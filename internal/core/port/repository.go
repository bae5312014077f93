package port

import (
	"context"
	"time"

	"partflow/internal/core/domain"
)

// SessionRepository is an interface to interact with session records
type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	// FindByIDForUpdate loads the session under a row lock; callers must
	// hold a unit-of-work transaction.
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Session, error)
	FindOpenByUserID(ctx context.Context, userID string) (*domain.Session, error)
	UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error
	FindAllStale(ctx context.Context, cutoff time.Time) ([]domain.Session, error)
}

// FileRepository is an interface to interact with file records
type FileRepository interface {
	Create(ctx context.Context, file domain.File) error
	FindByID(ctx context.Context, id string) (*domain.File, error)
	// FindByIDForUpdate loads the file under a row lock; callers must
	// hold a unit-of-work transaction.
	FindByIDForUpdate(ctx context.Context, id string) (*domain.File, error)
	FindBySessionID(ctx context.Context, sessionID string) ([]domain.File, error)
	UpdateStatus(ctx context.Context, id string, status domain.FileStatus) error
	MarkUploaded(ctx context.Context, id string, uploadedChunks int) error
}

// ChunkRepository is an interface to interact with chunk records
type ChunkRepository interface {
	CreateMany(ctx context.Context, chunks []domain.Chunk) error
	FindByFileID(ctx context.Context, fileID string) ([]domain.Chunk, error)
	FindByFileIDAndIndex(ctx context.Context, fileID string, index int) (*domain.Chunk, error)
	MarkUploaded(ctx context.Context, fileID string, index int, receipt string, uploadedAt time.Time) error
}
