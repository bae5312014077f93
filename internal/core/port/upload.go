package port

import (
	"context"

	"partflow/internal/core/domain"
)

// UploadService is the orchestration surface for resumable chunked uploads
type UploadService interface {
	// StartOrReuseSession returns the id of the caller's open session,
	// creating one only if no non-terminal session exists for the user.
	StartOrReuseSession(ctx context.Context, userID string) (string, error)
	PauseSession(ctx context.Context, sessionID string) error
	ResumeSession(ctx context.Context, sessionID string) error
	CompleteSession(ctx context.Context, sessionID string) error
	CancelSession(ctx context.Context, sessionID string) error

	RegisterFile(ctx context.Context, sessionID string, fileName string, fileSize int64, chunkCount int) (*domain.FileRegistration, error)
	PresignPartURL(ctx context.Context, fileID string, partNumber int) (string, error)
	CompleteFile(ctx context.Context, fileID string, uploadID string, parts []domain.Part) error
	PauseFile(ctx context.Context, fileID string) error
	ResumeFile(ctx context.Context, fileID string) error

	GetSessionStatus(ctx context.Context, sessionID string) (*domain.SessionProgress, error)
	GetFileParts(ctx context.Context, fileID string) (*domain.FileParts, error)
}
