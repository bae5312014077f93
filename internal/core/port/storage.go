package port

import (
	"context"
	"time"

	"partflow/internal/core/domain"
)

// BlobStore abstracts the remote multipart-upload protocol. Every
// operation is scoped to one remote object key. StartUpload, Complete
// and Abort are safe to retry against the same upload id.
type BlobStore interface {
	StartUpload(ctx context.Context, key string, contentType string) (string, error)
	PresignPart(ctx context.Context, key string, uploadID string, partNumber int, contentLength int64) (string, *time.Time, error)
	Complete(ctx context.Context, key string, uploadID string, parts []domain.Part) error
	Abort(ctx context.Context, key string, uploadID string) error
	ListParts(ctx context.Context, key string, uploadID string) ([]domain.Part, error)
}
