package upload

import (
	"context"
	"fmt"
	"log/slog"

	"partflow/internal/config"
	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

type uploadService struct {
	uow       port.UnitOfWork
	blobStore port.BlobStore
	ids       port.IDAllocator
	events    port.EventPublisher
	uploadCfg config.UploadConfig
	logger    *slog.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(uow port.UnitOfWork, blobStore port.BlobStore, ids port.IDAllocator, events port.EventPublisher, cfg config.UploadConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{
		uow:       uow,
		blobStore: blobStore,
		ids:       ids,
		events:    events,
		uploadCfg: cfg,
		logger:    logger,
	}
}

func ensureSessionMutable(s *domain.Session) error {
	if s.Status.Terminal() {
		return fmt.Errorf("%w: session %s is %s", domain.ErrSessionNotMutable, s.ID, s.Status)
	}
	return nil
}

func ensureFileMutable(f *domain.File) error {
	if f.Status.Terminal() {
		return fmt.Errorf("%w: file %s is %s", domain.ErrFileNotMutable, f.ID, f.Status)
	}
	return nil
}

// notify publishes best-effort: a lost notification must never fail an
// operation whose state is already durable.
func (u *uploadService) notify(ctx context.Context, event domain.UploadEvent) {
	if err := u.events.Publish(ctx, event); err != nil {
		u.logger.Warn("failed to publish upload event",
			"type", string(event.Type),
			"session_id", event.SessionID,
			"error", err,
		)
	}
}
