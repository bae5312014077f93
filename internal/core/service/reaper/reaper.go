package reaper

import (
	"log/slog"

	"partflow/internal/core/port"
)

type reaperService struct {
	uow       port.UnitOfWork
	blobStore port.BlobStore
	events    port.EventPublisher
	logger    *slog.Logger
}

// NewReaperService creates a new reaper service
func NewReaperService(uow port.UnitOfWork, blobStore port.BlobStore, events port.EventPublisher, logger *slog.Logger) port.ReaperService {
	return &reaperService{
		uow:       uow,
		blobStore: blobStore,
		events:    events,
		logger:    logger,
	}
}
