package port

import (
	"context"

	"partflow/internal/core/domain"
)

// EventPublisher is an interface to define an upload event publisher (nats, kafka, ...)
type EventPublisher interface {
	Publish(ctx context.Context, event domain.UploadEvent) error
	Close() error
}
