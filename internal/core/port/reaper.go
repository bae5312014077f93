package port

import (
	"context"
	"time"
)

// ReaperService is a service that fails abandoned upload sessions
type ReaperService interface {
	ReapStaleSessions(ctx context.Context, cutoff time.Time) error
}
