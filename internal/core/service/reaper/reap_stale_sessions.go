package reaper

import (
	"context"
	"time"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

// ReapStaleSessions fails every non-terminal session idle since before
// the cutoff: remote multipart uploads of its live files are aborted,
// the files marked FAILED and the session FAILED. One session failing
// to reap does not stop the sweep.
func (r *reaperService) ReapStaleSessions(ctx context.Context, cutoff time.Time) error {

	sessions, err := r.uow.SessionRepo().FindAllStale(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, session := range sessions {
		txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {

			locked, err := uow.SessionRepo().FindByIDForUpdate(ctx, session.ID)
			if err != nil {
				return err
			}
			if locked.Status.Terminal() {
				return nil
			}

			files, err := uow.FileRepo().FindBySessionID(ctx, session.ID)
			if err != nil {
				return err
			}
			for _, f := range files {
				if f.Status.Terminal() {
					continue
				}
				if err := r.blobStore.Abort(ctx, f.StorageKey, f.UploadID); err != nil {
					return err
				}
				if err := uow.FileRepo().UpdateStatus(ctx, f.ID, domain.FileStatusFailed); err != nil {
					return err
				}
			}

			return uow.SessionRepo().UpdateStatus(ctx, session.ID, domain.SessionStatusFailed)
		})
		if txErr != nil {
			r.logger.Error("failed to reap stale session", "session_id", session.ID, "error", txErr)
			continue
		}

		if pubErr := r.events.Publish(ctx, domain.UploadEvent{
			Type:       domain.EventTypeSessionFailed,
			SessionID:  session.ID,
			OccurredAt: time.Now(),
		}); pubErr != nil {
			r.logger.Warn("failed to publish session failed event", "session_id", session.ID, "error", pubErr)
		}
	}

	r.logger.Info("stale session sweep completed", "count", len(sessions))
	return nil
}
