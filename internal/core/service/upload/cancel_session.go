package upload

import (
	"context"
	"time"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

// CancelSession abandons a campaign: every non-terminal file has its
// remote multipart upload aborted and is marked FAILED, then the
// session becomes CANCELLED. Abort is idempotent at the remote store,
// so a retried cancel after a partial failure is safe.
func (u *uploadService) CancelSession(ctx context.Context, sessionID string) error {
	var transitioned bool

	txErr := u.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		session, err := uow.SessionRepo().FindByIDForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if session.Status == domain.SessionStatusCancelled {
			return nil
		}
		if err := ensureSessionMutable(session); err != nil {
			return err
		}

		files, err := uow.FileRepo().FindBySessionID(ctx, sessionID)
		if err != nil {
			return err
		}
		for _, f := range files {
			if f.Status.Terminal() {
				continue
			}
			if err := u.blobStore.Abort(ctx, f.StorageKey, f.UploadID); err != nil {
				return err
			}
			if err := uow.FileRepo().UpdateStatus(ctx, f.ID, domain.FileStatusFailed); err != nil {
				return err
			}
		}

		if err := uow.SessionRepo().UpdateStatus(ctx, sessionID, domain.SessionStatusCancelled); err != nil {
			return err
		}
		transitioned = true
		return nil
	})
	if txErr != nil {
		return txErr
	}

	if transitioned {
		u.notify(ctx, domain.UploadEvent{
			Type:       domain.EventTypeSessionCancelled,
			SessionID:  sessionID,
			OccurredAt: time.Now(),
		})
	}
	return nil
}
