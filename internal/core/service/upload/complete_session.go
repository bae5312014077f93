package upload

import (
	"context"
	"fmt"
	"time"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

// CompleteSession explicitly finalizes a session. The automatic cascade
// in CompleteFile is the transition's source of truth, so a session
// that already cascaded to COMPLETED is a successful no-op here. Any
// file not yet UPLOADED gates the transition.
func (u *uploadService) CompleteSession(ctx context.Context, sessionID string) error {
	var transitioned bool

	txErr := u.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		session, err := uow.SessionRepo().FindByIDForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if session.Status == domain.SessionStatusCompleted {
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
			if f.Status != domain.FileStatusUploaded {
				return fmt.Errorf("%w: file %s is %s", domain.ErrSessionIncomplete, f.ID, f.Status)
			}
		}

		if err := uow.SessionRepo().UpdateStatus(ctx, sessionID, domain.SessionStatusCompleted); err != nil {
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
			Type:       domain.EventTypeSessionCompleted,
			SessionID:  sessionID,
			OccurredAt: time.Now(),
		})
	}
	return nil
}
