package upload

import (
	"context"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

// PauseSession pauses a session and cascades to every owned file that
// is currently in progress. Idempotent when the session is already
// paused; fails once the session is terminal.
func (u *uploadService) PauseSession(ctx context.Context, sessionID string) error {
	return u.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		session, err := uow.SessionRepo().FindByIDForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := ensureSessionMutable(session); err != nil {
			return err
		}
		if session.Status == domain.SessionStatusPaused {
			return nil
		}

		if err := uow.SessionRepo().UpdateStatus(ctx, sessionID, domain.SessionStatusPaused); err != nil {
			return err
		}

		files, err := uow.FileRepo().FindBySessionID(ctx, sessionID)
		if err != nil {
			return err
		}
		for _, f := range files {
			if f.Status != domain.FileStatusInProgress {
				continue
			}
			if err := uow.FileRepo().UpdateStatus(ctx, f.ID, domain.FileStatusPaused); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResumeSession is the symmetric transition: PAUSED files go back to
// IN_PROGRESS, files already terminal are untouched.
func (u *uploadService) ResumeSession(ctx context.Context, sessionID string) error {
	return u.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		session, err := uow.SessionRepo().FindByIDForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := ensureSessionMutable(session); err != nil {
			return err
		}
		if session.Status == domain.SessionStatusInProgress {
			return nil
		}

		if err := uow.SessionRepo().UpdateStatus(ctx, sessionID, domain.SessionStatusInProgress); err != nil {
			return err
		}

		files, err := uow.FileRepo().FindBySessionID(ctx, sessionID)
		if err != nil {
			return err
		}
		for _, f := range files {
			if f.Status != domain.FileStatusPaused {
				continue
			}
			if err := uow.FileRepo().UpdateStatus(ctx, f.ID, domain.FileStatusInProgress); err != nil {
				return err
			}
		}
		return nil
	})
}
