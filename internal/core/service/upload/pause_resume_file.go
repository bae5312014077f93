package upload

import (
	"context"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

// PauseFile pauses a single file without touching its session.
// Idempotent when already paused; fails once the file is terminal.
func (u *uploadService) PauseFile(ctx context.Context, fileID string) error {
	return u.flipFile(ctx, fileID, domain.FileStatusPaused)
}

// ResumeFile is the symmetric transition back to IN_PROGRESS.
func (u *uploadService) ResumeFile(ctx context.Context, fileID string) error {
	return u.flipFile(ctx, fileID, domain.FileStatusInProgress)
}

func (u *uploadService) flipFile(ctx context.Context, fileID string, target domain.FileStatus) error {
	return u.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		file, err := uow.FileRepo().FindByIDForUpdate(ctx, fileID)
		if err != nil {
			return err
		}
		if err := ensureFileMutable(file); err != nil {
			return err
		}
		if file.Status == target {
			return nil
		}
		return uow.FileRepo().UpdateStatus(ctx, fileID, target)
	})
}
