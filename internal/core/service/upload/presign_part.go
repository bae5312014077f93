package upload

import (
	"context"
	"fmt"

	"partflow/internal/core/domain"
)

// PresignPartURL mints a time-bounded authorization for one part
// transfer. Authorizations may be requested repeatedly and out of
// order; nothing is recorded locally.
func (u *uploadService) PresignPartURL(ctx context.Context, fileID string, partNumber int) (string, error) {

	file, err := u.uow.FileRepo().FindByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	if err := ensureFileMutable(file); err != nil {
		return "", err
	}
	if file.Status == domain.FileStatusPaused {
		return "", fmt.Errorf("%w: file %s", domain.ErrFilePaused, fileID)
	}

	if partNumber < 1 || partNumber > file.TotalChunks {
		return "", fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidPartNumber, partNumber, file.TotalChunks)
	}

	// The plan is materialized atomically at registration; a missing
	// chunk here means the plan is corrupt, not a caller mistake.
	if _, err := u.uow.ChunkRepo().FindByFileIDAndIndex(ctx, fileID, partNumber-1); err != nil {
		return "", err
	}

	url, _, err := u.blobStore.PresignPart(ctx, file.StorageKey, file.UploadID, partNumber, 0)
	if err != nil {
		return "", err
	}
	return url, nil
}
