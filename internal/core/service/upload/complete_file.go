package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

// CompleteFile reconciles the client's part receipts against the chunk
// plan, finalizes the remote upload, and cascades the file's completion
// into the owning session. Validation happens before the gateway call;
// the gateway call happens before any local mutation, so a failure at
// either point leaves every record untouched and the operation
// retryable.
func (u *uploadService) CompleteFile(ctx context.Context, fileID string, uploadID string, parts []domain.Part) error {
	var (
		sessionID        string
		storageKey       string
		sessionCompleted bool
	)

	txErr := u.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		file, err := uow.FileRepo().FindByIDForUpdate(ctx, fileID)
		if err != nil {
			return err
		}
		if err := ensureFileMutable(file); err != nil {
			return err
		}
		if file.UploadID != uploadID {
			return fmt.Errorf("%w: file %s", domain.ErrUploadIDMismatch, fileID)
		}

		// Duplicate part numbers collapse to the last submitted value.
		receipts := make(map[int]string, len(parts))
		for _, p := range parts {
			if p.PartNumber < 1 || p.PartNumber > file.TotalChunks {
				return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidPartNumber, p.PartNumber, file.TotalChunks)
			}
			receipts[p.PartNumber] = p.Receipt
		}
		collapsed := make([]domain.Part, 0, file.TotalChunks)
		for n := 1; n <= file.TotalChunks; n++ {
			if strings.TrimSpace(receipts[n]) == "" {
				return fmt.Errorf("%w for part %d", domain.ErrMissingReceipt, n)
			}
			collapsed = append(collapsed, domain.Part{PartNumber: n, Receipt: receipts[n]})
		}

		if err := u.blobStore.Complete(ctx, file.StorageKey, file.UploadID, collapsed); err != nil {
			return err
		}

		chunks, err := uow.ChunkRepo().FindByFileID(ctx, fileID)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, c := range chunks {
			if err := uow.ChunkRepo().MarkUploaded(ctx, fileID, c.Index, receipts[c.PartNumber()], now); err != nil {
				return err
			}
		}

		if err := uow.FileRepo().MarkUploaded(ctx, fileID, file.TotalChunks); err != nil {
			return err
		}

		sessionID = file.SessionID
		storageKey = file.StorageKey

		files, err := uow.FileRepo().FindBySessionID(ctx, file.SessionID)
		if err != nil {
			return err
		}
		allUploaded := true
		for _, f := range files {
			if f.Status != domain.FileStatusUploaded {
				allUploaded = false
				break
			}
		}
		if allUploaded {
			if err := uow.SessionRepo().UpdateStatus(ctx, file.SessionID, domain.SessionStatusCompleted); err != nil {
				return err
			}
			sessionCompleted = true
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	u.notify(ctx, domain.UploadEvent{
		Type:       domain.EventTypeFileUploaded,
		SessionID:  sessionID,
		FileID:     fileID,
		StorageKey: storageKey,
		OccurredAt: time.Now(),
	})
	if sessionCompleted {
		u.notify(ctx, domain.UploadEvent{
			Type:       domain.EventTypeSessionCompleted,
			SessionID:  sessionID,
			OccurredAt: time.Now(),
		})
	}
	return nil
}
