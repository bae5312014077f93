package upload

import (
	"context"
	"fmt"

	"partflow/internal/core/domain"
	"partflow/internal/core/port"
)

// RegisterFile creates a file under a session, opens its remote
// multipart upload and materializes the full chunk plan. The file row
// and its chunks land in one transaction: readers never observe a file
// with a partial plan, and a gateway failure persists nothing.
func (u *uploadService) RegisterFile(ctx context.Context, sessionID string, fileName string, fileSize int64, chunkCount int) (*domain.FileRegistration, error) {

	if chunkCount < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidChunkCount, chunkCount)
	}

	fileID := u.ids.FileID()
	storageKey := fmt.Sprintf("%s/%s/%s", sessionID, fileID, fileName)
	uploadID := ""

	txErr := u.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		session, err := uow.SessionRepo().FindByIDForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := ensureSessionMutable(session); err != nil {
			return err
		}

		var storeErr error
		uploadID, storeErr = u.blobStore.StartUpload(ctx, storageKey, u.uploadCfg.ContentType)
		if storeErr != nil {
			return storeErr
		}

		file := domain.File{
			ID:          fileID,
			SessionID:   sessionID,
			Name:        fileName,
			Size:        fileSize,
			TotalChunks: chunkCount,
			Status:      domain.FileStatusInProgress,
			StorageKey:  storageKey,
			UploadID:    uploadID,
		}
		if err := uow.FileRepo().Create(ctx, file); err != nil {
			return err
		}

		chunks := make([]domain.Chunk, 0, chunkCount)
		for i := 0; i < chunkCount; i++ {
			chunks = append(chunks, domain.Chunk{
				ID:     u.ids.ChunkID(),
				FileID: fileID,
				Index:  i,
				Status: domain.ChunkStatusPending,
			})
		}
		return uow.ChunkRepo().CreateMany(ctx, chunks)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &domain.FileRegistration{
		FileID:     fileID,
		StorageKey: storageKey,
		UploadID:   uploadID,
	}, nil
}
