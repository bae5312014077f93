package upload

import (
	"context"
	"sort"

	"partflow/internal/core/domain"
)

// GetSessionStatus produces the read-only progress view of a session
// and all its files. Pending chunk indexes are recomputed from the
// chunk plan on every call.
func (u *uploadService) GetSessionStatus(ctx context.Context, sessionID string) (*domain.SessionProgress, error) {

	session, err := u.uow.SessionRepo().FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	files, err := u.uow.FileRepo().FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	progress := &domain.SessionProgress{
		SessionID: session.ID,
		Status:    session.Status,
		Files:     make([]domain.FileProgress, 0, len(files)),
	}

	for _, f := range files {
		chunks, err := u.uow.ChunkRepo().FindByFileID(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		pending := make([]int, 0, len(chunks))
		for _, c := range chunks {
			if c.Status != domain.ChunkStatusUploaded {
				pending = append(pending, c.Index)
			}
		}
		progress.Files = append(progress.Files, domain.FileProgress{
			FileID:              f.ID,
			FileName:            f.Name,
			TotalChunks:         f.TotalChunks,
			UploadedChunks:      f.UploadedChunks,
			Status:              f.Status,
			PendingChunkIndexes: pending,
		})
	}

	return progress, nil
}

// GetFileParts tells a resuming client which part numbers the remote
// store has already accepted and which still need (re)authorization.
// Chunks only flip to UPLOADED at completion time, so for a live upload
// the remote store's ListParts is the only source of in-flight truth;
// once the file is terminal (UPLOADED, or FAILED after an abort) the
// remote multipart upload no longer exists and the local chunk records
// answer instead.
func (u *uploadService) GetFileParts(ctx context.Context, fileID string) (*domain.FileParts, error) {

	file, err := u.uow.FileRepo().FindByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	var uploaded []domain.Part
	if file.Status.Terminal() {
		chunks, err := u.uow.ChunkRepo().FindByFileID(ctx, fileID)
		if err != nil {
			return nil, err
		}
		uploaded = make([]domain.Part, 0, len(chunks))
		for _, c := range chunks {
			uploaded = append(uploaded, domain.Part{PartNumber: c.PartNumber(), Receipt: c.Receipt})
		}
	} else {
		uploaded, err = u.blobStore.ListParts(ctx, file.StorageKey, file.UploadID)
		if err != nil {
			return nil, err
		}
		sort.Slice(uploaded, func(i, j int) bool {
			return uploaded[i].PartNumber < uploaded[j].PartNumber
		})
	}

	uploadedNumbers := make([]int, 0, len(uploaded))
	seen := make(map[int]bool, len(uploaded))
	for _, p := range uploaded {
		uploadedNumbers = append(uploadedNumbers, p.PartNumber)
		seen[p.PartNumber] = true
	}

	pendingNumbers := make([]int, 0, file.TotalChunks)
	for n := 1; n <= file.TotalChunks; n++ {
		if !seen[n] {
			pendingNumbers = append(pendingNumbers, n)
		}
	}

	return &domain.FileParts{
		FileID:              file.ID,
		StorageKey:          file.StorageKey,
		UploadID:            file.UploadID,
		TotalChunks:         file.TotalChunks,
		UploadedPartNumbers: uploadedNumbers,
		PendingPartNumbers:  pendingNumbers,
		UploadedParts:       uploaded,
	}, nil
}
