package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"partflow/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

type V1FileProgress struct {
	FileID              string `json:"file_id"`
	FileName            string `json:"file_name"`
	Status              string `json:"status"`
	TotalChunks         int    `json:"total_chunks"`
	UploadedChunks      int    `json:"uploaded_chunks"`
	PendingChunkIndexes []int  `json:"pending_chunk_indexes"`
}

type V1SessionStatusResponse struct {
	SessionID string           `json:"session_id"`
	Status    string           `json:"status"`
	Files     []V1FileProgress `json:"files"`
}

func (h *HandlerV1) GetSessionStatusV1(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "Session ID is required", http.StatusBadRequest)
		return
	}

	progress, err := h.uploadService.GetSessionStatus(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error getting session status", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		files := make([]V1FileProgress, 0, len(progress.Files))
		for _, f := range progress.Files {
			files = append(files, V1FileProgress{
				FileID:              f.FileID,
				FileName:            f.FileName,
				Status:              string(f.Status),
				TotalChunks:         f.TotalChunks,
				UploadedChunks:      f.UploadedChunks,
				PendingChunkIndexes: f.PendingChunkIndexes,
			})
		}

		resp := V1SessionStatusResponse{
			SessionID: progress.SessionID,
			Status:    string(progress.Status),
			Files:     files,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
