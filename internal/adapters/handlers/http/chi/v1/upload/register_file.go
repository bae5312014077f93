package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"partflow/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

type V1RegisterFileRequest struct {
	FileName   string `json:"file_name"`
	FileSize   int64  `json:"file_size"`
	ChunkCount int    `json:"chunk_count"`
}

type V1RegisterFileResponse struct {
	FileID     string `json:"file_id"`
	StorageKey string `json:"storage_key"`
	UploadID   string `json:"upload_id"`
}

func (h *HandlerV1) RegisterFileV1(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "Session ID is required", http.StatusBadRequest)
		return
	}

	var req V1RegisterFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding register file request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.FileName == "" {
		http.Error(w, "file_name is required", http.StatusBadRequest)
		return
	}

	reg, err := h.uploadService.RegisterFile(r.Context(), sessionID, req.FileName, req.FileSize, req.ChunkCount)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrInvalidChunkCount):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrSessionNotMutable):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, domain.ErrRemoteUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error registering file", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		resp := V1RegisterFileResponse{
			FileID:     reg.FileID,
			StorageKey: reg.StorageKey,
			UploadID:   reg.UploadID,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
