package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"partflow/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

type CompletedPart struct {
	PartNumber int    `json:"part_number"`
	Receipt    string `json:"receipt"`
}

type V1CompleteFileRequest struct {
	UploadID string          `json:"upload_id"`
	Parts    []CompletedPart `json:"parts"`
}

func (h *HandlerV1) CompleteFileV1(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")
	if fileID == "" {
		http.Error(w, "File ID is required", http.StatusBadRequest)
		return
	}

	var req V1CompleteFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding complete file request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Parts) == 0 {
		http.Error(w, "Request contains no parts", http.StatusBadRequest)
		return
	}

	parts := make([]domain.Part, 0, len(req.Parts))
	for _, part := range req.Parts {
		parts = append(parts, domain.Part{
			PartNumber: part.PartNumber,
			Receipt:    part.Receipt,
		})
	}

	err := h.uploadService.CompleteFile(r.Context(), fileID, req.UploadID, parts)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		http.Error(w, "File not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrUploadIDMismatch), errors.Is(err, domain.ErrInvalidPartNumber):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrFileNotMutable):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, domain.ErrMissingReceipt):
		http.Error(w, err.Error(), http.StatusPreconditionFailed)
		return
	case errors.Is(err, domain.ErrPartMismatch), errors.Is(err, domain.ErrRemoteRejected):
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	case errors.Is(err, domain.ErrRemoteUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error completing file", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
