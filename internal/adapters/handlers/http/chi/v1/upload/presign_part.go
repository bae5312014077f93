package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"partflow/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

type V1PresignPartRequest struct {
	PartNumber int `json:"part_number"`
}

type V1PresignPartResponse struct {
	PartNumber int    `json:"part_number"`
	URL        string `json:"url"`
}

func (h *HandlerV1) PresignPartV1(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")
	if fileID == "" {
		http.Error(w, "File ID is required", http.StatusBadRequest)
		return
	}

	var req V1PresignPartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding presign part request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	url, err := h.uploadService.PresignPartURL(r.Context(), fileID, req.PartNumber)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		http.Error(w, "File not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrInvalidPartNumber):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrFileNotMutable), errors.Is(err, domain.ErrFilePaused):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, domain.ErrRemoteUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error presigning part", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		resp := V1PresignPartResponse{
			PartNumber: req.PartNumber,
			URL:        url,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
