package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"partflow/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

type ListedPart struct {
	PartNumber int    `json:"part_number"`
	Receipt    string `json:"receipt"`
}

type V1FilePartsResponse struct {
	FileID              string       `json:"file_id"`
	StorageKey          string       `json:"storage_key"`
	UploadID            string       `json:"upload_id"`
	TotalChunks         int          `json:"total_chunks"`
	UploadedPartNumbers []int        `json:"uploaded_part_numbers"`
	PendingPartNumbers  []int        `json:"pending_part_numbers"`
	UploadedParts       []ListedPart `json:"uploaded_parts"`
}

func (h *HandlerV1) GetFilePartsV1(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")
	if fileID == "" {
		http.Error(w, "File ID is required", http.StatusBadRequest)
		return
	}

	parts, err := h.uploadService.GetFileParts(r.Context(), fileID)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		http.Error(w, "File not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrRemoteUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("error listing file parts", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		uploaded := make([]ListedPart, 0, len(parts.UploadedParts))
		for _, part := range parts.UploadedParts {
			uploaded = append(uploaded, ListedPart{
				PartNumber: part.PartNumber,
				Receipt:    part.Receipt,
			})
		}

		resp := V1FilePartsResponse{
			FileID:              parts.FileID,
			StorageKey:          parts.StorageKey,
			UploadID:            parts.UploadID,
			TotalChunks:         parts.TotalChunks,
			UploadedPartNumbers: parts.UploadedPartNumbers,
			PendingPartNumbers:  parts.PendingPartNumbers,
			UploadedParts:       uploaded,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
