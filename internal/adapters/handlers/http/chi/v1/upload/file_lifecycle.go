package upload

import (
	"context"
	"errors"
	"net/http"
	"partflow/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

func (h *HandlerV1) PauseFileV1(w http.ResponseWriter, r *http.Request) {
	h.fileTransition(w, r, "pausing file", h.uploadService.PauseFile)
}

func (h *HandlerV1) ResumeFileV1(w http.ResponseWriter, r *http.Request) {
	h.fileTransition(w, r, "resuming file", h.uploadService.ResumeFile)
}

func (h *HandlerV1) fileTransition(w http.ResponseWriter, r *http.Request, action string, fn func(context.Context, string) error) {
	fileID := chi.URLParam(r, "fileID")
	if fileID == "" {
		http.Error(w, "File ID is required", http.StatusBadRequest)
		return
	}

	err := fn(r.Context(), fileID)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		http.Error(w, "File not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrFileNotMutable), errors.Is(err, domain.ErrSessionNotMutable):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error "+action, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
