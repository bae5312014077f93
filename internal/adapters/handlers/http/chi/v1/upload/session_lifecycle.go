package upload

import (
	"context"
	"errors"
	"net/http"
	"partflow/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

func (h *HandlerV1) PauseSessionV1(w http.ResponseWriter, r *http.Request) {
	h.sessionTransition(w, r, "pausing session", h.uploadService.PauseSession)
}

func (h *HandlerV1) ResumeSessionV1(w http.ResponseWriter, r *http.Request) {
	h.sessionTransition(w, r, "resuming session", h.uploadService.ResumeSession)
}

func (h *HandlerV1) CancelSessionV1(w http.ResponseWriter, r *http.Request) {
	h.sessionTransition(w, r, "cancelling session", h.uploadService.CancelSession)
}

func (h *HandlerV1) CompleteSessionV1(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "Session ID is required", http.StatusBadRequest)
		return
	}

	err := h.uploadService.CompleteSession(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrSessionIncomplete), errors.Is(err, domain.ErrSessionNotMutable):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error completing session", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *HandlerV1) sessionTransition(w http.ResponseWriter, r *http.Request, action string, fn func(context.Context, string) error) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "Session ID is required", http.StatusBadRequest)
		return
	}

	err := fn(r.Context(), sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrSessionNotMutable):
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
