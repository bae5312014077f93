package upload

import (
	"encoding/json"
	"net/http"
)

type V1StartSessionRequest struct {
	UserID string `json:"user_id"`
}

type V1StartSessionResponse struct {
	SessionID string `json:"session_id"`
}

func (h *HandlerV1) StartSessionV1(w http.ResponseWriter, r *http.Request) {
	var req V1StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding start session request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	sessionID, err := h.uploadService.StartOrReuseSession(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("error starting session", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := V1StartSessionResponse{
		SessionID: sessionID,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
