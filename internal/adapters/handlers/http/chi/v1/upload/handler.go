package upload

import (
	"log/slog"
	"partflow/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/start", h.StartSessionV1)
	router.Get("/{sessionID}/status", h.GetSessionStatusV1)
	router.Post("/{sessionID}/files", h.RegisterFileV1)
	router.Patch("/{sessionID}/pause", h.PauseSessionV1)
	router.Patch("/{sessionID}/resume", h.ResumeSessionV1)
	router.Patch("/{sessionID}/complete", h.CompleteSessionV1)
	router.Patch("/{sessionID}/cancel", h.CancelSessionV1)

	router.Post("/files/{fileID}/parts/url", h.PresignPartV1)
	router.Post("/files/{fileID}/complete", h.CompleteFileV1)
	router.Patch("/files/{fileID}/pause", h.PauseFileV1)
	router.Patch("/files/{fileID}/resume", h.ResumeFileV1)
	router.Get("/files/{fileID}/parts", h.GetFilePartsV1)

	return router
}
