package upload_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"

	"partflow/internal/adapters/handlers/http/chi"
	uploadhandler "partflow/internal/adapters/handlers/http/chi/v1/upload"
	"partflow/internal/core/domain"
	"partflow/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPresignPartV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - returns presigned url", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("PresignPartURL", mock.Anything, "file_1", 2).
			Return("https://store.example.com/presigned", nil)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(uploadhandler.V1PresignPartRequest{PartNumber: 2})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/files/file_1/parts/url", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		var response uploadhandler.V1PresignPartResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, 2, response.PartNumber)
		assert.Equal(t, "https://store.example.com/presigned", response.URL)
		mockService.AssertExpectations(t)
	})

	t.Run("error - paused file conflicts", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("PresignPartURL", mock.Anything, "file_1", 1).
			Return("", domain.ErrFilePaused)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(uploadhandler.V1PresignPartRequest{PartNumber: 1})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/files/file_1/parts/url", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusConflict, w.Code)
	})

	t.Run("error - part number out of range", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("PresignPartURL", mock.Anything, "file_1", 99).
			Return("", domain.ErrInvalidPartNumber)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(uploadhandler.V1PresignPartRequest{PartNumber: 99})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/files/file_1/parts/url", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - file not found", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("PresignPartURL", mock.Anything, "file_missing", 1).
			Return("", domain.ErrFileNotFound)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(uploadhandler.V1PresignPartRequest{PartNumber: 1})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/files/file_missing/parts/url", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
	})
}

func TestCompleteFileV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - completes file", func(t *testing.T) {
		// Arrange
		expectedParts := []domain.Part{
			{PartNumber: 1, Receipt: "etag-1"},
			{PartNumber: 2, Receipt: "etag-2"},
		}
		mockService := upload.NewMockUploadService()
		mockService.On("CompleteFile", mock.Anything, "file_1", "up-123", expectedParts).Return(nil)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(uploadhandler.V1CompleteFileRequest{
			UploadID: "up-123",
			Parts: []uploadhandler.CompletedPart{
				{PartNumber: 1, Receipt: "etag-1"},
				{PartNumber: 2, Receipt: "etag-2"},
			},
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/files/file_1/complete", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - empty parts rejected before service", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(uploadhandler.V1CompleteFileRequest{UploadID: "up-123"})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/files/file_1/complete", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CompleteFile")
	})

	t.Run("error - upload id mismatch", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("CompleteFile", mock.Anything, "file_1", "up-wrong", mock.Anything).
			Return(domain.ErrUploadIDMismatch)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(uploadhandler.V1CompleteFileRequest{
			UploadID: "up-wrong",
			Parts:    []uploadhandler.CompletedPart{{PartNumber: 1, Receipt: "etag"}},
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/files/file_1/complete", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - missing receipt", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("CompleteFile", mock.Anything, "file_1", "up-123", mock.Anything).
			Return(domain.ErrMissingReceipt)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(uploadhandler.V1CompleteFileRequest{
			UploadID: "up-123",
			Parts:    []uploadhandler.CompletedPart{{PartNumber: 1, Receipt: "etag"}},
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/files/file_1/complete", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusPreconditionFailed, w.Code)
	})

	t.Run("error - remote rejection maps to bad gateway", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("CompleteFile", mock.Anything, "file_1", "up-123", mock.Anything).
			Return(domain.ErrPartMismatch)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()

		jsonBody, _ := json.Marshal(uploadhandler.V1CompleteFileRequest{
			UploadID: "up-123",
			Parts:    []uploadhandler.CompletedPart{{PartNumber: 1, Receipt: "etag"}},
		})
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/upload/files/file_1/complete", bytes.NewReader(jsonBody))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadGateway, w.Code)
	})
}

func TestFileLifecycleV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - pause file", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("PauseFile", mock.Anything, "file_1").Return(nil)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPatch, "/api/v1/upload/files/file_1/pause", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("success - resume file", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("ResumeFile", mock.Anything, "file_1").Return(nil)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPatch, "/api/v1/upload/files/file_1/resume", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - terminal file conflicts", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("PauseFile", mock.Anything, "file_1").Return(domain.ErrFileNotMutable)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPatch, "/api/v1/upload/files/file_1/pause", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusConflict, w.Code)
	})
}

func TestGetFilePartsV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - returns uploaded and pending part numbers", func(t *testing.T) {
		// Arrange
		parts := &domain.FileParts{
			FileID:              "file_1",
			StorageKey:          "sess_1/file_1/video.bin",
			UploadID:            "up-123",
			TotalChunks:         4,
			UploadedPartNumbers: []int{1, 3},
			PendingPartNumbers:  []int{2, 4},
			UploadedParts: []domain.Part{
				{PartNumber: 1, Receipt: "etag-1"},
				{PartNumber: 3, Receipt: "etag-3"},
			},
		}

		mockService := upload.NewMockUploadService()
		mockService.On("GetFileParts", mock.Anything, "file_1").Return(parts, nil)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/upload/files/file_1/parts", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		var response uploadhandler.V1FilePartsResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 3}, response.UploadedPartNumbers)
		assert.Equal(t, []int{2, 4}, response.PendingPartNumbers)
		assert.Len(t, response.UploadedParts, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("error - remote unavailable maps to service unavailable", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("GetFileParts", mock.Anything, "file_1").
			Return((*domain.FileParts)(nil), domain.ErrRemoteUnavailable)

		handler := uploadhandler.NewUploadHandlerV1(mockService, discardLogger)
		h := chi.NewRouter(discardLogger, handler, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/upload/files/file_1/parts", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
	})
}
