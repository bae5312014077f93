package domain

import "time"

// UploadEventType is a type that represents the type of an upload event
type UploadEventType string

const (
	EventTypeFileUploaded     UploadEventType = "FileUploaded"
	EventTypeSessionCompleted UploadEventType = "SessionCompleted"
	EventTypeSessionCancelled UploadEventType = "SessionCancelled"
	EventTypeSessionFailed    UploadEventType = "SessionFailed"
)

// UploadEvent is a notification published when a file or session
// reaches a terminal state
type UploadEvent struct {
	Type       UploadEventType `json:"type"`
	SessionID  string          `json:"session_id"`
	FileID     string          `json:"file_id,omitempty"`
	StorageKey string          `json:"storage_key,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
