package domain

import "time"

// FileStatus represents the status of a file
type FileStatus string

const (
	FileStatusPending    FileStatus = "pending"
	FileStatusInProgress FileStatus = "in_progress"
	FileStatusPaused     FileStatus = "paused"
	FileStatusUploaded   FileStatus = "uploaded"
	FileStatusFailed     FileStatus = "failed"
)

// Terminal reports whether the status permits no further transitions
func (s FileStatus) Terminal() bool {
	return s == FileStatusUploaded || s == FileStatusFailed
}

// File represents one logical object uploaded within a session. The
// remote upload id is assigned once at registration and never changes.
type File struct {
	ID             string
	SessionID      string
	Name           string
	Size           int64
	TotalChunks    int
	UploadedChunks int
	Status         FileStatus
	StorageKey     string
	UploadID       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FileRegistration is what a client needs to start transferring parts
type FileRegistration struct {
	FileID     string
	StorageKey string
	UploadID   string
}
