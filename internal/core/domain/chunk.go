package domain

import "time"

// ChunkStatus represents the status of a chunk
type ChunkStatus string

const (
	ChunkStatusPending  ChunkStatus = "pending"
	ChunkStatusUploaded ChunkStatus = "uploaded"
)

// Chunk represents one part of a file's declared chunk plan. The
// zero-based index maps to the remote store's one-based part number.
type Chunk struct {
	ID         string
	FileID     string
	Index      int
	Status     ChunkStatus
	Receipt    string
	UploadedAt *time.Time
}

// PartNumber returns the remote part number for the chunk
func (c Chunk) PartNumber() int {
	return c.Index + 1
}

// Part is the remote store's view of one transferred part: a one-based
// part number and the opaque receipt (ETag) the store handed back.
type Part struct {
	PartNumber int
	Receipt    string
}
