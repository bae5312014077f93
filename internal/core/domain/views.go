package domain

// FileProgress is the read-only progress view of one file
type FileProgress struct {
	FileID              string
	FileName            string
	TotalChunks         int
	UploadedChunks      int
	Status              FileStatus
	PendingChunkIndexes []int
}

// SessionProgress is the read-only progress view of one session
type SessionProgress struct {
	SessionID string
	Status    SessionStatus
	Files     []FileProgress
}

// FileParts tells a resuming client which parts still need (re)authorization
type FileParts struct {
	FileID              string
	StorageKey          string
	UploadID            string
	TotalChunks         int
	UploadedPartNumbers []int
	PendingPartNumbers  []int
	UploadedParts       []Part
}
