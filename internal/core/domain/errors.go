package domain

import "errors"

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrSessionNotFound is an error thrown when session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrFileNotFound is an error thrown when file is not found
var ErrFileNotFound = errors.New("file not found")

// ErrChunkNotFound is an error thrown when chunk is not found
var ErrChunkNotFound = errors.New("chunk not found")

// ErrSessionNotMutable is an error thrown when a session in a terminal status is mutated
var ErrSessionNotMutable = errors.New("session is not mutable")

// ErrFileNotMutable is an error thrown when a file in a terminal status is mutated
var ErrFileNotMutable = errors.New("file is not mutable")

// ErrFilePaused is an error thrown when a part is requested for a paused file
var ErrFilePaused = errors.New("file is paused, resume before presigning parts")

// ErrSessionIncomplete is an error thrown when a session is completed before all files are uploaded
var ErrSessionIncomplete = errors.New("not all files uploaded")

// ErrInvalidChunkCount is an error thrown when a file is registered with no chunks
var ErrInvalidChunkCount = errors.New("invalid chunk count")

// ErrInvalidPartNumber is an error thrown when a part number is outside the chunk plan
var ErrInvalidPartNumber = errors.New("invalid part number")

// ErrUploadIDMismatch is an error thrown when a completion names the wrong remote upload
var ErrUploadIDMismatch = errors.New("uploadId mismatch")

// ErrMissingReceipt is an error thrown when a completion lacks a receipt for a planned chunk
var ErrMissingReceipt = errors.New("missing receipt")

// ErrRemoteUnavailable is an error thrown when the blob store cannot be reached
var ErrRemoteUnavailable = errors.New("remote store unavailable")

// ErrRemoteRejected is an error thrown when the blob store rejects a request
var ErrRemoteRejected = errors.New("remote store rejected request")

// ErrPartMismatch is an error thrown when the blob store disagrees with the submitted parts
var ErrPartMismatch = errors.New("part mismatch")
