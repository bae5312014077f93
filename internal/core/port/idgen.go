package port

// IDAllocator produces previously-unused, human-legible identifiers,
// one method per entity class. Implementations must not collide across
// concurrent callers; ordering is not required.
type IDAllocator interface {
	SessionID() string
	FileID() string
	ChunkID() string
}
