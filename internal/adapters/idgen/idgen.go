package idgen

import (
	"fmt"

	"partflow/internal/core/port"

	"github.com/google/uuid"
)

// Allocator hands out prefixed random identifiers. UUIDs make the ids
// collision-free under concurrent use without any shared counter state.
type Allocator struct{}

// NewAllocator creates an Allocator
func NewAllocator() port.IDAllocator {
	return Allocator{}
}

func (Allocator) SessionID() string {
	return fmt.Sprintf("sess_%s", uuid.NewString())
}

func (Allocator) FileID() string {
	return fmt.Sprintf("file_%s", uuid.NewString())
}

func (Allocator) ChunkID() string {
	return fmt.Sprintf("chunk_%s", uuid.NewString())
}
