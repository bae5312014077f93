package idgen_test

import (
	"strings"
	"testing"

	"partflow/internal/adapters/idgen"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_PrefixedUniqueIDs(t *testing.T) {
	ids := idgen.NewAllocator()

	assert.True(t, strings.HasPrefix(ids.SessionID(), "sess_"))
	assert.True(t, strings.HasPrefix(ids.FileID(), "file_"))
	assert.True(t, strings.HasPrefix(ids.ChunkID(), "chunk_"))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := ids.ChunkID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
