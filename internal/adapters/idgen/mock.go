package idgen

import (
	"github.com/stretchr/testify/mock"
)

// MockIDAllocator is a mock implementation of IDAllocator
type MockIDAllocator struct {
	mock.Mock
}

// NewMockIDAllocator creates a new MockIDAllocator
func NewMockIDAllocator() *MockIDAllocator {
	return &MockIDAllocator{}
}

func (m *MockIDAllocator) SessionID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIDAllocator) FileID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIDAllocator) ChunkID() string {
	args := m.Called()
	return args.String(0)
}
