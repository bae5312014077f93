package domain

import "time"

// SessionStatus represents the status of an upload session
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusPaused     SessionStatus = "paused"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusCancelled  SessionStatus = "cancelled"
	SessionStatusFailed     SessionStatus = "failed"
)

// Terminal reports whether the status permits no further transitions
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled || s == SessionStatusFailed
}

// Session represents one user's upload campaign
type Session struct {
	ID        string
	UserID    string
	Status    SessionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
