package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimerStatus is the lifecycle status of a safety timer. Only active is non-terminal.
type TimerStatus string

const (
	TimerStatusActive    TimerStatus = "active"
	TimerStatusCompleted TimerStatus = "completed"
	TimerStatusExpired   TimerStatus = "expired"
	TimerStatusCancelled TimerStatus = "cancelled"
)

// IsTerminal reports whether the timer can no longer change.
func (s TimerStatus) IsTerminal() bool {
	return s != TimerStatusActive
}

// CheckpointStatus records whether a check-in happened.
type CheckpointStatus string

const (
	CheckpointStatusOK     CheckpointStatus = "ok"
	CheckpointStatusMissed CheckpointStatus = "missed"
)

// TimerCheckpoint is one check-in during a safety timer.
type TimerCheckpoint struct {
	Timestamp time.Time        `json:"timestamp"`
	Location  *Location        `json:"location,omitempty"`
	Status    CheckpointStatus `json:"status"`
}

// SafetyTimer is a countdown the user expects to stop before it runs out.
type SafetyTimer struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"user_id"`
	DurationMinutes int                `json:"duration_minutes"`
	StartTime       time.Time          `json:"start_time"`
	EndTime         time.Time          `json:"end_time"` // StartTime + DurationMinutes.
	Status          TimerStatus        `json:"status"`
	Checkpoints     []*TimerCheckpoint `json:"checkpoints"`
	Route           []Location         `json:"route,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// Duration returns the configured countdown length.
func (t *SafetyTimer) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}
