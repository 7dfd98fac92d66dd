package repository

import (
	"context"
	"time"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for timer persistence.
var (
	// ErrTimerNotFound is returned when a timer is not found.
	ErrTimerNotFound = errors.New("timer not found")
	// ErrTimerNotActive is returned when a change requires an active timer.
	ErrTimerNotActive = errors.New("timer is not active")
)

// TimerRepository defines the persistence operations for safety timers.
type TimerRepository interface {
	// CreateTimer persists a new timer.
	CreateTimer(ctx context.Context, timer *entity.SafetyTimer) error

	// FindTimerByID retrieves a timer by its unique ID.
	FindTimerByID(ctx context.Context, id uuid.UUID) (*entity.SafetyTimer, error)

	// FindActiveTimerByUser retrieves the running timer of a user.
	FindActiveTimerByUser(ctx context.Context, userID uuid.UUID) (*entity.SafetyTimer, error)

	// FindOverdueTimers retrieves active timers whose end time is before now.
	FindOverdueTimers(ctx context.Context, now time.Time) ([]*entity.SafetyTimer, error)

	// UpdateTimerStatus moves an active timer to a terminal status.
	UpdateTimerStatus(ctx context.Context, id uuid.UUID, status entity.TimerStatus) error

	// AppendCheckpoint adds a checkpoint to an active timer.
	AppendCheckpoint(ctx context.Context, id uuid.UUID, checkpoint *entity.TimerCheckpoint) error
}
