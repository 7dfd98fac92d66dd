package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// SafetyTimerEngine runs safety timers and their check-in prompts.
type SafetyTimerEngine interface {
	// StartTimer persists an active timer and schedules its midpoint and end prompts.
	StartTimer(ctx context.Context, userID uuid.UUID, durationMinutes int) (*entity.SafetyTimer, error)

	// CancelTimer stops a running timer as cancelled.
	CancelTimer(ctx context.Context, userID, timerID uuid.UUID) error

	// CompleteTimer stops a running timer as completed.
	CompleteTimer(ctx context.Context, userID, timerID uuid.UUID) error

	// RecordCheckIn appends an ok checkpoint to a running timer.
	RecordCheckIn(ctx context.Context, userID, timerID uuid.UUID, location *entity.Location) error

	// ExpireOverdue marks running timers past their end time as expired.
	ExpireOverdue(ctx context.Context) (int, error)

	// Stop drops every pending prompt.
	Stop()
}
