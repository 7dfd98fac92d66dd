package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchRequest describes one contact to reach for one alert.
type DispatchRequest struct {
	AlertID      uuid.UUID
	UserID       uuid.UUID
	Contact      *entity.EmergencyContact
	Location     entity.Location
	LocationText string
}

// DispatchOutcome is the result of reaching one contact.
type DispatchOutcome struct {
	// Final is the entry to record for the contact. Never nil.
	Final *entity.NotificationLog
	// Superseded is the failed push attempt replaced by an SMS fallback, if any.
	Superseded *entity.NotificationLog
}

// ChannelDispatcher delivers an alert to one contact over push or SMS.
type ChannelDispatcher interface {
	// Dispatch never fails. Delivery problems are reported as a failed outcome.
	Dispatch(ctx context.Context, req *DispatchRequest) *DispatchOutcome
}
