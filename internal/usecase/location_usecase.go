package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationResolver supplies the location of a user that needs help.
type LocationResolver interface {
	// CurrentLocation prefers the supplied fix, then a recent stored one. Nil when neither exists.
	CurrentLocation(ctx context.Context, userID uuid.UUID, supplied *entity.Location) *entity.Location

	// SaveUserLocation records a fix reported by the client.
	SaveUserLocation(ctx context.Context, userID uuid.UUID, location *entity.Location) error
}
