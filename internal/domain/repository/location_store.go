package repository

import (
	"context"
	"time"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationStore keeps a bounded, newest-first history of user locations.
type LocationStore interface {
	// Append records a location, trimming the history to its configured size.
	// The history expires once the user's retention passes without a new report.
	Append(ctx context.Context, userID uuid.UUID, location *entity.Location) error

	// SetRetention changes how long the user's history outlives the last report.
	SetRetention(ctx context.Context, userID uuid.UUID, retention time.Duration) error

	// Latest returns the newest recorded location, or nil when there is none.
	Latest(ctx context.Context, userID uuid.UUID) (*entity.Location, error)
}
