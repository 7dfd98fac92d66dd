package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// LiveAlertStore is the low-latency projection of alerts for real-time observers.
// Writers overwrite by alert id and never read before writing.
type LiveAlertStore interface {
	// Put overwrites the projection of one alert and notifies subscribers of its user.
	// A terminal projection is never taken back to active; such a write is dropped.
	Put(ctx context.Context, alert *entity.LiveAlert) error

	// ListActive returns the projected alerts of a user that are still active.
	ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.LiveAlert, error)

	// Subscribe delivers every projection change of the user's alerts until the
	// returned function is called. The returned function is idempotent.
	Subscribe(ctx context.Context, userID uuid.UUID, onChange func(*entity.LiveAlert)) (func(), error)
}
