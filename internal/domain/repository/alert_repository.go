package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when an alert is not found.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository is the durable source of truth for alerts.
type AlertRepository interface {
	// CreateAlert persists a new alert. ID and Timestamp must already be set.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindAlertByID retrieves an alert with its notification log.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// FindAlertsByUser retrieves a user's alerts, newest first.
	FindAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// FindActiveAlertsByUser retrieves a user's alerts whose status is active.
	FindActiveAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// UpdateAlert applies the present fields of the patch and returns the updated alert.
	// A status change is only applied while the stored status is active.
	UpdateAlert(ctx context.Context, id uuid.UUID, patch *entity.AlertPatch) (*entity.Alert, error)

	// AppendNotificationLog inserts one delivery outcome without touching other entries.
	AppendNotificationLog(ctx context.Context, entry *entity.NotificationLog) error
}
