package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertLedger owns the durable alert record and its live projection.
type AlertLedger interface {
	// CreateAlert persists a new active alert and publishes its projection.
	CreateAlert(ctx context.Context, draft *entity.AlertDraft) (uuid.UUID, error)

	// UpdateAlertStatus applies the patch, mirrors status into the projection and
	// returns the stored alert. A closed alert is returned as it was.
	UpdateAlertStatus(ctx context.Context, alertID uuid.UUID, patch *entity.AlertPatch) (*entity.Alert, error)

	// AppendNotificationLog records one delivery outcome.
	AppendNotificationLog(ctx context.Context, alertID uuid.UUID, entry *entity.NotificationLog) error

	// GetAlert returns one alert with its delivery log.
	GetAlert(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error)

	// ListAlerts returns the user's alerts, newest first.
	ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error)

	// SubscribeActiveAlerts streams projection changes of the user's alerts.
	// The returned unsubscribe is idempotent and safe to call from any goroutine.
	SubscribeActiveAlerts(ctx context.Context, userID uuid.UUID, onChange func(*entity.LiveAlert)) (func(), error)
}

// TriggerAlertInput defines the data required to raise an alert.
type TriggerAlertInput struct {
	Type     entity.AlertType `json:"type"`
	Location *entity.Location `json:"location,omitempty"` // Client-supplied fix, optional.
}

// TriggerResult is returned as soon as the alert is recorded.
type TriggerResult struct {
	AlertID          uuid.UUID `json:"alert_id"`
	ContactsNotified int       `json:"contacts_notified"`
	// Warning is set when the alert was created without reading the contacts.
	Warning error `json:"-"`
}

// ResolveAlertInput defines how an alert is closed.
type ResolveAlertInput struct {
	Status entity.AlertStatus `json:"status"` // resolved or false_alarm; resolved when empty.
	Notes  *string            `json:"notes,omitempty"`
}

// AlertOrchestrator is the entry point for raising and closing alerts.
type AlertOrchestrator interface {
	// TriggerAlert records an alert and starts delivery in the background.
	TriggerAlert(ctx context.Context, userID uuid.UUID, input *TriggerAlertInput) (*TriggerResult, error)

	// ResolveAlert closes an alert. Closing an already closed alert is a no-op.
	ResolveAlert(ctx context.Context, userID, alertID uuid.UUID, input *ResolveAlertInput) error

	// ActiveAlert returns the tracked active alert of the user.
	ActiveAlert(userID uuid.UUID) (uuid.UUID, bool)

	// Shutdown refuses new triggers and waits for in-flight deliveries.
	Shutdown(ctx context.Context) error
}
