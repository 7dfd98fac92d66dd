package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType identifies what produced an alert.
type AlertType string

const (
	AlertTypeSOS    AlertType = "sos"
	AlertTypeTimer  AlertType = "timer"
	AlertTypeManual AlertType = "manual"
)

// IsValid reports whether the alert type is known.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeSOS, AlertTypeTimer, AlertTypeManual:
		return true
	}

	return false
}

// AlertStatus is the lifecycle status of an alert. Only active is non-terminal.
type AlertStatus string

const (
	AlertStatusActive     AlertStatus = "active"
	AlertStatusResolved   AlertStatus = "resolved"
	AlertStatusFalseAlarm AlertStatus = "false_alarm"
)

// IsTerminal reports whether no further transition is allowed.
func (s AlertStatus) IsTerminal() bool {
	return s == AlertStatusResolved || s == AlertStatusFalseAlarm
}

// DeliveryMethod is the channel used to reach a contact.
type DeliveryMethod string

const (
	DeliveryMethodSMS  DeliveryMethod = "sms"
	DeliveryMethodPush DeliveryMethod = "push"
)

// DeliveryStatus is the outcome of one delivery attempt.
type DeliveryStatus string

const (
	DeliveryStatusSent      DeliveryStatus = "sent"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// Alert is the durable record of a request for help.
type Alert struct {
	ID                uuid.UUID          `json:"id"`
	UserID            uuid.UUID          `json:"user_id"`
	Type              AlertType          `json:"type"`
	Location          Location           `json:"location"`
	Timestamp         time.Time          `json:"timestamp"`          // Server-assigned creation time.
	Status            AlertStatus        `json:"status"`             // active, resolved or false_alarm.
	ContactsNotified  []uuid.UUID        `json:"contacts_notified"`  // Contact snapshot taken at trigger time, never updated.
	NotificationsSent []*NotificationLog `json:"notifications_sent"` // Append-only delivery log.
	ResolvedAt        *time.Time         `json:"resolved_at,omitempty"`
	ResolvedBy        *uuid.UUID         `json:"resolved_by,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
}

// AlertDraft carries what the caller decides when creating an alert.
type AlertDraft struct {
	UserID           uuid.UUID
	Type             AlertType
	Location         Location
	ContactsNotified []uuid.UUID
}

// AlertPatch is a partial update. Nil fields keep the stored value.
type AlertPatch struct {
	Status     *AlertStatus
	ResolvedAt *time.Time
	ResolvedBy *uuid.UUID
	Notes      *string
}

// NotificationLog records the outcome of delivering an alert to one contact.
type NotificationLog struct {
	ID        uuid.UUID      `json:"id"`
	AlertID   uuid.UUID      `json:"alert_id"`
	ContactID uuid.UUID      `json:"contact_id"`
	Method    DeliveryMethod `json:"method"`
	SentAt    time.Time      `json:"sent_at"`
	Status    DeliveryStatus `json:"status"`
	Message   string         `json:"message"`
	Error     string         `json:"error,omitempty"`
}

// LiveAlert is the disposable projection of an alert read by real-time observers.
type LiveAlert struct {
	AlertID    uuid.UUID   `json:"alert_id"`
	UserID     uuid.UUID   `json:"user_id"`
	Location   Location    `json:"location"`
	Timestamp  time.Time   `json:"timestamp"`
	Status     AlertStatus `json:"status"`
	ResolvedAt *time.Time  `json:"resolved_at,omitempty"`
}

// ToLiveAlert builds the projection of the alert.
func (a *Alert) ToLiveAlert() *LiveAlert {
	return &LiveAlert{
		AlertID:    a.ID,
		UserID:     a.UserID,
		Location:   a.Location,
		Timestamp:  a.Timestamp,
		Status:     a.Status,
		ResolvedAt: a.ResolvedAt,
	}
}
