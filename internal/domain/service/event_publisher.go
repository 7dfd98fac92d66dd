package service

import (
	"context"
	"time"
)

// Alert event types
const (
	AlertEventTriggered = "alert.triggered"
	AlertEventResolved  = "alert.resolved"
)

// AlertEvent is published whenever an alert changes state
type AlertEvent struct {
	RequestID        string    `json:"request_id,omitempty"` // For distributed tracing
	Type             string    `json:"type"`
	AlertID          string    `json:"alert_id"`
	UserID           string    `json:"user_id"`
	AlertType        string    `json:"alert_type"`
	Status           string    `json:"status"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	ContactsNotified int       `json:"contacts_notified"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert lifecycle event
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
