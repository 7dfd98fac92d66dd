package entity

import (
	"time"

	"github.com/google/uuid"
)

// SMSLog records every SMS handed to a provider.
type SMSLog struct {
	ID         uuid.UUID      `json:"id"`
	UserID     *uuid.UUID     `json:"user_id,omitempty"` // Sender on whose behalf the SMS was sent.
	To         string         `json:"to"`
	Message    string         `json:"message"`
	Status     DeliveryStatus `json:"status"`
	ProviderID string         `json:"provider_id,omitempty"` // Provider message id (sid).
	Error      string         `json:"error,omitempty"`
	Mock       bool           `json:"mock"` // True when no real provider was involved.
	SentAt     time.Time      `json:"sent_at"`
}
