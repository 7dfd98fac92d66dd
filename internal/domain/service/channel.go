package service

import (
	"context"

	"github.com/google/uuid"
)

// PushMessage is a single push notification to one device token.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// PushSender delivers push notifications. Any returned error means the message was not accepted.
type PushSender interface {
	// SendPush delivers the message and returns the provider ticket id, if any.
	SendPush(ctx context.Context, msg *PushMessage) (string, error)
}

// SMSMessage is a plain-text SMS.
type SMSMessage struct {
	To     string
	Body   string
	UserID uuid.UUID // Sender on whose behalf the SMS goes out; uuid.Nil when unknown.
}

// SMSSender delivers SMS. Any returned error means the message was not accepted.
type SMSSender interface {
	// SendSMS delivers the message and returns the provider message id.
	SendSMS(ctx context.Context, msg *SMSMessage) (string, error)
}
