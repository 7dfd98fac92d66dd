package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"guardian/internal/domain/lifecycle"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/alert-events"

// PushEnvelope is the body Google Pub/Sub posts to push subscribers. The local
// publisher posts the same shape so a subscriber runs unchanged in development.
type PushEnvelope struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// PushedMessage is one message inside a PushEnvelope. Data is base64 encoded.
type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime string            `json:"publishTime"`
}

type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher posts alert events straight to a subscriber endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: lifecycle.DefaultTimeout},
		logger:   logger,
	}
}

func envelopeFor(event *service.AlertEvent, msg *alertMessage, now time.Time) PushEnvelope {
	return PushEnvelope{
		Subscription: localSubscription,
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.Data),
			Attributes:  msg.Attributes,
			MessageID:   event.AlertID + ":" + event.Type,
			OrderingKey: msg.OrderingKey,
			PublishTime: now.UTC().Format(time.RFC3339),
		},
	}
}

func (p *localHTTPPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	msg, err := newAlertMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelopeFor(event, msg, time.Now()))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to post alert event")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("alert event subscriber answered %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Alert event posted",
		slog.String("endpoint", p.endpoint),
		slog.String("type", event.Type),
		slog.String("alert_id", event.AlertID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error { return nil }
