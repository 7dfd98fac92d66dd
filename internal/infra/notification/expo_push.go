package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultExpoEndpoint = "https://exp.host/--/api/v2/push/send"
	defaultPushTimeout  = 10 * time.Second
)

// expoSender delivers push notifications through the Expo push service.
type expoSender struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
}

type expoPushRequest struct {
	To    string            `json:"to"`
	Sound string            `json:"sound"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// expoPushResponse is the ticket returned for a single message.
type expoPushResponse struct {
	Data struct {
		Status  string `json:"status"`
		ID      string `json:"id"`
		Message string `json:"message"`
		Details struct {
			Error string `json:"error"`
		} `json:"details"`
	} `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// NewExpoSender creates an Expo push sender
func NewExpoSender(endpoint, accessToken string, timeout time.Duration) service.PushSender {
	if endpoint == "" {
		endpoint = defaultExpoEndpoint
	}
	if timeout <= 0 {
		timeout = defaultPushTimeout
	}

	return &expoSender{
		endpoint:    endpoint,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// SendPush posts one message. A non-2xx status or a ticket with status other than ok is a failure.
func (s *expoSender) SendPush(ctx context.Context, msg *service.PushMessage) (string, error) {
	body, err := json.Marshal(expoPushRequest{
		To:    msg.Token,
		Sound: "default",
		Title: msg.Title,
		Body:  msg.Body,
		Data:  msg.Data,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if s.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.accessToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "expo push request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.Wrap(err, "failed to read expo response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("expo push returned status %d: %s", resp.StatusCode, string(raw))
	}

	var ticket expoPushResponse
	if err := json.Unmarshal(raw, &ticket); err != nil {
		return "", errors.Wrap(err, "failed to decode expo response")
	}

	if len(ticket.Errors) > 0 {
		return "", errors.Errorf("expo push rejected: %s", ticket.Errors[0].Message)
	}
	if ticket.Data.Status != "ok" {
		reason := ticket.Data.Message
		if ticket.Data.Details.Error != "" {
			reason = ticket.Data.Details.Error + ": " + reason
		}

		return "", errors.Errorf("expo push ticket %q: %s", ticket.Data.Status, reason)
	}

	return ticket.Data.ID, nil
}
