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

const defaultSMSTimeout = 15 * time.Second

// httpSMSSender posts SMS to the relay endpoint that fronts the SMS provider.
type httpSMSSender struct {
	endpoint   string
	httpClient *http.Client
}

type smsRelayRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type smsRelayResponse struct {
	Success bool   `json:"success"`
	SID     string `json:"sid"`
	Error   string `json:"error"`
}

// NewHTTPSMSSender creates an SMS sender backed by the relay endpoint
func NewHTTPSMSSender(endpoint string, timeout time.Duration) service.SMSSender {
	if timeout <= 0 {
		timeout = defaultSMSTimeout
	}

	return &httpSMSSender{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendSMS posts {to, message}. Success requires a 2xx status and a provider message id.
func (s *httpSMSSender) SendSMS(ctx context.Context, msg *service.SMSMessage) (string, error) {
	body, err := json.Marshal(smsRelayRequest{To: msg.To, Message: msg.Body})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "sms relay request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.Wrap(err, "failed to read sms relay response")
	}

	var result smsRelayResponse
	_ = json.Unmarshal(raw, &result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Error != "" {
			return "", errors.Errorf("sms relay returned status %d: %s", resp.StatusCode, result.Error)
		}

		return "", errors.Errorf("sms relay returned status %d", resp.StatusCode)
	}

	if result.SID == "" {
		return "", errors.New("sms relay response has no message id")
	}

	return result.SID, nil
}
