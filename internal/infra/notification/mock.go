package notification

import (
	"context"
	"log/slog"

	"guardian/internal/domain/service"

	"github.com/google/uuid"
)

// mockPushSender accepts every push and only logs it.
type mockPushSender struct {
	logger *slog.Logger
}

// NewMockPushSender creates a push sender for development
func NewMockPushSender(logger *slog.Logger) service.PushSender {
	return &mockPushSender{logger: logger}
}

func (s *mockPushSender) SendPush(ctx context.Context, msg *service.PushMessage) (string, error) {
	id := "mock-push-" + uuid.NewString()
	s.logger.InfoContext(ctx, "[MockPush] Push accepted",
		slog.String("ticket_id", id),
		slog.String("title", msg.Title),
		slog.Any("data", msg.Data),
	)

	return id, nil
}

// mockSMSSender accepts every SMS and only logs it.
type mockSMSSender struct {
	logger *slog.Logger
}

// NewMockSMSSender creates an SMS sender for development
func NewMockSMSSender(logger *slog.Logger) service.SMSSender {
	return &mockSMSSender{logger: logger}
}

func (s *mockSMSSender) SendSMS(ctx context.Context, msg *service.SMSMessage) (string, error) {
	id := "mock-sms-" + uuid.NewString()
	s.logger.InfoContext(ctx, "[MockSMS] SMS accepted",
		slog.String("sid", id),
		slog.String("to", msg.To),
		slog.Int("length", len(msg.Body)),
	)

	return id, nil
}
