package notification

import (
	"context"
	"log/slog"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for the channel senders, injected by Fx
type SenderParams struct {
	fx.In

	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	SMSLogs repository.SMSLogRepository
}

// NewPushSender creates the push channel selected by configuration
func NewPushSender(params SenderParams) (service.PushSender, error) {
	cfg := params.Config.Push
	logger := params.Logger

	switch cfg.Provider {
	case "", constants.PushProviderExpo:
		logger.Info("Using Expo push sender")

		return NewExpoSender(cfg.ExpoEndpoint, cfg.AccessToken, cfg.Timeout), nil

	case constants.PushProviderFCM:
		fb := params.Config.Firebase
		if fb == nil {
			return nil, errors.New("firebase configuration is required for fcm provider")
		}
		logger.Info("Using Firebase push sender",
			slog.String("project_id", fb.ProjectID),
		)

		return NewFCMSender(params.Ctx, fb.ProjectID, fb.CredentialsPath)

	case constants.PushProviderMock:
		logger.Warn("Using mock push sender, no push will be delivered")

		return NewMockPushSender(logger), nil

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// NewSMSSender creates the SMS channel selected by configuration, wrapped with sms_logs recording
func NewSMSSender(params SenderParams) (service.SMSSender, error) {
	cfg := params.Config.SMS
	logger := params.Logger

	var sender service.SMSSender
	mock := false

	switch cfg.Provider {
	case constants.SMSProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http sms provider")
		}
		logger.Info("Using SMS relay sender",
			slog.String("endpoint", cfg.Endpoint),
		)

		sender = NewHTTPSMSSender(cfg.Endpoint, cfg.Timeout)

	case "", constants.SMSProviderMock:
		logger.Warn("Using mock SMS sender, no SMS will be delivered")

		sender = NewMockSMSSender(logger)
		mock = true

	default:
		return nil, errors.Errorf("unknown sms provider: %s", cfg.Provider)
	}

	return NewRecordingSMSSender(sender, params.SMSLogs, mock, logger), nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewPushSender,
		NewSMSSender,
		NewDevicePromptNotifier,
	),
)
