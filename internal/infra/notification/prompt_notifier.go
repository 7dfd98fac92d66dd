package notification

import (
	"context"
	"log/slog"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

// devicePromptNotifier shows timer prompts on the owner's most recent active device.
type devicePromptNotifier struct {
	devices repository.DeviceRepository
	push    service.PushSender
	logger  *slog.Logger
}

// NewDevicePromptNotifier creates a PromptNotifier that pushes to the owner's device
func NewDevicePromptNotifier(devices repository.DeviceRepository, push service.PushSender, logger *slog.Logger) service.PromptNotifier {
	return &devicePromptNotifier{
		devices: devices,
		push:    push,
		logger:  logger,
	}
}

func (n *devicePromptNotifier) NotifyPrompt(ctx context.Context, prompt *service.TimerPrompt) error {
	device, err := n.devices.FindLatestActiveDevice(ctx, prompt.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			n.logger.DebugContext(ctx, "No active device for timer prompt",
				slog.String("user_id", prompt.UserID.String()),
			)

			return nil
		}

		return errors.Wrap(err, "failed to find device for timer prompt")
	}
	if !device.CanReceivePush() {
		return nil
	}

	_, err = n.push.SendPush(ctx, &service.PushMessage{
		Token: device.PushToken,
		Title: prompt.Title,
		Body:  prompt.Body,
		Data: map[string]string{
			"type":    constants.PushTypeTimerPrompt,
			"timerId": prompt.TimerID.String(),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to push timer prompt")
	}

	return nil
}
