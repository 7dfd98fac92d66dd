package notification

import (
	"context"
	"testing"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	mockRepo "guardian/internal/mocks/repository"
	mockService "guardian/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDevicePromptNotifier_NotifyPrompt(t *testing.T) {
	devices := mockRepo.NewMockDeviceRepository(t)
	push := mockService.NewMockPushSender(t)
	notifier := NewDevicePromptNotifier(devices, push, newTestLogger())

	ctx := context.Background()
	prompt := &service.TimerPrompt{
		TimerID: uuid.New(),
		UserID:  uuid.New(),
		Title:   "Safety check-in",
		Body:    "Tap to confirm you're safe. If not, use SOS.",
	}

	devices.EXPECT().
		FindLatestActiveDevice(ctx, prompt.UserID).
		Return(&entity.UserDevice{PushToken: "token-1", IsActive: true}, nil)
	push.EXPECT().
		SendPush(ctx, mock.MatchedBy(func(m *service.PushMessage) bool {
			return m.Token == "token-1" &&
				m.Title == prompt.Title &&
				m.Data["type"] == constants.PushTypeTimerPrompt &&
				m.Data["timerId"] == prompt.TimerID.String()
		})).
		Return("ticket", nil)

	require.NoError(t, notifier.NotifyPrompt(ctx, prompt))
}

func TestDevicePromptNotifier_NoDevice(t *testing.T) {
	devices := mockRepo.NewMockDeviceRepository(t)
	push := mockService.NewMockPushSender(t)
	notifier := NewDevicePromptNotifier(devices, push, newTestLogger())

	ctx := context.Background()
	prompt := &service.TimerPrompt{UserID: uuid.New()}

	devices.EXPECT().
		FindLatestActiveDevice(ctx, prompt.UserID).
		Return(nil, repository.ErrDeviceNotFound)

	assert.NoError(t, notifier.NotifyPrompt(ctx, prompt))
}

func TestDevicePromptNotifier_PushFails(t *testing.T) {
	devices := mockRepo.NewMockDeviceRepository(t)
	push := mockService.NewMockPushSender(t)
	notifier := NewDevicePromptNotifier(devices, push, newTestLogger())

	ctx := context.Background()
	prompt := &service.TimerPrompt{UserID: uuid.New()}

	devices.EXPECT().
		FindLatestActiveDevice(ctx, prompt.UserID).
		Return(&entity.UserDevice{PushToken: "token-1", IsActive: true}, nil)
	push.EXPECT().SendPush(ctx, mock.Anything).Return("", errors.New("expo down"))

	assert.Error(t, notifier.NotifyPrompt(ctx, prompt))
}

func TestDevicePromptNotifier_DeviceWithoutToken(t *testing.T) {
	devices := mockRepo.NewMockDeviceRepository(t)
	push := mockService.NewMockPushSender(t)
	notifier := NewDevicePromptNotifier(devices, push, newTestLogger())

	ctx := context.Background()
	prompt := &service.TimerPrompt{UserID: uuid.New()}

	devices.EXPECT().
		FindLatestActiveDevice(ctx, prompt.UserID).
		Return(&entity.UserDevice{IsActive: true}, nil)

	assert.NoError(t, notifier.NotifyPrompt(ctx, prompt))
}
