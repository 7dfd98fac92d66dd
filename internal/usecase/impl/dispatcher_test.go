package impl

import (
	"context"
	"testing"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	mockService "guardian/internal/mocks/service"
	mockUsecase "guardian/internal/mocks/usecase"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixtures struct {
	dispatcher usecase.ChannelDispatcher
	directory  *mockUsecase.MockContactDirectory
	push       *mockService.MockPushSender
	sms        *mockService.MockSMSSender
	metrics    *mockService.MockDispatchMetrics
}

func createTestDispatcher(t *testing.T) dispatcherFixtures {
	fx := dispatcherFixtures{
		directory: mockUsecase.NewMockContactDirectory(t),
		push:      mockService.NewMockPushSender(t),
		sms:       mockService.NewMockSMSSender(t),
		metrics:   mockService.NewMockDispatchMetrics(t),
	}
	cfg := &config.Config{Dispatch: &config.DispatchConfig{SMSPreamble: "SOS Guardian Alert!"}}
	fx.dispatcher = NewDispatcher(fx.directory, fx.push, fx.sms, fx.metrics, cfg, newTestLogger())

	return fx
}

func newDispatchRequest() *usecase.DispatchRequest {
	return &usecase.DispatchRequest{
		AlertID:      uuid.New(),
		UserID:       uuid.New(),
		Contact:      &entity.EmergencyContact{ID: uuid.New(), Phone: "+15550001111", Name: "Ana"},
		Location:     entity.Location{Latitude: 25.033, Longitude: 121.5654},
		LocationText: "Taipei 101, Xinyi District",
	}
}

const wantSMSText = "SOS Guardian Alert!\nA SOS was triggered.\nLocation: Taipei 101, Xinyi District"

func TestDispatcher_PushDelivered(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	req := newDispatchRequest()

	fx.directory.EXPECT().ResolveRecipient(ctx, "+15550001111").
		Return(&entity.Recipient{UserID: uuid.New(), PushToken: "ExponentPushToken[abc]"}, nil)
	fx.push.EXPECT().
		SendPush(ctx, mock.MatchedBy(func(m *service.PushMessage) bool {
			return m.Token == "ExponentPushToken[abc]" &&
				m.Title == "SOS Guardian Alert!" &&
				m.Body == "A SOS was triggered. Location: Taipei 101, Xinyi District" &&
				m.Data["type"] == constants.PushTypeSOSAlert &&
				m.Data["alertId"] == req.AlertID.String() &&
				m.Data["userId"] == req.UserID.String() &&
				m.Data["locationText"] == req.LocationText
		})).
		Return("ticket-1", nil)
	fx.metrics.EXPECT().ObserveDelivery("push", "sent").Return()

	outcome := fx.dispatcher.Dispatch(ctx, req)

	require.NotNil(t, outcome.Final)
	assert.Nil(t, outcome.Superseded)
	assert.Equal(t, entity.DeliveryMethodPush, outcome.Final.Method)
	assert.Equal(t, entity.DeliveryStatusSent, outcome.Final.Status)
	assert.Equal(t, req.AlertID, outcome.Final.AlertID)
	assert.Equal(t, req.Contact.ID, outcome.Final.ContactID)
	assert.Empty(t, outcome.Final.Error)
}

func TestDispatcher_NoPushAddressUsesSMS(t *testing.T) {
	tests := []struct {
		name      string
		recipient *entity.Recipient
	}{
		{name: "not a registered user"},
		{name: "registered user without token", recipient: &entity.Recipient{UserID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatcher(t)

			ctx := context.Background()
			req := newDispatchRequest()

			fx.directory.EXPECT().ResolveRecipient(ctx, "+15550001111").Return(tt.recipient, nil)
			fx.metrics.EXPECT().ObserveFallback(fallbackNoPushAddress).Return()
			fx.sms.EXPECT().
				SendSMS(ctx, &service.SMSMessage{To: "+15550001111", Body: wantSMSText, UserID: req.UserID}).
				Return("sid-1", nil)
			fx.metrics.EXPECT().ObserveDelivery("sms", "sent").Return()

			outcome := fx.dispatcher.Dispatch(ctx, req)

			assert.Nil(t, outcome.Superseded)
			assert.Equal(t, entity.DeliveryMethodSMS, outcome.Final.Method)
			assert.Equal(t, entity.DeliveryStatusSent, outcome.Final.Status)
			assert.Equal(t, wantSMSText, outcome.Final.Message)
		})
	}
}

func TestDispatcher_PushFailureFallsBackToSMS(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	req := newDispatchRequest()

	fx.directory.EXPECT().ResolveRecipient(ctx, "+15550001111").
		Return(&entity.Recipient{UserID: uuid.New(), PushToken: "token"}, nil)
	fx.push.EXPECT().SendPush(ctx, mock.Anything).Return("", errors.New("DeviceNotRegistered"))
	fx.metrics.EXPECT().ObserveDelivery("push", "failed").Return()
	fx.metrics.EXPECT().ObserveFallback(fallbackPushFailed).Return()
	fx.sms.EXPECT().SendSMS(ctx, mock.Anything).Return("sid-2", nil)
	fx.metrics.EXPECT().ObserveDelivery("sms", "sent").Return()

	outcome := fx.dispatcher.Dispatch(ctx, req)

	require.NotNil(t, outcome.Superseded)
	assert.Equal(t, entity.DeliveryMethodPush, outcome.Superseded.Method)
	assert.Equal(t, entity.DeliveryStatusFailed, outcome.Superseded.Status)
	assert.Equal(t, "DeviceNotRegistered", outcome.Superseded.Error)

	assert.Equal(t, entity.DeliveryMethodSMS, outcome.Final.Method)
	assert.Equal(t, entity.DeliveryStatusSent, outcome.Final.Status)
	assert.NotEqual(t, outcome.Superseded.ID, outcome.Final.ID)
}

func TestDispatcher_SMSFailure(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	req := newDispatchRequest()

	fx.directory.EXPECT().ResolveRecipient(ctx, "+15550001111").Return(nil, nil)
	fx.metrics.EXPECT().ObserveFallback(fallbackNoPushAddress).Return()
	fx.sms.EXPECT().SendSMS(ctx, mock.Anything).Return("", errors.New("relay returned 503"))
	fx.metrics.EXPECT().ObserveDelivery("sms", "failed").Return()

	outcome := fx.dispatcher.Dispatch(ctx, req)

	assert.Equal(t, entity.DeliveryMethodSMS, outcome.Final.Method)
	assert.Equal(t, entity.DeliveryStatusFailed, outcome.Final.Status)
	assert.Equal(t, "relay returned 503", outcome.Final.Error)
	assert.Equal(t, wantSMSText, outcome.Final.Message)
}

func TestDispatcher_LookupFailureUsesSMS(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	req := newDispatchRequest()

	fx.directory.EXPECT().ResolveRecipient(ctx, "+15550001111").
		Return(nil, domainerrors.ErrDirectoryUnavailable.WithDetails("connection reset"))
	fx.metrics.EXPECT().ObserveFallback(fallbackNoPushAddress).Return()
	fx.sms.EXPECT().SendSMS(ctx, mock.Anything).Return("sid-3", nil)
	fx.metrics.EXPECT().ObserveDelivery("sms", "sent").Return()

	outcome := fx.dispatcher.Dispatch(ctx, req)

	assert.Equal(t, entity.DeliveryMethodSMS, outcome.Final.Method)
	assert.Equal(t, entity.DeliveryStatusSent, outcome.Final.Status)
}

func TestDispatcher_RecoversFromPanic(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	req := newDispatchRequest()

	fx.directory.EXPECT().ResolveRecipient(ctx, "+15550001111").Return(nil, nil)
	fx.metrics.EXPECT().ObserveFallback(fallbackNoPushAddress).Return()
	fx.sms.EXPECT().SendSMS(ctx, mock.Anything).
		RunAndReturn(func(context.Context, *service.SMSMessage) (string, error) {
			panic("provider client is nil")
		})
	fx.metrics.EXPECT().ObserveDelivery("sms", "failed").Return()

	var outcome *usecase.DispatchOutcome
	require.NotPanics(t, func() {
		outcome = fx.dispatcher.Dispatch(ctx, req)
	})

	require.NotNil(t, outcome)
	assert.Equal(t, entity.DeliveryMethodSMS, outcome.Final.Method)
	assert.Equal(t, entity.DeliveryStatusFailed, outcome.Final.Status)
	assert.Contains(t, outcome.Final.Error, "provider client is nil")
	assert.Equal(t, req.Contact.ID, outcome.Final.ContactID)
}
