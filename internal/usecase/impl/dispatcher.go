package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/google/uuid"
)

// Fallback reasons reported to metrics.
const (
	fallbackNoPushAddress = "no_push_address"
	fallbackPushFailed    = "push_failed"
)

type dispatcher struct {
	directory usecase.ContactDirectory
	push      service.PushSender
	sms       service.SMSSender
	metrics   service.DispatchMetrics
	preamble  string
	logger    *slog.Logger
}

// NewDispatcher creates the per-contact channel dispatcher
func NewDispatcher(
	directory usecase.ContactDirectory,
	push service.PushSender,
	sms service.SMSSender,
	metrics service.DispatchMetrics,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ChannelDispatcher {
	return &dispatcher{
		directory: directory,
		push:      push,
		sms:       sms,
		metrics:   metrics,
		preamble:  cfg.Dispatch.SMSPreamble,
		logger:    logger,
	}
}

// Dispatch tries push when the contact is a user with a push token and falls back to SMS once.
func (d *dispatcher) Dispatch(ctx context.Context, req *usecase.DispatchRequest) (outcome *usecase.DispatchOutcome) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "Dispatch panicked",
				slog.String("alert_id", req.AlertID.String()),
				slog.Any("panic", r),
			)
			d.metrics.ObserveDelivery(string(entity.DeliveryMethodSMS), string(entity.DeliveryStatusFailed))
			outcome = &usecase.DispatchOutcome{
				Final: newLogEntry(req, entity.DeliveryMethodSMS, entity.DeliveryStatusFailed, "", fmt.Sprintf("panic: %v", r)),
			}
		}
	}()

	contactID := req.Contact.ID

	recipient, err := d.directory.ResolveRecipient(ctx, req.Contact.Phone)
	if err != nil {
		d.logger.WarnContext(ctx, "Recipient lookup failed, using SMS",
			slog.String("contact_id", contactID.String()),
			slog.Any("error", err),
		)
		recipient = nil
	}

	var superseded *entity.NotificationLog

	if recipient.HasPushAddress() {
		msg := d.pushMessage(req, recipient.PushToken)

		_, err := d.push.SendPush(ctx, msg)
		if err == nil {
			d.metrics.ObserveDelivery(string(entity.DeliveryMethodPush), string(entity.DeliveryStatusSent))

			return &usecase.DispatchOutcome{
				Final: newLogEntry(req, entity.DeliveryMethodPush, entity.DeliveryStatusSent, msg.Body, ""),
			}
		}

		d.logger.WarnContext(ctx, "Push failed, falling back to SMS",
			slog.String("contact_id", contactID.String()),
			slog.Any("error", err),
		)
		d.metrics.ObserveDelivery(string(entity.DeliveryMethodPush), string(entity.DeliveryStatusFailed))
		d.metrics.ObserveFallback(fallbackPushFailed)
		superseded = newLogEntry(req, entity.DeliveryMethodPush, entity.DeliveryStatusFailed, msg.Body, err.Error())
	} else {
		d.metrics.ObserveFallback(fallbackNoPushAddress)
	}

	text := d.smsText(req.LocationText)
	final := newLogEntry(req, entity.DeliveryMethodSMS, entity.DeliveryStatusSent, text, "")

	if _, err := d.sms.SendSMS(ctx, &service.SMSMessage{To: req.Contact.Phone, Body: text, UserID: req.UserID}); err != nil {
		d.logger.WarnContext(ctx, "SMS delivery failed",
			slog.String("contact_id", contactID.String()),
			slog.Any("error", err),
		)
		final.Status = entity.DeliveryStatusFailed
		final.Error = err.Error()
	}
	d.metrics.ObserveDelivery(string(final.Method), string(final.Status))

	return &usecase.DispatchOutcome{
		Final:      final,
		Superseded: superseded,
	}
}

func (d *dispatcher) smsText(locationText string) string {
	return d.preamble + "\nA SOS was triggered.\nLocation: " + locationText
}

func (d *dispatcher) pushMessage(req *usecase.DispatchRequest, token string) *service.PushMessage {
	location, _ := json.Marshal(req.Location)

	return &service.PushMessage{
		Token: token,
		Title: d.preamble,
		Body:  "A SOS was triggered. Location: " + req.LocationText,
		Data: map[string]string{
			"type":         constants.PushTypeSOSAlert,
			"alertId":      req.AlertID.String(),
			"userId":       req.UserID.String(),
			"location":     string(location),
			"locationText": req.LocationText,
		},
	}
}

func newLogEntry(req *usecase.DispatchRequest, method entity.DeliveryMethod, status entity.DeliveryStatus, message, errText string) *entity.NotificationLog {
	var contactID uuid.UUID
	if req.Contact != nil {
		contactID = req.Contact.ID
	}

	return &entity.NotificationLog{
		ID:        uuid.New(),
		AlertID:   req.AlertID,
		ContactID: contactID,
		Method:    method,
		SentAt:    time.Now().UTC(),
		Status:    status,
		Message:   message,
		Error:     errText,
	}
}
