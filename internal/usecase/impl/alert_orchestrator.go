package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/lifecycle"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"
	"guardian/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// alertState is where a user stands in the alert lifecycle. A user without an entry is idle.
type alertState int

const (
	stateTriggering alertState = iota + 1
	stateActive
	stateResolving
)

type userAlert struct {
	state   alertState
	alertID uuid.UUID
}

// OrchestratorParams groups the collaborators of the alert orchestrator
type OrchestratorParams struct {
	Ledger     usecase.AlertLedger
	Directory  usecase.ContactDirectory
	Dispatcher usecase.ChannelDispatcher
	Locations  usecase.LocationResolver
	Geocoder   service.Geocoder
	Publisher  service.EventPublisher
	Metrics    service.DispatchMetrics
	Config     *config.Config
	Logger     *slog.Logger
}

type alertOrchestrator struct {
	ledger     usecase.AlertLedger
	directory  usecase.ContactDirectory
	dispatcher usecase.ChannelDispatcher
	locations  usecase.LocationResolver
	geocoder   service.Geocoder
	publisher  service.EventPublisher
	metrics    service.DispatchMetrics
	dispatch   config.DispatchConfig
	logger     *slog.Logger

	mu     sync.Mutex
	users  map[uuid.UUID]*userAlert
	closed bool

	// tasks tracks every trigger from reservation until its fan-out has finished.
	tasks sync.WaitGroup
}

// NewAlertOrchestrator creates the alert orchestrator
func NewAlertOrchestrator(params OrchestratorParams) usecase.AlertOrchestrator {
	dispatch := *params.Config.Dispatch
	if dispatch.MaxConcurrency <= 0 {
		dispatch.MaxConcurrency = 1
	}
	if dispatch.Timeout <= 0 {
		dispatch.Timeout = lifecycle.DefaultTimeout
	}

	return &alertOrchestrator{
		ledger:     params.Ledger,
		directory:  params.Directory,
		dispatcher: params.Dispatcher,
		locations:  params.Locations,
		geocoder:   params.Geocoder,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		dispatch:   dispatch,
		logger:     params.Logger,
		users:      make(map[uuid.UUID]*userAlert),
	}
}

// TriggerAlert records the alert and returns; contacts are reached in the background.
func (o *alertOrchestrator) TriggerAlert(ctx context.Context, userID uuid.UUID, input *usecase.TriggerAlertInput) (*usecase.TriggerResult, error) {
	alertType := input.Type
	if alertType == "" {
		alertType = entity.AlertTypeSOS
	}
	if !alertType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown alert type " + string(alertType))
	}

	if err := o.reserve(userID); err != nil {
		o.metrics.ObserveAlert(string(alertType), "rejected")

		return nil, err
	}

	started := false
	defer func() {
		if !started {
			o.release(userID, uuid.Nil)
			o.tasks.Done()
		}
	}()

	location := o.locations.CurrentLocation(ctx, userID, input.Location)
	if location == nil {
		o.metrics.ObserveAlert(string(alertType), "no_location")

		return nil, errors.WithStack(domainerrors.ErrPreconditionUnmet)
	}

	var warning error
	contacts, err := o.directory.ListContacts(ctx, userID, userID)
	if err != nil {
		o.logger.WarnContext(ctx, "Contacts unavailable, alert recorded without recipients",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
		warning = domainerrors.ErrDirectoryUnavailable.WithDetails(err.Error())
		contacts = nil
	}

	contactIDs := make([]uuid.UUID, 0, len(contacts))
	for _, c := range contacts {
		contactIDs = append(contactIDs, c.ID)
	}

	alertID, err := o.ledger.CreateAlert(ctx, &entity.AlertDraft{
		UserID:           userID,
		Type:             alertType,
		Location:         *location,
		ContactsNotified: contactIDs,
	})
	if err != nil {
		o.metrics.ObserveAlert(string(alertType), "ledger_failed")
		if !errors.Is(err, domainerrors.ErrLedgerWriteFailed) {
			err = domainerrors.ErrLedgerWriteFailed.WithDetails(err.Error())
		}

		return nil, err
	}

	o.mu.Lock()
	o.users[userID] = &userAlert{state: stateActive, alertID: alertID}
	o.mu.Unlock()
	started = true

	o.metrics.ObserveAlert(string(alertType), "triggered")
	o.logger.InfoContext(ctx, "Alert triggered",
		slog.String("alert_id", alertID.String()),
		slog.String("user_id", userID.String()),
		slog.String("type", string(alertType)),
		slog.Int("contacts", len(contacts)),
	)

	event := &service.AlertEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		Type:             service.AlertEventTriggered,
		AlertID:          alertID.String(),
		UserID:           userID.String(),
		AlertType:        string(alertType),
		Status:           string(entity.AlertStatusActive),
		Latitude:         location.Latitude,
		Longitude:        location.Longitude,
		ContactsNotified: len(contacts),
		OccurredAt:       time.Now().UTC(),
	}

	go o.fanOut(context.WithoutCancel(ctx), alertID, userID, *location, contacts, event)

	return &usecase.TriggerResult{
		AlertID:          alertID,
		ContactsNotified: len(contacts),
		Warning:          warning,
	}, nil
}

// reserve moves an idle user to triggering and registers the pending task.
func (o *alertOrchestrator) reserve(userID uuid.UUID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return errors.WithStack(domainerrors.ErrShuttingDown)
	}
	if current, ok := o.users[userID]; ok {
		if current.alertID != uuid.Nil {
			return domainerrors.ErrAlertAlreadyActive.WithDetails(current.alertID.String())
		}

		return errors.WithStack(domainerrors.ErrAlertAlreadyActive)
	}

	o.users[userID] = &userAlert{state: stateTriggering}
	o.tasks.Add(1)

	return nil
}

// release returns the user to idle when the tracked alert matches.
func (o *alertOrchestrator) release(userID, alertID uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if current, ok := o.users[userID]; ok && current.alertID == alertID {
		delete(o.users, userID)
	}
}

// fanOut reaches every contact concurrently and records each outcome as soon as it is known.
func (o *alertOrchestrator) fanOut(
	ctx context.Context,
	alertID, userID uuid.UUID,
	location entity.Location,
	contacts []*entity.EmergencyContact,
	event *service.AlertEvent,
) {
	defer o.tasks.Done()

	ctx, cancel := context.WithTimeout(ctx, o.dispatch.Timeout)
	defer cancel()

	o.publish(ctx, event)

	if len(contacts) == 0 {
		return
	}

	locationText := util.FormatCoordinates(location.Latitude, location.Longitude)
	if place := o.geocoder.ReverseGeocode(ctx, &location); place != nil && place.Formatted != "" {
		locationText = place.Formatted
	}

	var g errgroup.Group
	g.SetLimit(o.dispatch.MaxConcurrency)

	for _, contact := range contacts {
		g.Go(func() error {
			outcome := o.dispatcher.Dispatch(ctx, &usecase.DispatchRequest{
				AlertID:      alertID,
				UserID:       userID,
				Contact:      contact,
				Location:     location,
				LocationText: locationText,
			})

			if o.dispatch.AuditFallback && outcome.Superseded != nil {
				o.record(ctx, alertID, outcome.Superseded)
			}
			o.record(ctx, alertID, outcome.Final)

			return nil
		})
	}

	_ = g.Wait()

	o.logger.InfoContext(ctx, "Alert fan-out finished",
		slog.String("alert_id", alertID.String()),
		slog.Int("contacts", len(contacts)),
	)
}

// record appends a delivery outcome. It gets its own deadline so late outcomes are still kept.
func (o *alertOrchestrator) record(ctx context.Context, alertID uuid.UUID, entry *entity.NotificationLog) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := o.ledger.AppendNotificationLog(ctx, alertID, entry); err != nil {
		o.logger.ErrorContext(ctx, "Failed to record delivery outcome",
			slog.String("alert_id", alertID.String()),
			slog.String("contact_id", entry.ContactID.String()),
			slog.String("method", string(entry.Method)),
			slog.String("status", string(entry.Status)),
			slog.Any("error", err),
		)
	}
}

func (o *alertOrchestrator) publish(ctx context.Context, event *service.AlertEvent) {
	if err := o.publisher.PublishAlertEvent(ctx, event); err != nil {
		o.logger.WarnContext(ctx, "Failed to publish alert event",
			slog.String("type", event.Type),
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
		)
	}
}

// ResolveAlert closes the alert. Deliveries still in flight are left to finish.
func (o *alertOrchestrator) ResolveAlert(ctx context.Context, userID, alertID uuid.UUID, input *usecase.ResolveAlertInput) error {
	status := input.Status
	if status == "" {
		status = entity.AlertStatusResolved
	}
	if !status.IsTerminal() {
		return domainerrors.ErrValidationFailed.WithDetails("status must be resolved or false_alarm")
	}

	alert, err := o.ledger.GetAlert(ctx, alertID)
	if err != nil {
		return err
	}
	if alert.UserID != userID {
		return errors.Wrap(domainerrors.ErrNotAuthorized, "alert belongs to another user")
	}
	if alert.Status.IsTerminal() {
		o.release(userID, alertID)

		return nil
	}

	o.mu.Lock()
	current, tracked := o.users[userID]
	tracked = tracked && current.alertID == alertID
	if tracked {
		current.state = stateResolving
	}
	o.mu.Unlock()

	// Stored timestamps keep microseconds, so the patch is comparable with what comes back.
	now := time.Now().UTC().Truncate(time.Microsecond)
	patch := &entity.AlertPatch{
		Status:     &status,
		ResolvedAt: &now,
		ResolvedBy: &userID,
		Notes:      input.Notes,
	}
	updated, err := o.ledger.UpdateAlertStatus(ctx, alertID, patch)
	if err != nil {
		if tracked {
			o.mu.Lock()
			current.state = stateActive
			o.mu.Unlock()
		}

		return err
	}

	o.release(userID, alertID)

	if !resolvedBy(updated, patch) {
		o.logger.DebugContext(ctx, "Alert closed by a concurrent resolve",
			slog.String("alert_id", alertID.String()),
		)

		return nil
	}

	o.logger.InfoContext(ctx, "Alert resolved",
		slog.String("alert_id", alertID.String()),
		slog.String("status", string(status)),
	)

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()
	o.publish(pubCtx, &service.AlertEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.AlertEventResolved,
		AlertID:    alertID.String(),
		UserID:     userID.String(),
		AlertType:  string(alert.Type),
		Status:     string(status),
		Latitude:   alert.Location.Latitude,
		Longitude:  alert.Location.Longitude,
		OccurredAt: now,
	})

	return nil
}

// resolvedBy reports whether the stored alert carries this patch's resolution.
// The ledger leaves a closed alert untouched, so a lost race shows someone else's.
func resolvedBy(stored *entity.Alert, patch *entity.AlertPatch) bool {
	if stored == nil || stored.ResolvedAt == nil || stored.ResolvedBy == nil {
		return false
	}

	return stored.Status == *patch.Status &&
		stored.ResolvedAt.Equal(*patch.ResolvedAt) &&
		*stored.ResolvedBy == *patch.ResolvedBy
}

func (o *alertOrchestrator) ActiveAlert(userID uuid.UUID) (uuid.UUID, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	current, ok := o.users[userID]
	if !ok || current.state == stateTriggering {
		return uuid.Nil, false
	}

	return current.alertID, true
}

// Shutdown refuses new triggers and waits until every fan-out has finished or ctx ends.
func (o *alertOrchestrator) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()

	done := make(chan struct{})
	go func() {
		o.tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "alert deliveries still running")
	}
}
