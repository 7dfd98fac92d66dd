package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// alertLedger keeps alerts in the durable store and mirrors them into the live projection.
// The durable write always happens first; the projection can be rebuilt from it.
type alertLedger struct {
	alertRepo repository.AlertRepository
	live      repository.LiveAlertStore
	logger    *slog.Logger
}

// NewAlertLedger creates the alert ledger
func NewAlertLedger(alertRepo repository.AlertRepository, live repository.LiveAlertStore, logger *slog.Logger) usecase.AlertLedger {
	return &alertLedger{
		alertRepo: alertRepo,
		live:      live,
		logger:    logger,
	}
}

func (l *alertLedger) CreateAlert(ctx context.Context, draft *entity.AlertDraft) (uuid.UUID, error) {
	contacts := draft.ContactsNotified
	if contacts == nil {
		contacts = []uuid.UUID{}
	}

	// timestamptz keeps microseconds; the returned alert matches what a later read sees.
	location := draft.Location
	location.Timestamp = location.Timestamp.UTC().Truncate(time.Microsecond)

	alert := &entity.Alert{
		ID:                uuid.New(),
		UserID:            draft.UserID,
		Type:              draft.Type,
		Location:          location,
		Timestamp:         time.Now().UTC().Truncate(time.Microsecond),
		Status:            entity.AlertStatusActive,
		ContactsNotified:  contacts,
		NotificationsSent: []*entity.NotificationLog{},
	}

	if err := l.alertRepo.CreateAlert(ctx, alert); err != nil {
		return uuid.Nil, domainerrors.ErrLedgerWriteFailed.WithDetails(err.Error())
	}

	l.project(ctx, alert)

	return alert.ID, nil
}

func (l *alertLedger) UpdateAlertStatus(ctx context.Context, alertID uuid.UUID, patch *entity.AlertPatch) (*entity.Alert, error) {
	updated, err := l.alertRepo.UpdateAlert(ctx, alertID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
		}

		return nil, domainerrors.ErrLedgerWriteFailed.WithDetails(err.Error())
	}

	l.project(ctx, updated)

	return updated, nil
}

func (l *alertLedger) AppendNotificationLog(ctx context.Context, alertID uuid.UUID, entry *entity.NotificationLog) error {
	entry.AlertID = alertID
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if err := l.alertRepo.AppendNotificationLog(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return errors.WithStack(domainerrors.ErrAlertNotFound)
		}

		return domainerrors.ErrLedgerWriteFailed.WithDetails(err.Error())
	}

	return nil
}

func (l *alertLedger) GetAlert(ctx context.Context, alertID uuid.UUID) (*entity.Alert, error) {
	alert, err := l.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
		}

		return nil, errors.Wrap(err, "failed to find alert")
	}

	return alert, nil
}

func (l *alertLedger) ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	alerts, err := l.alertRepo.FindAlertsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	if alerts == nil {
		alerts = []*entity.Alert{}
	}

	return alerts, nil
}

// SubscribeActiveAlerts rebuilds the user's projection from the durable store,
// starts listening, then replays the current snapshot to onChange. A resolve racing
// the rebuild wins because the store refuses to revive terminal projections.
// onChange is never called concurrently with itself.
func (l *alertLedger) SubscribeActiveAlerts(ctx context.Context, userID uuid.UUID, onChange func(*entity.LiveAlert)) (func(), error) {
	active, err := l.alertRepo.FindActiveAlertsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read active alerts")
	}
	for _, alert := range active {
		l.project(ctx, alert)
	}

	var mu sync.Mutex
	deliver := func(alert *entity.LiveAlert) {
		mu.Lock()
		defer mu.Unlock()
		onChange(alert)
	}

	unsubscribe, err := l.live.Subscribe(ctx, userID, deliver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to live alerts")
	}

	snapshot, err := l.live.ListActive(ctx, userID)
	if err != nil {
		l.logger.WarnContext(ctx, "Live projection unreadable, replaying durable snapshot",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
		snapshot = make([]*entity.LiveAlert, 0, len(active))
		for _, alert := range active {
			snapshot = append(snapshot, alert.ToLiveAlert())
		}
	}

	for _, alert := range snapshot {
		deliver(alert)
	}

	return unsubscribe, nil
}

// project writes the live view of an alert. The projection is derived data so a failure is only logged.
func (l *alertLedger) project(ctx context.Context, alert *entity.Alert) {
	if err := l.live.Put(ctx, alert.ToLiveAlert()); err != nil {
		l.logger.WarnContext(ctx, "Failed to update live alert projection",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}
}
