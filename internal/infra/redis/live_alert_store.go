package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const liveAlertPrefix = "activeAlerts:"

// liveAlertStore keeps one hash per alert, a per-user set of active alert ids and a
// per-user channel announcing every overwrite.
type liveAlertStore struct {
	client    *goredis.Client
	retention time.Duration
	logger    *slog.Logger
}

// NewLiveAlertStore is the constructor for liveAlertStore.
func NewLiveAlertStore(client *goredis.Client, cfg *config.Config, logger *slog.Logger) repository.LiveAlertStore {
	return &liveAlertStore{
		client:    client,
		retention: cfg.Redis.LiveAlertRetention,
		logger:    logger,
	}
}

func alertKey(alertID uuid.UUID) string {
	return liveAlertPrefix + alertID.String()
}

func userIndexKey(userID uuid.UUID) string {
	return liveAlertPrefix + "user:" + userID.String()
}

func userChannel(userID uuid.UUID) string {
	return liveAlertPrefix + "events:" + userID.String()
}

// putLiveAlert writes one projection, keeps the user index in step and announces the
// change. A terminal projection is never taken back to active, so a stale rebuild that
// races a resolve cannot revive it.
//
// KEYS: alert hash, user index, user channel
// ARGV: status, alert id, retention ms, payload, field/value pairs...
var putLiveAlert = goredis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'status')
if current and current ~= 'active' and ARGV[1] == 'active' then
  return 0
end
redis.call('HSET', KEYS[1], unpack(ARGV, 5))
if ARGV[1] == 'active' then
  redis.call('SADD', KEYS[2], ARGV[2])
  redis.call('PERSIST', KEYS[1])
else
  redis.call('SREM', KEYS[2], ARGV[2])
  redis.call('PEXPIRE', KEYS[1], ARGV[3])
end
redis.call('PUBLISH', KEYS[3], ARGV[4])
return 1
`)

// Put overwrites the projection of one alert and announces it. Writing an active
// projection over a terminal one is a silent no-op.
func (s *liveAlertStore) Put(ctx context.Context, alert *entity.LiveAlert) error {
	fields, err := encodeLiveAlert(alert)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(alert)
	if err != nil {
		return errors.Wrap(err, "failed to encode live alert")
	}

	args := make([]any, 0, 4+2*len(fields))
	args = append(args, string(alert.Status), alert.AlertID.String(), s.retention.Milliseconds(), payload)
	for _, field := range liveAlertFields {
		args = append(args, field, fields[field])
	}

	keys := []string{alertKey(alert.AlertID), userIndexKey(alert.UserID), userChannel(alert.UserID)}
	applied, err := putLiveAlert.Run(ctx, s.client, keys, args...).Int()
	if err != nil {
		return errors.Wrap(err, "failed to write live alert")
	}
	if applied == 0 {
		s.logger.DebugContext(ctx, "Kept terminal live alert over stale active write",
			slog.String("alert_id", alert.AlertID.String()),
		)
	}

	return nil
}

// ListActive returns the projected alerts of a user that are still active.
func (s *liveAlertStore) ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.LiveAlert, error) {
	ids, err := s.client.SMembers(ctx, userIndexKey(userID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read live alert index")
	}
	if len(ids) == 0 {
		return []*entity.LiveAlert{}, nil
	}

	cmds := make([]*goredis.MapStringStringCmd, 0, len(ids))
	_, err = s.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, id := range ids {
			cmds = append(cmds, pipe.HGetAll(ctx, liveAlertPrefix+id))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read live alerts")
	}

	alerts := make([]*entity.LiveAlert, 0, len(cmds))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}

		alert, err := decodeLiveAlert(fields)
		if err != nil {
			s.logger.Warn("Skipping unreadable live alert",
				slog.String("alert_id", ids[i]),
				slog.Any("error", err),
			)

			continue
		}
		if alert.Status == entity.AlertStatusActive {
			alerts = append(alerts, alert)
		}
	}

	return alerts, nil
}

// Subscribe relays the user's projection changes to onChange until unsubscribed or ctx ends.
func (s *liveAlertStore) Subscribe(ctx context.Context, userID uuid.UUID, onChange func(*entity.LiveAlert)) (func(), error) {
	sub := s.client.Subscribe(ctx, userChannel(userID))

	// Wait for the subscription confirmation so no publish after this call is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return nil, errors.Wrap(err, "failed to subscribe to live alerts")
	}

	var once sync.Once
	done := make(chan struct{})
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			if err := sub.Close(); err != nil {
				s.logger.Debug("Closing live alert subscription", slog.Any("error", err))
			}
		})
	}

	messages := sub.Channel()
	go func() {
		for {
			select {
			case <-ctx.Done():
				unsubscribe()

				return
			case <-done:
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var alert entity.LiveAlert
				if err := json.Unmarshal([]byte(msg.Payload), &alert); err != nil {
					s.logger.Warn("Dropping malformed live alert event", slog.Any("error", err))

					continue
				}
				onChange(&alert)
			}
		}
	}()

	return unsubscribe, nil
}

// --- Codec ---

// liveAlertFields fixes the hash field order handed to putLiveAlert.
var liveAlertFields = []string{"alert_id", "user_id", "location", "timestamp", "status", "resolved_at"}

func encodeLiveAlert(alert *entity.LiveAlert) (map[string]string, error) {
	location, err := json.Marshal(alert.Location)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode location")
	}

	fields := map[string]string{
		"alert_id":    alert.AlertID.String(),
		"user_id":     alert.UserID.String(),
		"location":    string(location),
		"timestamp":   alert.Timestamp.UTC().Format(time.RFC3339Nano),
		"status":      string(alert.Status),
		"resolved_at": "",
	}
	if alert.ResolvedAt != nil {
		fields["resolved_at"] = alert.ResolvedAt.UTC().Format(time.RFC3339Nano)
	}

	return fields, nil
}

func decodeLiveAlert(fields map[string]string) (*entity.LiveAlert, error) {
	alertID, err := uuid.Parse(fields["alert_id"])
	if err != nil {
		return nil, errors.Wrap(err, "invalid alert_id")
	}
	userID, err := uuid.Parse(fields["user_id"])
	if err != nil {
		return nil, errors.Wrap(err, "invalid user_id")
	}
	timestamp, err := time.Parse(time.RFC3339Nano, fields["timestamp"])
	if err != nil {
		return nil, errors.Wrap(err, "invalid timestamp")
	}

	alert := &entity.LiveAlert{
		AlertID:   alertID,
		UserID:    userID,
		Timestamp: timestamp,
		Status:    entity.AlertStatus(fields["status"]),
	}
	if err := json.Unmarshal([]byte(fields["location"]), &alert.Location); err != nil {
		return nil, errors.Wrap(err, "invalid location")
	}
	if raw := fields["resolved_at"]; raw != "" {
		resolvedAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid resolved_at %q", raw)
		}
		alert.ResolvedAt = &resolvedAt
	}

	return alert, nil
}
