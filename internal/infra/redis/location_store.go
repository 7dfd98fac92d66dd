package redis

import (
	"context"
	"encoding/json"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

// appendLocation pushes a fix, trims the list and restarts its expiry with the
// user's retention, falling back to the configured one.
//
// KEYS: history list, retention key. ARGV: payload, history size, fallback retention ms.
var appendLocation = goredis.NewScript(`
redis.call('LPUSH', KEYS[1], ARGV[1])
redis.call('LTRIM', KEYS[1], 0, tonumber(ARGV[2]) - 1)
local retention = redis.call('GET', KEYS[2]) or ARGV[3]
redis.call('PEXPIRE', KEYS[1], retention)
return 1
`)

// locationStore keeps the newest locations of each user in a capped list.
type locationStore struct {
	client    *goredis.Client
	size      int64
	retention time.Duration
}

// NewLocationStore is the constructor for locationStore.
func NewLocationStore(client *goredis.Client, cfg *config.Config) repository.LocationStore {
	return &locationStore{
		client:    client,
		size:      cfg.Location.HistorySize,
		retention: cfg.Location.Retention,
	}
}

func locationKey(userID uuid.UUID) string {
	return "locations:" + userID.String()
}

func retentionKey(userID uuid.UUID) string {
	return "locations:retention:" + userID.String()
}

// Append pushes the location to the head of the list and trims the tail.
func (s *locationStore) Append(ctx context.Context, userID uuid.UUID, location *entity.Location) error {
	payload, err := json.Marshal(location)
	if err != nil {
		return errors.Wrap(err, "failed to encode location")
	}

	keys := []string{locationKey(userID), retentionKey(userID)}
	if err := appendLocation.Run(ctx, s.client, keys, payload, s.size, s.retention.Milliseconds()).Err(); err != nil {
		return errors.Wrap(err, "failed to append location")
	}

	return nil
}

// SetRetention records the user's retention and applies it to the current history.
func (s *locationStore) SetRetention(ctx context.Context, userID uuid.UUID, retention time.Duration) error {
	if retention <= 0 {
		return errors.Errorf("retention must be positive, got %s", retention)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, retentionKey(userID), retention.Milliseconds(), 0)
		pipe.PExpire(ctx, locationKey(userID), retention)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to set location retention")
	}

	return nil
}

// Latest returns the newest location, or nil when the user has none.
func (s *locationStore) Latest(ctx context.Context, userID uuid.UUID) (*entity.Location, error) {
	payload, err := s.client.LIndex(ctx, locationKey(userID), 0).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read latest location")
	}

	var location entity.Location
	if err := json.Unmarshal(payload, &location); err != nil {
		return nil, errors.Wrap(err, "failed to decode location")
	}

	return &location, nil
}
