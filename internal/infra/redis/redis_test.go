package redis

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"guardian/config"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func newTestConfig() *config.Config {
	return &config.Config{
		Redis:    &config.RedisConfig{LiveAlertRetention: time.Hour},
		Location: &config.LocationConfig{HistorySize: 3, Retention: 24 * time.Hour},
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
