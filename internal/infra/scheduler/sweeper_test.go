package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpirer struct {
	calls atomic.Int32
	err   error
}

func (f *fakeExpirer) ExpireOverdue(ctx context.Context) (int, error) {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("sweep context has no deadline")
	}

	return 1, f.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewTimerSweeper_InvalidSchedule(t *testing.T) {
	_, err := NewTimerSweeper("not a schedule", &fakeExpirer{}, newTestLogger())
	assert.Error(t, err)
}

func TestTimerSweeper_Sweep(t *testing.T) {
	expirer := &fakeExpirer{}
	sweeper, err := NewTimerSweeper("@every 1h", expirer, newTestLogger())
	require.NoError(t, err)

	sweeper.Sweep()
	assert.Equal(t, int32(1), expirer.calls.Load())

	expirer.err = errors.New("db down")
	sweeper.Sweep()
	assert.Equal(t, int32(2), expirer.calls.Load())
}

func TestTimerSweeper_RunsOnSchedule(t *testing.T) {
	expirer := &fakeExpirer{}
	sweeper, err := NewTimerSweeper("@every 1s", expirer, newTestLogger())
	require.NoError(t, err)

	sweeper.Start()
	defer sweeper.Stop()

	assert.Eventually(t, func() bool {
		return expirer.calls.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
}
