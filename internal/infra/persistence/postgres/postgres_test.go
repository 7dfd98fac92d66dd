package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolWaitReport(t *testing.T) {
	base := sql.DBStats{WaitCount: 10, WaitDuration: time.Second, MaxOpenConnections: 20, InUse: 20}

	tests := []struct {
		name      string
		cur       sql.DBStats
		wantOK    bool
		wantLevel slog.Level
		wantAvg   time.Duration
	}{
		{
			name:   "no new waits",
			cur:    base,
			wantOK: false,
		},
		{
			name:      "short waits",
			cur:       sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelDebug,
			wantAvg:   10 * time.Millisecond,
		},
		{
			name:      "long waits",
			cur:       sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 200*time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelWarn,
			wantAvg:   200 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, attrs, ok := poolWaitReport(base, tt.cur)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}

			assert.Equal(t, tt.wantLevel, level)
			for _, attr := range attrs {
				if attr.Key == "avg_wait" {
					assert.Equal(t, tt.wantAvg, attr.Value.Duration())
				}
			}
		})
	}
}
