package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		want    any
		wantErr string
	}{
		{name: "no section", cfg: nil, want: &discardPublisher{}},
		{name: "empty provider", cfg: &config.PubSubConfig{}, want: &discardPublisher{}},
		{
			name: "local",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8085"},
			want: &localHTTPPublisher{},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "pubsub.localEndpoint",
		},
		{
			name:    "google without topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "guardian"},
			wantErr: "pubsub.topicId",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
		})
	}
}

func TestDiscardPublisher(t *testing.T) {
	publisher := &discardPublisher{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := publisher.PublishAlertEvent(context.Background(), &service.AlertEvent{Type: service.AlertEventResolved, AlertID: "a-1"})

	assert.NoError(t, err)
	assert.NoError(t, publisher.Close())
}
