package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(endpoint, apiKey string) *openCageGeocoder {
	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			APIKey:   apiKey,
			Endpoint: endpoint,
			Timeout:  time.Second,
		},
	}

	return NewOpenCageGeocoder(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*openCageGeocoder)
}

func TestOpenCageGeocoder_ReverseGeocode(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		_, _ = w.Write([]byte(`{"results":[{"formatted":"1 Main St, Springfield"}],"status":{"code":200}}`))
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL, "key-123")

	place := g.ReverseGeocode(context.Background(), &entity.Location{Latitude: 40.5, Longitude: -73.25})
	require.NotNil(t, place)
	assert.Equal(t, "1 Main St, Springfield", place.Formatted)
	assert.Equal(t, "40.5+-73.25", gotQuery)
	assert.Equal(t, "key-123", gotKey)
}

func TestOpenCageGeocoder_ReturnsNil(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		status  int
		body    string
		invalid bool
	}{
		{name: "missing key", apiKey: ""},
		{name: "placeholder key", apiKey: placeholderKey},
		{name: "invalid coordinates", apiKey: "k", invalid: true},
		{name: "server error", apiKey: "k", status: http.StatusPaymentRequired, body: `{}`},
		{name: "no results", apiKey: "k", status: http.StatusOK, body: `{"results":[]}`},
		{name: "malformed body", apiKey: "k", status: http.StatusOK, body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			g := newTestGeocoder(server.URL, tt.apiKey)

			loc := &entity.Location{Latitude: 10, Longitude: 20}
			if tt.invalid {
				loc.Latitude = 120
			}

			assert.Nil(t, g.ReverseGeocode(context.Background(), loc))
			if tt.status == 0 {
				assert.False(t, called)
			}
		})
	}
}
