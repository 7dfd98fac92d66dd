// Package geocoding resolves coordinates into human readable places.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint = "https://api.opencagedata.com/geocode/v1/json"
	defaultLanguage = "en"
	defaultTimeout  = 5 * time.Second

	// placeholderKey ships in sample configs and is treated as unset.
	placeholderKey = "YOUR_OPENCAGE_API_KEY"
)

type openCageGeocoder struct {
	apiKey     string
	endpoint   string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

type openCageResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// NewOpenCageGeocoder creates a Geocoder backed by the OpenCage API
func NewOpenCageGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	gc := cfg.Geocoding

	g := &openCageGeocoder{
		apiKey:   gc.APIKey,
		endpoint: gc.Endpoint,
		language: gc.Language,
		logger:   logger,
	}
	if g.endpoint == "" {
		g.endpoint = defaultEndpoint
	}
	if g.language == "" {
		g.language = defaultLanguage
	}

	timeout := gc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	g.httpClient = &http.Client{Timeout: timeout}

	if !g.configured() {
		logger.Warn("Geocoding API key not set, location text will fall back to coordinates")
	}

	return g
}

func (g *openCageGeocoder) configured() bool {
	return g.apiKey != "" && g.apiKey != placeholderKey
}

func (g *openCageGeocoder) ReverseGeocode(ctx context.Context, location *entity.Location) *service.Place {
	if !g.configured() || !location.IsValid() {
		return nil
	}

	place, err := g.lookup(ctx, location)
	if err != nil {
		g.logger.WarnContext(ctx, "Reverse geocoding failed", slog.Any("error", err))

		return nil
	}

	return place
}

func (g *openCageGeocoder) lookup(ctx context.Context, location *entity.Location) (*service.Place, error) {
	query := url.Values{}
	query.Set("q", strconv.FormatFloat(location.Latitude, 'f', -1, 64)+"+"+strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	query.Set("key", g.apiKey)
	query.Set("language", g.language)
	query.Set("no_annotations", "1")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoding returned status %d", resp.StatusCode)
	}

	var body openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}

	if len(body.Results) == 0 || body.Results[0].Formatted == "" {
		return nil, errors.New("geocoding returned no results")
	}

	return &service.Place{Formatted: body.Results[0].Formatted}, nil
}
