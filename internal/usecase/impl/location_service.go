package impl

import (
	"context"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

type locationService struct {
	store       repository.LocationStore
	maxAge      time.Duration
	minDistance float64
	logger      *slog.Logger
}

// NewLocationService creates the location resolver
func NewLocationService(store repository.LocationStore, cfg *config.Config, logger *slog.Logger) usecase.LocationResolver {
	return &locationService{
		store:       store,
		maxAge:      cfg.Location.MaxAge,
		minDistance: cfg.Location.MinDistanceMeters,
		logger:      logger,
	}
}

// CurrentLocation prefers a valid supplied fix, then a stored one younger than maxAge.
func (s *locationService) CurrentLocation(ctx context.Context, userID uuid.UUID, supplied *entity.Location) *entity.Location {
	if supplied.IsValid() {
		loc := *supplied
		if loc.Timestamp.IsZero() {
			loc.Timestamp = time.Now().UTC()
		}

		if err := s.SaveUserLocation(ctx, userID, &loc); err != nil {
			s.logger.WarnContext(ctx, "Failed to remember supplied location",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}

		return &loc
	}

	last, err := s.store.Latest(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read last known location",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return nil
	}
	if last == nil || !last.IsValid() {
		return nil
	}
	if time.Since(last.Timestamp) > s.maxAge {
		return nil
	}

	return last
}

// SaveUserLocation records a fix unless it is within minDistance of a recent previous one.
func (s *locationService) SaveUserLocation(ctx context.Context, userID uuid.UUID, location *entity.Location) error {
	if !location.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("latitude or longitude out of range")
	}

	loc := *location
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now().UTC()
	}

	prev, err := s.store.Latest(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to read previous location")
	}

	if prev != nil && s.isDuplicate(prev, &loc) {
		return nil
	}

	if err := s.store.Append(ctx, userID, &loc); err != nil {
		return errors.Wrap(err, "failed to save location")
	}

	return nil
}

// isDuplicate reports whether next adds nothing over prev. A stationary user is still
// refreshed once prev is half as old as maxAge so that it never goes stale.
func (s *locationService) isDuplicate(prev, next *entity.Location) bool {
	if next.Timestamp.Sub(prev.Timestamp) >= s.maxAge/2 {
		return false
	}

	distance := geo.Distance(
		orb.Point{prev.Longitude, prev.Latitude},
		orb.Point{next.Longitude, next.Latitude},
	)

	return distance < s.minDistance
}
