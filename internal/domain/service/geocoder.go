package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// Place is a human readable description of a location.
type Place struct {
	Formatted string
}

// Geocoder turns coordinates into a place name.
type Geocoder interface {
	// ReverseGeocode returns nil on any failure or misconfiguration. It never errors.
	ReverseGeocode(ctx context.Context, location *entity.Location) *Place
}
