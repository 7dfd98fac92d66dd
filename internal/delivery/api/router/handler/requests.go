package handler

import (
	"time"

	"guardian/internal/domain/entity"
)

// LocationRequest is a geographic fix sent by a client.
type LocationRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64   `json:"longitude" validate:"required,gte=-180,lte=180"`
	Accuracy  *float64   `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// toEntity converts the request; a missing timestamp is left zero for the use case to fill.
func (r *LocationRequest) toEntity() *entity.Location {
	if r == nil {
		return nil
	}

	loc := &entity.Location{
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
		Accuracy:  r.Accuracy,
	}
	if r.Timestamp != nil {
		loc.Timestamp = r.Timestamp.UTC()
	}

	return loc
}
