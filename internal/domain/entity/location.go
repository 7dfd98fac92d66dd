package entity

import (
	"time"
)

// Location is a single geographic fix.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	Accuracy  *float64  `json:"accuracy,omitempty"` // Horizontal accuracy in meters, when known.
}

// IsValid reports whether the coordinates are inside the WGS84 range.
func (l *Location) IsValid() bool {
	if l == nil {
		return false
	}

	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
