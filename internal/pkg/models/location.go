package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Location is a WGS84 coordinate pair
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyDriversRequest is the body of the informational nearby drivers query
type NearbyDriversRequest struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	RadiusKm  *float64 `json:"radius_km,omitempty"`
}

// AvailableDriver is a driver profile as reported by the profile service.
// Coordinates are unset until the driver first shares a location.
type AvailableDriver struct {
	DriverID         uuid.UUID           `json:"user_id"`
	CurrentLatitude  decimal.NullDecimal `json:"current_latitude"`
	CurrentLongitude decimal.NullDecimal `json:"current_longitude"`
	IsAvailable      bool                `json:"is_available"`
	Rating           decimal.Decimal     `json:"rating"`
	TotalRides       int                 `json:"total_rides"`
}

// Location returns the driver's last known position, if any
func (d AvailableDriver) Location() (Location, bool) {
	if !d.CurrentLatitude.Valid || !d.CurrentLongitude.Valid {
		return Location{}, false
	}
	return Location{
		Latitude:  d.CurrentLatitude.Decimal.InexactFloat64(),
		Longitude: d.CurrentLongitude.Decimal.InexactFloat64(),
	}, true
}

// NearbyDriver is an available driver annotated with distance from the query point
type NearbyDriver struct {
	DriverID         uuid.UUID `json:"driver_id"`
	CurrentLatitude  float64   `json:"current_latitude"`
	CurrentLongitude float64   `json:"current_longitude"`
	DistanceKm       float64   `json:"distance_km"`
	IsAvailable      bool      `json:"is_available"`
	Rating           float64   `json:"rating"`
	TotalRides       int       `json:"total_rides"`
}
