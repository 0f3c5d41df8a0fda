package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RideRequest is a rider's open trip solicitation
type RideRequest struct {
	ID      uuid.UUID `json:"id" db:"id"`
	RiderID uuid.UUID `json:"rider_id" db:"rider_id"`

	PickupLabel     string  `json:"pickup_location" db:"pickup_label"`
	PickupLatitude  float64 `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude float64 `json:"pickup_longitude" db:"pickup_longitude"`
	DropLabel       string  `json:"drop_location" db:"drop_label"`
	DropLatitude    float64 `json:"drop_latitude" db:"drop_latitude"`
	DropLongitude   float64 `json:"drop_longitude" db:"drop_longitude"`

	BaseFare             decimal.Decimal `json:"base_fare" db:"base_fare"`
	EstimatedFare        decimal.Decimal `json:"estimated_fare" db:"estimated_fare"`
	EstimatedDistanceKm  decimal.Decimal `json:"estimated_distance" db:"estimated_distance_km"`
	EstimatedDurationMin int             `json:"estimated_duration" db:"estimated_duration_min"`

	MaxWaitMinutes      int       `json:"max_wait_time" db:"max_wait_minutes"`
	SpecialRequirements *string   `json:"special_requirements" db:"special_requirements"`
	ExpiresAt           time.Time `json:"expires_at" db:"expires_at"`
	IsActive            bool      `json:"is_active" db:"is_active"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// IsMatchable reports whether offers may still be placed or accepted
func (r *RideRequest) IsMatchable(now time.Time) bool {
	return r.IsActive && now.Before(r.ExpiresAt)
}

// Pickup returns the pickup coordinates
func (r *RideRequest) Pickup() Location {
	return Location{Latitude: r.PickupLatitude, Longitude: r.PickupLongitude}
}

// Drop returns the drop coordinates
func (r *RideRequest) Drop() Location {
	return Location{Latitude: r.DropLatitude, Longitude: r.DropLongitude}
}

// CreateRideRequest is the body of a new trip request
type CreateRideRequest struct {
	PickupLabel         string  `json:"pickup_location"`
	PickupLatitude      float64 `json:"pickup_latitude"`
	PickupLongitude     float64 `json:"pickup_longitude"`
	DropLabel           string  `json:"drop_location"`
	DropLatitude        float64 `json:"drop_latitude"`
	DropLongitude       float64 `json:"drop_longitude"`
	MaxWaitMinutes      *int    `json:"max_wait_time,omitempty"`
	SpecialRequirements *string `json:"special_requirements,omitempty"`
}
