package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FareEstimate is the output of the fare estimator
type FareEstimate struct {
	DistanceKm      decimal.Decimal `json:"distance_km"`
	DurationMinutes int             `json:"estimated_duration"`
	BaseFare        decimal.Decimal `json:"base_fare"`
	DistanceFare    decimal.Decimal `json:"distance_fare"`
	TimeFare        decimal.Decimal `json:"time_fare"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	SurgeMultiplier decimal.Decimal `json:"surge_multiplier"`
	TotalFare       decimal.Decimal `json:"estimated_fare"`
	Currency        string          `json:"currency"`
	Breakdown       FareBreakdown   `json:"breakdown"`
}

// FareBreakdown is the human readable rendering of a fare estimate
type FareBreakdown struct {
	Base     string `json:"base"`
	Distance string `json:"distance"`
	Time     string `json:"time"`
	Surge    string `json:"surge"`
}

// FareCalculationRequest is the body of the public fare calculator
type FareCalculationRequest struct {
	PickupLatitude  float64    `json:"pickup_latitude"`
	PickupLongitude float64    `json:"pickup_longitude"`
	DropLatitude    float64    `json:"drop_latitude"`
	DropLongitude   float64    `json:"drop_longitude"`
	TimeOfDay       *time.Time `json:"time_of_day,omitempty"`
}
