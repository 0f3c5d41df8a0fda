package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverOffer is a driver's bid against an open request
type DriverOffer struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	RequestID   uuid.UUID       `json:"ride_request_id" db:"request_id"`
	DriverID    uuid.UUID       `json:"driver_id" db:"driver_id"`
	OfferedFare decimal.Decimal `json:"offered_fare" db:"offered_fare"`
	ETAMinutes  int             `json:"estimated_arrival_time" db:"eta_minutes"`
	Message     *string         `json:"message" db:"message"`
	ExpiresAt   time.Time       `json:"expires_at" db:"expires_at"`
	IsActive    bool            `json:"is_active" db:"is_active"`
	IsAccepted  bool            `json:"is_accepted" db:"is_accepted"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// IsLive reports whether the offer can still be accepted
func (o *DriverOffer) IsLive(now time.Time) bool {
	return o.IsActive && !o.IsAccepted && now.Before(o.ExpiresAt)
}

// SubmitOfferRequest is the body of a driver offer
type SubmitOfferRequest struct {
	OfferedFare *decimal.Decimal `json:"offered_fare,omitempty"`
	ETAMinutes  int              `json:"estimated_arrival_time"`
	Message     *string          `json:"message,omitempty"`
}

// AcceptedOffer is the outcome of a successful acceptance
type AcceptedOffer struct {
	Offer   *DriverOffer `json:"offer"`
	Request *RideRequest `json:"request"`
	Ride    *Ride        `json:"ride"`
}
