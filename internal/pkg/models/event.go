package models

import (
	"time"

	"github.com/google/uuid"
)

// RideEvent is published on every ride status change and on request activity
type RideEvent struct {
	RideID    *uuid.UUID `json:"ride_id,omitempty"`
	RequestID *uuid.UUID `json:"request_id,omitempty"`
	Status    RideStatus `json:"status"`
	RiderID   uuid.UUID  `json:"rider_id"`
	DriverID  *uuid.UUID `json:"driver_id,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// NewRideEvent builds the status event for a ride
func NewRideEvent(ride *Ride, at time.Time) RideEvent {
	rideID, requestID, driverID := ride.ID, ride.RequestID, ride.DriverID
	return RideEvent{
		RideID:    &rideID,
		RequestID: &requestID,
		Status:    ride.Status,
		RiderID:   ride.RiderID,
		DriverID:  &driverID,
		Timestamp: at,
	}
}

// TokenRevokedEvent is emitted by the identity service when a token is revoked
type TokenRevokedEvent struct {
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
