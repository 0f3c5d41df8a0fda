package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusRequested      RideStatus = "REQUESTED"
	RideStatusAccepted       RideStatus = "ACCEPTED"
	RideStatusDriverArrived  RideStatus = "DRIVER_ARRIVED"
	RideStatusStarted        RideStatus = "STARTED"
	RideStatusPaymentPending RideStatus = "PAYMENT_PENDING"
	RideStatusCompleted      RideStatus = "COMPLETED"
	RideStatusCancelled      RideStatus = "CANCELLED"
	// RideStatusOfferReceived is only used on request level events
	RideStatusOfferReceived RideStatus = "OFFER_RECEIVED"
)

// AllowedTransitions is the ride state machine. A ride is created in ACCEPTED;
// REQUESTED belongs to the originating request and is never a ride status.
var AllowedTransitions = map[RideStatus][]RideStatus{
	RideStatusAccepted:       {RideStatusDriverArrived, RideStatusStarted, RideStatusCancelled},
	RideStatusDriverArrived:  {RideStatusStarted, RideStatusCancelled},
	RideStatusStarted:        {RideStatusPaymentPending, RideStatusCompleted, RideStatusCancelled},
	RideStatusPaymentPending: {RideStatusCompleted, RideStatusCancelled},
	RideStatusCompleted:      {},
	RideStatusCancelled:      {},
}

// CanTransition reports whether a ride may move from one status to another
func CanTransition(from, to RideStatus) bool {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// IsValid reports whether s is a ride lifecycle status
func (s RideStatus) IsValid() bool {
	_, ok := AllowedTransitions[s]
	return ok
}

// CancellationReason classifies why a ride was cancelled
type CancellationReason string

const (
	CancellationRiderCancelled    CancellationReason = "RIDER_CANCELLED"
	CancellationDriverCancelled   CancellationReason = "DRIVER_CANCELLED"
	CancellationNoDriverAvailable CancellationReason = "NO_DRIVER_AVAILABLE"
	CancellationPaymentFailed     CancellationReason = "PAYMENT_FAILED"
	CancellationSystemCancelled   CancellationReason = "SYSTEM_CANCELLED"
)

// IsValid reports whether r is a known cancellation reason
func (r CancellationReason) IsValid() bool {
	switch r {
	case CancellationRiderCancelled, CancellationDriverCancelled, CancellationNoDriverAvailable,
		CancellationPaymentFailed, CancellationSystemCancelled:
		return true
	}
	return false
}

// Ride is the confirmed trip created from exactly one accepted offer
type Ride struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	RequestID uuid.UUID  `json:"ride_request_id" db:"request_id"`
	OfferID   uuid.UUID  `json:"driver_offer_id" db:"offer_id"`
	RiderID   uuid.UUID  `json:"rider_id" db:"rider_id"`
	DriverID  uuid.UUID  `json:"driver_id" db:"driver_id"`
	Status    RideStatus `json:"status" db:"status"`

	PickupLabel     string  `json:"pickup_location" db:"pickup_label"`
	PickupLatitude  float64 `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude float64 `json:"pickup_longitude" db:"pickup_longitude"`
	DropLabel       string  `json:"drop_location" db:"drop_label"`
	DropLatitude    float64 `json:"drop_latitude" db:"drop_latitude"`
	DropLongitude   float64 `json:"drop_longitude" db:"drop_longitude"`

	BaseFare        decimal.Decimal     `json:"base_fare" db:"base_fare"`
	EstimatedFare   decimal.Decimal     `json:"estimated_fare" db:"estimated_fare"`
	FinalFare       decimal.NullDecimal `json:"fare_amount" db:"final_fare"`
	DistanceKm      decimal.Decimal     `json:"distance_km" db:"distance_km"`
	DurationMinutes int                 `json:"duration_minutes" db:"duration_minutes"`

	RequestedAt     time.Time  `json:"requested_at" db:"requested_at"`
	AcceptedAt      *time.Time `json:"accepted_at" db:"accepted_at"`
	DriverArrivedAt *time.Time `json:"driver_arrived_at" db:"driver_arrived_at"`
	StartedAt       *time.Time `json:"started_at" db:"started_at"`
	EndedAt         *time.Time `json:"ended_at" db:"ended_at"`
	CancelledAt     *time.Time `json:"cancelled_at" db:"cancelled_at"`

	CancellationReason  *CancellationReason `json:"cancellation_reason" db:"cancellation_reason"`
	CancellationDetails *string             `json:"cancellation_details" db:"cancellation_details"`

	RiderRating    *int    `json:"rider_rating" db:"rider_rating"`
	RiderFeedback  *string `json:"rider_feedback" db:"rider_feedback"`
	DriverRating   *int    `json:"driver_rating" db:"driver_rating"`
	DriverFeedback *string `json:"driver_feedback" db:"driver_feedback"`

	IsEmergency         bool      `json:"is_emergency" db:"is_emergency"`
	SpecialInstructions *string   `json:"special_instructions" db:"special_instructions"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// IsParty reports whether userID is the ride's rider or driver
func (r *Ride) IsParty(userID uuid.UUID) bool {
	return r.RiderID == userID || r.DriverID == userID
}

// NewRideFromOffer snapshots the request and accepted offer into a new ride
// in ACCEPTED state.
func NewRideFromOffer(offer *DriverOffer, request *RideRequest, now time.Time) *Ride {
	accepted := now
	ride := &Ride{
		ID:              uuid.New(),
		RequestID:       request.ID,
		OfferID:         offer.ID,
		RiderID:         request.RiderID,
		DriverID:        offer.DriverID,
		Status:          RideStatusAccepted,
		PickupLabel:     request.PickupLabel,
		PickupLatitude:  request.PickupLatitude,
		PickupLongitude: request.PickupLongitude,
		DropLabel:       request.DropLabel,
		DropLatitude:    request.DropLatitude,
		DropLongitude:   request.DropLongitude,
		BaseFare:        request.BaseFare,
		EstimatedFare:   offer.OfferedFare,
		DistanceKm:      request.EstimatedDistanceKm,
		DurationMinutes: request.EstimatedDurationMin,
		RequestedAt:     request.CreatedAt,
		AcceptedAt:      &accepted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if request.SpecialRequirements != nil {
		instructions := *request.SpecialRequirements
		ride.SpecialInstructions = &instructions
	}
	return ride
}

// RideStatusHistory is an immutable audit record of one ride transition
type RideStatusHistory struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	RideID         uuid.UUID   `json:"ride_id" db:"ride_id"`
	PreviousStatus *RideStatus `json:"previous_status" db:"previous_status"`
	NewStatus      RideStatus  `json:"new_status" db:"new_status"`
	ChangedBy      uuid.UUID   `json:"changed_by" db:"changed_by"`
	ChangedAt      time.Time   `json:"changed_at" db:"changed_at"`
	Notes          *string     `json:"notes" db:"notes"`
	Latitude       *float64    `json:"latitude" db:"latitude"`
	Longitude      *float64    `json:"longitude" db:"longitude"`
}

// RideTrackingPoint is a location sample reported by the driver of an active ride
type RideTrackingPoint struct {
	ID         uuid.UUID `json:"id" db:"id"`
	RideID     uuid.UUID `json:"ride_id" db:"ride_id"`
	DriverID   uuid.UUID `json:"driver_id" db:"driver_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Geohash    string    `json:"geohash" db:"geohash"`
	SpeedKmh   *float64  `json:"speed_kmh" db:"speed_kmh"`
	Heading    *float64  `json:"heading" db:"heading"`
	AccuracyM  *int      `json:"accuracy_meters" db:"accuracy_m"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// TransitionRequest is the body of a status update
type TransitionRequest struct {
	Status     RideStatus       `json:"status"`
	Notes      *string          `json:"notes,omitempty"`
	Latitude   *float64         `json:"latitude,omitempty"`
	Longitude  *float64         `json:"longitude,omitempty"`
	FareAmount *decimal.Decimal `json:"fare_amount,omitempty"`
}

// CancelRideRequest is the body of a ride cancellation
type CancelRideRequest struct {
	Reason  CancellationReason `json:"cancellation_reason"`
	Details *string            `json:"cancellation_details,omitempty"`
}

// RateRideRequest is the body of a ride rating
type RateRideRequest struct {
	Rating   int     `json:"rating"`
	Feedback *string `json:"feedback,omitempty"`
}

// TrackingPointRequest is the body of a tracking sample
type TrackingPointRequest struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	SpeedKmh  *float64 `json:"speed_kmh,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
	AccuracyM *int     `json:"accuracy_meters,omitempty"`
}

// RideFilter narrows a list-my query
type RideFilter struct {
	Statuses []RideStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Size     int
}

// RidePage is a paginated ride listing
type RidePage struct {
	Items []*Ride `json:"items"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Pages int     `json:"pages"`
}
