package constants

import "strings"

// Event subjects. Ride status events use SubjectRidePrefix + lower-case status.
const (
	SubjectRidePrefix        = "ride."
	SubjectRideRequested     = "ride.requested"
	SubjectRideOfferReceived = "ride.offer_received"
	SubjectRideAccepted      = "ride.accepted"
	SubjectRideCompleted     = "ride.completed"
	SubjectRideCancelled     = "ride.cancelled"

	// Published by the identity service
	SubjectTokenRevoked = "auth.token.revoked"

	// QueueRides load-balances consumers across rides service instances
	QueueRides = "rides-service"
)

// RideSubject returns the subject for a status, e.g. "ride.driver_arrived"
func RideSubject(status string) string {
	return SubjectRidePrefix + strings.ToLower(status)
}
