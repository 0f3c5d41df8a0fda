package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/campusride/services/rides RequestUC,OfferUC,RideUC,TokenRevocationUC

// RequestUC defines the business logic for ride requests and fares
type RequestUC interface {
	CreateRequest(ctx context.Context, principal models.Principal, req models.CreateRideRequest) (*models.RideRequest, error)
	ListActiveRequests(ctx context.Context, principal models.Principal, limit int) ([]*models.RideRequest, error)
	GetRequest(ctx context.Context, principal models.Principal, requestID uuid.UUID) (*models.RideRequest, error)
	ExpireRequests(ctx context.Context) (int64, error)
	CalculateFare(ctx context.Context, req models.FareCalculationRequest) (*models.FareEstimate, error)
	NearbyDrivers(ctx context.Context, req models.NearbyDriversRequest) ([]models.NearbyDriver, error)
}

// OfferUC defines the business logic for driver offers and acceptance
type OfferUC interface {
	SubmitOffer(ctx context.Context, principal models.Principal, requestID uuid.UUID, req models.SubmitOfferRequest) (*models.DriverOffer, error)
	ListOffers(ctx context.Context, principal models.Principal, requestID uuid.UUID) ([]*models.DriverOffer, error)
	AcceptOffer(ctx context.Context, principal models.Principal, offerID uuid.UUID) (*models.AcceptedOffer, error)
	ExpireOffers(ctx context.Context) (int64, error)
}

// RideUC defines the business logic of the ride lifecycle
type RideUC interface {
	GetRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error)
	ListMyRides(ctx context.Context, principal models.Principal, filter models.RideFilter) (*models.RidePage, error)
	GetHistory(ctx context.Context, principal models.Principal, rideID uuid.UUID) ([]*models.RideStatusHistory, error)
	TransitionRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, req models.TransitionRequest) (*models.Ride, error)
	CancelRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, req models.CancelRideRequest) (*models.Ride, error)
	RateRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, req models.RateRideRequest) (*models.Ride, error)
	AddTrackingPoint(ctx context.Context, principal models.Principal, rideID uuid.UUID, req models.TrackingPointRequest) (*models.RideTrackingPoint, error)
	GetTracking(ctx context.Context, principal models.Principal, rideID uuid.UUID, limit int) ([]*models.RideTrackingPoint, error)
}

// TokenRevocationUC records revoked access tokens until they expire
type TokenRevocationUC interface {
	RevokeToken(ctx context.Context, event models.TokenRevokedEvent) error
}
