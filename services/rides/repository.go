package rides

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/campusride/services/rides RequestRepo,OfferRepo,RideRepo,TrackingRepo,RevocationRepo

// RequestRepo defines data access for ride requests. Methods run on the
// transaction bound to ctx when there is one.
type RequestRepo interface {
	CreateRequest(ctx context.Context, req *models.RideRequest) error
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error)
	GetRequestForUpdate(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error)
	ListActiveRequests(ctx context.Context, now time.Time, limit int) ([]*models.RideRequest, error)
	DeactivateRequest(ctx context.Context, requestID uuid.UUID, now time.Time) error
	ExpireRequestsBatch(ctx context.Context, now time.Time, batchSize int) (int64, error)
}

// OfferRepo defines data access for driver offers
type OfferRepo interface {
	CreateOffer(ctx context.Context, offer *models.DriverOffer) error
	GetOffer(ctx context.Context, offerID uuid.UUID) (*models.DriverOffer, error)
	GetOfferForUpdate(ctx context.Context, offerID uuid.UUID) (*models.DriverOffer, error)
	GetActiveOfferByDriver(ctx context.Context, requestID, driverID uuid.UUID) (*models.DriverOffer, error)
	ListLiveOffers(ctx context.Context, requestID uuid.UUID, now time.Time) ([]*models.DriverOffer, error)
	DeactivateOffer(ctx context.Context, offerID uuid.UUID) error
	MarkOfferAccepted(ctx context.Context, offerID uuid.UUID) error
	DeactivateSiblingOffers(ctx context.Context, requestID, acceptedOfferID uuid.UUID) (int64, error)
	ExpireOffersBatch(ctx context.Context, now time.Time, batchSize int) (int64, error)
}

// RideRepo defines data access for rides and their status history
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetRideForUpdate(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	UpdateRide(ctx context.Context, ride *models.Ride) error
	ListRides(ctx context.Context, principal models.Principal, filter models.RideFilter) ([]*models.Ride, int, error)
	AddHistory(ctx context.Context, entry *models.RideStatusHistory) error
	ListHistory(ctx context.Context, rideID uuid.UUID) ([]*models.RideStatusHistory, error)
}

// TrackingRepo defines data access for ride tracking points
type TrackingRepo interface {
	AddTrackingPoint(ctx context.Context, point *models.RideTrackingPoint) error
	ListTrackingPoints(ctx context.Context, rideID uuid.UUID, limit int) ([]*models.RideTrackingPoint, error)
}

// RevocationRepo is the TTL keyed store of revoked token ids
type RevocationRepo interface {
	StoreRevokedToken(ctx context.Context, tokenID string, ttl time.Duration) error
}
