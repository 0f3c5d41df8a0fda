package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// fakeTx runs fn directly and records whether it was asked to commit
type fakeTx struct {
	calls int
}

type txKey struct{}

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(context.WithValue(ctx, txKey{}, f.calls))
}

// inTx matches a context handed out by fakeTx
type inTx struct{}

func (inTx) Matches(x interface{}) bool {
	ctx, ok := x.(context.Context)
	return ok && ctx.Value(txKey{}) != nil
}

func (inTx) String() string { return "is a transaction context" }

func testConfig() *models.Config {
	return &models.Config{
		Fare: models.FareConfig{
			BaseFare:        30,
			PerKmRate:       15,
			PerMinuteRate:   2,
			SurgeMultiplier: 1.5,
			SurgeWindows:    "7-9,17-19",
			Timezone:        "UTC",
			Currency:        "BDT",
		},
		Rides: models.RidesConfig{
			OfferWindow:     5 * time.Minute,
			DefaultMaxWait:  10,
			SweepInterval:   time.Second,
			SweepBatchSize:  2,
			NearbyRadiusKm:  5,
			NearbyMaxResult: 2,
		},
	}
}

func rider() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RoleRider, TokenID: "rider-jti"}
}

func driver() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RoleDriver, TokenID: "driver-jti"}
}

func openRequest(riderID uuid.UUID) *models.RideRequest {
	return &models.RideRequest{
		ID:                   uuid.New(),
		RiderID:              riderID,
		PickupLabel:          "Library",
		PickupLatitude:       23.7280,
		PickupLongitude:      90.3920,
		DropLabel:            "Hall",
		DropLatitude:         23.7465,
		DropLongitude:        90.3800,
		BaseFare:             decimal.NewFromInt(30),
		EstimatedFare:        decimal.NewFromInt(98),
		EstimatedDistanceKm:  decimal.NewFromFloat(2.39),
		EstimatedDurationMin: 7,
		MaxWaitMinutes:       10,
		ExpiresAt:            testNow.Add(10 * time.Minute),
		IsActive:             true,
		CreatedAt:            testNow.Add(-time.Minute),
		UpdatedAt:            testNow.Add(-time.Minute),
	}
}

func liveOffer(requestID, driverID uuid.UUID) *models.DriverOffer {
	return &models.DriverOffer{
		ID:          uuid.New(),
		RequestID:   requestID,
		DriverID:    driverID,
		OfferedFare: decimal.NewFromInt(90),
		ETAMinutes:  4,
		ExpiresAt:   testNow.Add(3 * time.Minute),
		IsActive:    true,
		CreatedAt:   testNow.Add(-2 * time.Minute),
	}
}

func rideWithStatus(status models.RideStatus) *models.Ride {
	accepted := testNow.Add(-10 * time.Minute)
	return &models.Ride{
		ID:            uuid.New(),
		RequestID:     uuid.New(),
		OfferID:       uuid.New(),
		RiderID:       uuid.New(),
		DriverID:      uuid.New(),
		Status:        status,
		EstimatedFare: decimal.NewFromInt(90),
		RequestedAt:   accepted.Add(-time.Minute),
		AcceptedAt:    &accepted,
		CreatedAt:     accepted,
		UpdatedAt:     accepted,
	}
}
