package rides

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/campusride/services/rides RideGW,DriverDirectory

// RideGW publishes ride events to the configured broker
type RideGW interface {
	PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error
	Close() error
}

// DriverDirectory lists drivers the profile service reports as available
type DriverDirectory interface {
	AvailableDrivers(ctx context.Context) ([]models.AvailableDriver, error)
}
