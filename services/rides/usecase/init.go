package usecase

import (
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/fare"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/rides"
)

type requestUC struct {
	cfg         *models.Config
	requestRepo rides.RequestRepo
	rideGW      rides.RideGW
	directory   rides.DriverDirectory
	estimator   *fare.Estimator
	now         models.Clock
}

// NewRequestUC creates the ride request use case
func NewRequestUC(
	cfg *models.Config,
	requestRepo rides.RequestRepo,
	rideGW rides.RideGW,
	directory rides.DriverDirectory,
	estimator *fare.Estimator,
) rides.RequestUC {
	return &requestUC{
		cfg:         cfg,
		requestRepo: requestRepo,
		rideGW:      rideGW,
		directory:   directory,
		estimator:   estimator,
		now:         models.Now,
	}
}

type offerUC struct {
	cfg         *models.Config
	tx          database.Transactor
	requestRepo rides.RequestRepo
	offerRepo   rides.OfferRepo
	rideRepo    rides.RideRepo
	rideGW      rides.RideGW
	now         models.Clock
}

// NewOfferUC creates the offer matching use case
func NewOfferUC(
	cfg *models.Config,
	tx database.Transactor,
	requestRepo rides.RequestRepo,
	offerRepo rides.OfferRepo,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
) rides.OfferUC {
	return &offerUC{
		cfg:         cfg,
		tx:          tx,
		requestRepo: requestRepo,
		offerRepo:   offerRepo,
		rideRepo:    rideRepo,
		rideGW:      rideGW,
		now:         models.Now,
	}
}

type rideUC struct {
	cfg          *models.Config
	tx           database.Transactor
	rideRepo     rides.RideRepo
	trackingRepo rides.TrackingRepo
	rideGW       rides.RideGW
	now          models.Clock
}

// NewRideUC creates the ride lifecycle use case
func NewRideUC(
	cfg *models.Config,
	tx database.Transactor,
	rideRepo rides.RideRepo,
	trackingRepo rides.TrackingRepo,
	rideGW rides.RideGW,
) rides.RideUC {
	return &rideUC{
		cfg:          cfg,
		tx:           tx,
		rideRepo:     rideRepo,
		trackingRepo: trackingRepo,
		rideGW:       rideGW,
		now:          models.Now,
	}
}
