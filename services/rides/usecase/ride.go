package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/metrics"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/rides"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize      = 20
	maxPageSize          = 100
	defaultTrackingLimit = 50
	maxTrackingLimit     = 200
)

// GetRide returns a ride to one of its parties
func (uc *rideUC) GetRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.IsParty(principal.UserID) {
		return nil, rides.ErrUnauthorized
	}
	return ride, nil
}

// ListMyRides pages through the caller's rides, newest first
func (uc *rideUC) ListMyRides(ctx context.Context, principal models.Principal, filter models.RideFilter) (*models.RidePage, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Page < 1 {
		return nil, rides.NewValidationError("page must be at least 1")
	}
	if filter.Size == 0 {
		filter.Size = defaultPageSize
	}
	if filter.Size < 1 || filter.Size > maxPageSize {
		return nil, rides.NewValidationError("size must be between 1 and %d", maxPageSize)
	}
	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, rides.NewValidationError("unknown ride status %q", status)
		}
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, rides.NewValidationError("date_to must not be before date_from")
	}

	items, total, err := uc.rideRepo.ListRides(ctx, principal, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Ride{}
	}

	return &models.RidePage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Size:  filter.Size,
		Pages: int(math.Ceil(float64(total) / float64(filter.Size))),
	}, nil
}

// GetHistory returns the ride's transitions in the order they happened
func (uc *rideUC) GetHistory(ctx context.Context, principal models.Principal, rideID uuid.UUID) ([]*models.RideStatusHistory, error) {
	if _, err := uc.GetRide(ctx, principal, rideID); err != nil {
		return nil, err
	}
	return uc.rideRepo.ListHistory(ctx, rideID)
}

// TransitionRide moves a ride along the lifecycle table and records the change
func (uc *rideUC) TransitionRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, in models.TransitionRequest) (*models.Ride, error) {
	if err := validateTransition(in); err != nil {
		return nil, err
	}

	var ride *models.Ride
	now := uc.now()
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		ride, err = uc.rideRepo.GetRideForUpdate(ctx, rideID)
		if err != nil {
			return err
		}
		if !ride.IsParty(principal.UserID) {
			return rides.ErrUnauthorized
		}
		return uc.applyTransition(ctx, ride, principal, in, now)
	})
	if err != nil {
		return nil, err
	}

	uc.afterTransition(ctx, ride, now)
	return ride, nil
}

// CancelRide records why a ride ended early and moves it to CANCELLED
func (uc *rideUC) CancelRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, in models.CancelRideRequest) (*models.Ride, error) {
	if err := validateCancel(in); err != nil {
		return nil, err
	}

	var ride *models.Ride
	now := uc.now()
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		ride, err = uc.rideRepo.GetRideForUpdate(ctx, rideID)
		if err != nil {
			return err
		}
		if !ride.IsParty(principal.UserID) {
			return rides.ErrUnauthorized
		}
		if ride.Status.IsTerminal() {
			return fmt.Errorf("ride is already %s: %w", ride.Status, rides.ErrInvalidState)
		}

		reason := in.Reason
		ride.CancellationReason = &reason
		if in.Details != nil && strings.TrimSpace(*in.Details) != "" {
			ride.CancellationDetails = in.Details
		}

		notes := string(in.Reason)
		return uc.applyTransition(ctx, ride, principal, models.TransitionRequest{
			Status: models.RideStatusCancelled,
			Notes:  &notes,
		}, now)
	})
	if err != nil {
		return nil, err
	}

	uc.afterTransition(ctx, ride, now)
	return ride, nil
}

// applyTransition must run inside a transaction holding the ride row lock
func (uc *rideUC) applyTransition(ctx context.Context, ride *models.Ride, principal models.Principal, in models.TransitionRequest, now time.Time) error {
	previous := ride.Status
	if !models.CanTransition(previous, in.Status) {
		return fmt.Errorf("cannot move ride from %s to %s: %w", previous, in.Status, rides.ErrInvalidState)
	}

	ride.Status = in.Status
	ride.UpdatedAt = now
	switch in.Status {
	case models.RideStatusDriverArrived:
		ride.DriverArrivedAt = &now
	case models.RideStatusStarted:
		ride.StartedAt = &now
	case models.RideStatusPaymentPending:
		if ride.EndedAt == nil {
			ride.EndedAt = &now
		}
	case models.RideStatusCompleted:
		if ride.EndedAt == nil {
			ride.EndedAt = &now
		}
		fare := ride.EstimatedFare
		if in.FareAmount != nil {
			fare = *in.FareAmount
		}
		ride.FinalFare = decimal.NewNullDecimal(fare)
	case models.RideStatusCancelled:
		ride.CancelledAt = &now
	}

	if err := uc.rideRepo.UpdateRide(ctx, ride); err != nil {
		return err
	}

	return uc.rideRepo.AddHistory(ctx, &models.RideStatusHistory{
		ID:             uuid.New(),
		RideID:         ride.ID,
		PreviousStatus: &previous,
		NewStatus:      in.Status,
		ChangedBy:      principal.UserID,
		ChangedAt:      now,
		Notes:          in.Notes,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
	})
}

func (uc *rideUC) afterTransition(ctx context.Context, ride *models.Ride, now time.Time) {
	metrics.RideTransitions.WithLabelValues(string(ride.Status)).Inc()
	logger.InfoCtx(ctx, "Ride status updated",
		logger.Stringer("ride_id", ride.ID),
		logger.String("status", string(ride.Status)))

	publishEvent(ctx, uc.rideGW, constants.RideSubject(string(ride.Status)), models.NewRideEvent(ride, now))
}

// RateRide stores one party's rating of a completed ride. Each side rates
// at most once.
func (uc *rideUC) RateRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, in models.RateRideRequest) (*models.Ride, error) {
	if err := validateRating(in); err != nil {
		return nil, err
	}

	var ride *models.Ride
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		ride, err = uc.rideRepo.GetRideForUpdate(ctx, rideID)
		if err != nil {
			return err
		}
		if !ride.IsParty(principal.UserID) {
			return rides.ErrUnauthorized
		}
		if ride.Status != models.RideStatusCompleted {
			return fmt.Errorf("only completed rides can be rated: %w", rides.ErrInvalidState)
		}

		rating := in.Rating
		if principal.UserID == ride.RiderID {
			if ride.RiderRating != nil {
				return rides.ErrAlreadyRated
			}
			ride.RiderRating = &rating
			ride.RiderFeedback = in.Feedback
		} else {
			if ride.DriverRating != nil {
				return rides.ErrAlreadyRated
			}
			ride.DriverRating = &rating
			ride.DriverFeedback = in.Feedback
		}

		ride.UpdatedAt = uc.now()
		return uc.rideRepo.UpdateRide(ctx, ride)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Ride rated",
		logger.Stringer("ride_id", rideID),
		logger.Stringer("rater_id", principal.UserID),
		logger.Int("rating", in.Rating))
	return ride, nil
}

// AddTrackingPoint appends a location sample from the ride's driver. The ride
// row is held FOR UPDATE from the status check until the insert commits.
func (uc *rideUC) AddTrackingPoint(ctx context.Context, principal models.Principal, rideID uuid.UUID, in models.TrackingPointRequest) (*models.RideTrackingPoint, error) {
	if err := validateTracking(in); err != nil {
		return nil, err
	}

	var point *models.RideTrackingPoint
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ride, err := uc.rideRepo.GetRideForUpdate(ctx, rideID)
		if err != nil {
			return err
		}
		if ride.DriverID != principal.UserID {
			return rides.ErrUnauthorized
		}
		if ride.Status.IsTerminal() {
			return fmt.Errorf("ride is %s: %w", ride.Status, rides.ErrInvalidState)
		}

		loc := models.Location{Latitude: in.Latitude, Longitude: in.Longitude}
		point = &models.RideTrackingPoint{
			ID:         uuid.New(),
			RideID:     rideID,
			DriverID:   principal.UserID,
			Latitude:   in.Latitude,
			Longitude:  in.Longitude,
			Geohash:    utils.EncodeLocation(loc, utils.TrackingGeohashPrecision),
			SpeedKmh:   in.SpeedKmh,
			Heading:    in.Heading,
			AccuracyM:  in.AccuracyM,
			RecordedAt: uc.now(),
		}
		return uc.trackingRepo.AddTrackingPoint(ctx, point)
	})
	if err != nil {
		return nil, err
	}
	return point, nil
}

// GetTracking returns the newest tracking samples of a ride to its parties
func (uc *rideUC) GetTracking(ctx context.Context, principal models.Principal, rideID uuid.UUID, limit int) ([]*models.RideTrackingPoint, error) {
	limit, err := clampLimit(limit, defaultTrackingLimit, maxTrackingLimit)
	if err != nil {
		return nil, err
	}
	if _, err := uc.GetRide(ctx, principal, rideID); err != nil {
		return nil, err
	}
	return uc.trackingRepo.ListTrackingPoints(ctx, rideID, limit)
}
