package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/metrics"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/rides"
)

// SubmitOffer places a driver's bid on an open request. A driver holds at
// most one live offer per request; a stale active one is retired first.
func (uc *offerUC) SubmitOffer(ctx context.Context, principal models.Principal, requestID uuid.UUID, in models.SubmitOfferRequest) (*models.DriverOffer, error) {
	if !principal.IsDriver() {
		return nil, fmt.Errorf("only drivers can submit offers: %w", rides.ErrUnauthorized)
	}
	if err := validateOffer(in); err != nil {
		return nil, err
	}

	var (
		offer   *models.DriverOffer
		request *models.RideRequest
	)
	now := uc.now()

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		request, err = uc.requestRepo.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if !request.IsMatchable(now) {
			return rides.ErrRequestNotMatchable
		}

		existing, err := uc.offerRepo.GetActiveOfferByDriver(ctx, requestID, principal.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.IsLive(now) || existing.IsAccepted {
				return rides.ErrDuplicateOffer
			}
			if err := uc.offerRepo.DeactivateOffer(ctx, existing.ID); err != nil {
				return err
			}
		}

		fare := request.EstimatedFare
		if in.OfferedFare != nil {
			fare = *in.OfferedFare
		}
		var message *string
		if in.Message != nil && strings.TrimSpace(*in.Message) != "" {
			message = in.Message
		}

		offer = &models.DriverOffer{
			ID:          uuid.New(),
			RequestID:   requestID,
			DriverID:    principal.UserID,
			OfferedFare: fare,
			ETAMinutes:  in.ETAMinutes,
			Message:     message,
			ExpiresAt:   now.Add(uc.cfg.Rides.OfferWindow),
			IsActive:    true,
			CreatedAt:   now,
		}
		if err := uc.offerRepo.CreateOffer(ctx, offer); err != nil {
			if database.IsUniqueViolation(err) {
				return rides.ErrDuplicateOffer
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OffersSubmitted.Inc()
	logger.InfoCtx(ctx, "Driver offer submitted",
		logger.Stringer("offer_id", offer.ID),
		logger.Stringer("request_id", requestID),
		logger.Stringer("driver_id", principal.UserID))

	driverID := principal.UserID
	publishEvent(ctx, uc.rideGW, constants.SubjectRideOfferReceived, models.RideEvent{
		RequestID: &request.ID,
		Status:    models.RideStatusOfferReceived,
		RiderID:   request.RiderID,
		DriverID:  &driverID,
		Timestamp: now,
	})
	return offer, nil
}

// ListOffers returns the live offers on a request to the rider who owns it
func (uc *offerUC) ListOffers(ctx context.Context, principal models.Principal, requestID uuid.UUID) ([]*models.DriverOffer, error) {
	request, err := uc.requestRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.RiderID != principal.UserID {
		return nil, rides.ErrUnauthorized
	}
	return uc.offerRepo.ListLiveOffers(ctx, requestID, uc.now())
}

// AcceptOffer turns a live offer into a ride. Locking the request row first
// serialises concurrent acceptances so at most one ride exists per request.
func (uc *offerUC) AcceptOffer(ctx context.Context, principal models.Principal, offerID uuid.UUID) (*models.AcceptedOffer, error) {
	if !principal.IsRider() {
		return nil, fmt.Errorf("only riders can accept offers: %w", rides.ErrUnauthorized)
	}

	var (
		result *models.AcceptedOffer
		closed int64
	)
	now := uc.now()

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		offer, err := uc.offerRepo.GetOffer(ctx, offerID)
		if err != nil {
			return err
		}

		request, err := uc.requestRepo.GetRequestForUpdate(ctx, offer.RequestID)
		if err != nil {
			return err
		}
		if request.RiderID != principal.UserID {
			return rides.ErrUnauthorized
		}

		offer, err = uc.offerRepo.GetOfferForUpdate(ctx, offerID)
		if err != nil {
			return err
		}
		if !offer.IsLive(now) {
			return rides.ErrOfferExpired
		}
		if !request.IsMatchable(now) {
			return rides.ErrRequestNotMatchable
		}

		if err := uc.offerRepo.MarkOfferAccepted(ctx, offer.ID); err != nil {
			return err
		}
		offer.IsAccepted = true

		closed, err = uc.offerRepo.DeactivateSiblingOffers(ctx, request.ID, offer.ID)
		if err != nil {
			return err
		}
		if err := uc.requestRepo.DeactivateRequest(ctx, request.ID, now); err != nil {
			return err
		}
		request.IsActive = false
		request.UpdatedAt = now

		ride := models.NewRideFromOffer(offer, request, now)
		if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
			if database.IsUniqueViolation(err) {
				return rides.ErrRequestNotMatchable
			}
			return err
		}
		if err := uc.rideRepo.AddHistory(ctx, &models.RideStatusHistory{
			ID:        uuid.New(),
			RideID:    ride.ID,
			NewStatus: models.RideStatusAccepted,
			ChangedBy: principal.UserID,
			ChangedAt: now,
		}); err != nil {
			return err
		}

		result = &models.AcceptedOffer{Offer: offer, Request: request, Ride: ride}
		return nil
	})
	if err != nil {
		if errors.Is(err, rides.ErrOfferNotFound) || errors.Is(err, rides.ErrRequestNotFound) {
			return nil, rides.ErrOfferNotFound
		}
		return nil, err
	}

	metrics.OffersAccepted.Inc()
	logger.InfoCtx(ctx, "Driver offer accepted",
		logger.Stringer("offer_id", offerID),
		logger.Stringer("ride_id", result.Ride.ID),
		logger.Int64("siblings_closed", closed))

	publishEvent(ctx, uc.rideGW, constants.SubjectRideAccepted, models.NewRideEvent(result.Ride, now))
	return result, nil
}

// ExpireOffers deactivates every lapsed, unaccepted offer in batches
func (uc *offerUC) ExpireOffers(ctx context.Context) (int64, error) {
	batchSize := uc.cfg.Rides.SweepBatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	var total int64
	for {
		n, err := uc.offerRepo.ExpireOffersBatch(ctx, uc.now(), batchSize)
		if err != nil {
			return total, err
		}
		total += n
		if n < int64(batchSize) {
			break
		}
	}

	if total > 0 {
		metrics.ExpiredBySweep.WithLabelValues("offer").Add(float64(total))
	}
	return total, nil
}
