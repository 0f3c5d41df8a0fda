package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/metrics"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/rides"
)

const (
	defaultActiveLimit = 20
	maxActiveLimit     = 50
	minNearbyRadiusKm  = 0.1
	maxNearbyRadiusKm  = 50
)

// CreateRequest validates and stores a rider's trip request with its fare
// estimate, then announces it to drivers.
func (uc *requestUC) CreateRequest(ctx context.Context, principal models.Principal, in models.CreateRideRequest) (*models.RideRequest, error) {
	if !principal.IsRider() {
		return nil, fmt.Errorf("only riders can create ride requests: %w", rides.ErrUnauthorized)
	}

	maxWait, err := validateCreateRequest(in, uc.cfg.Rides.DefaultMaxWait)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	pickup := models.Location{Latitude: in.PickupLatitude, Longitude: in.PickupLongitude}
	drop := models.Location{Latitude: in.DropLatitude, Longitude: in.DropLongitude}
	estimate := uc.estimator.Estimate(pickup, drop, now)

	var requirements *string
	if in.SpecialRequirements != nil && strings.TrimSpace(*in.SpecialRequirements) != "" {
		requirements = in.SpecialRequirements
	}

	req := &models.RideRequest{
		ID:                   uuid.New(),
		RiderID:              principal.UserID,
		PickupLabel:          strings.TrimSpace(in.PickupLabel),
		PickupLatitude:       in.PickupLatitude,
		PickupLongitude:      in.PickupLongitude,
		DropLabel:            strings.TrimSpace(in.DropLabel),
		DropLatitude:         in.DropLatitude,
		DropLongitude:        in.DropLongitude,
		BaseFare:             estimate.BaseFare,
		EstimatedFare:        estimate.TotalFare,
		EstimatedDistanceKm:  estimate.DistanceKm,
		EstimatedDurationMin: estimate.DurationMinutes,
		MaxWaitMinutes:       maxWait,
		SpecialRequirements:  requirements,
		ExpiresAt:            now.Add(time.Duration(maxWait) * time.Minute),
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.requestRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	metrics.RequestsCreated.Inc()

	logger.InfoCtx(ctx, "Ride request created",
		logger.Stringer("request_id", req.ID),
		logger.Stringer("rider_id", req.RiderID),
		logger.String("estimated_fare", req.EstimatedFare.StringFixed(2)))

	publishEvent(ctx, uc.rideGW, constants.SubjectRideRequested, models.RideEvent{
		RequestID: &req.ID,
		Status:    models.RideStatusRequested,
		RiderID:   req.RiderID,
		Timestamp: now,
	})
	return req, nil
}

// ListActiveRequests lists requests drivers can still bid on
func (uc *requestUC) ListActiveRequests(ctx context.Context, principal models.Principal, limit int) ([]*models.RideRequest, error) {
	if !principal.IsDriver() {
		return nil, fmt.Errorf("only drivers can browse active requests: %w", rides.ErrUnauthorized)
	}
	limit, err := clampLimit(limit, defaultActiveLimit, maxActiveLimit)
	if err != nil {
		return nil, err
	}
	return uc.requestRepo.ListActiveRequests(ctx, uc.now(), limit)
}

// GetRequest returns a request to its rider or to any driver
func (uc *requestUC) GetRequest(ctx context.Context, principal models.Principal, requestID uuid.UUID) (*models.RideRequest, error) {
	req, err := uc.requestRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if principal.IsRider() && req.RiderID != principal.UserID {
		return nil, rides.ErrUnauthorized
	}
	return req, nil
}

// ExpireRequests deactivates every expired request in batches and returns
// how many were closed.
func (uc *requestUC) ExpireRequests(ctx context.Context) (int64, error) {
	batchSize := uc.cfg.Rides.SweepBatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	var total int64
	for {
		n, err := uc.requestRepo.ExpireRequestsBatch(ctx, uc.now(), batchSize)
		if err != nil {
			return total, err
		}
		total += n
		if n < int64(batchSize) {
			break
		}
	}

	if total > 0 {
		metrics.ExpiredBySweep.WithLabelValues("request").Add(float64(total))
	}
	return total, nil
}

// CalculateFare prices a trip without creating a request. The optional time
// of day selects the surge window; it defaults to now.
func (uc *requestUC) CalculateFare(ctx context.Context, in models.FareCalculationRequest) (*models.FareEstimate, error) {
	if err := validateCoordinates("pickup", in.PickupLatitude, in.PickupLongitude); err != nil {
		return nil, err
	}
	if err := validateCoordinates("drop", in.DropLatitude, in.DropLongitude); err != nil {
		return nil, err
	}

	at := uc.now()
	if in.TimeOfDay != nil {
		at = *in.TimeOfDay
	}
	estimate := uc.estimator.Estimate(
		models.Location{Latitude: in.PickupLatitude, Longitude: in.PickupLongitude},
		models.Location{Latitude: in.DropLatitude, Longitude: in.DropLongitude},
		at,
	)
	return &estimate, nil
}

// NearbyDrivers lists available drivers within the radius, nearest first.
// The lookup is informational; profile service failures yield an empty list.
func (uc *requestUC) NearbyDrivers(ctx context.Context, in models.NearbyDriversRequest) ([]models.NearbyDriver, error) {
	if err := validateCoordinates("query", in.Latitude, in.Longitude); err != nil {
		return nil, err
	}

	radius := uc.cfg.Rides.NearbyRadiusKm
	if radius <= 0 {
		radius = 5
	}
	if in.RadiusKm != nil {
		radius = *in.RadiusKm
		if radius < minNearbyRadiusKm || radius > maxNearbyRadiusKm {
			return nil, rides.NewValidationError("radius_km must be between %.1f and %.0f", minNearbyRadiusKm, float64(maxNearbyRadiusKm))
		}
	}

	limit := uc.cfg.Rides.NearbyMaxResult
	if limit <= 0 {
		limit = 20
	}

	nearby := []models.NearbyDriver{}
	if uc.directory == nil {
		return nearby, nil
	}

	drivers, err := uc.directory.AvailableDrivers(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Nearby driver lookup failed", logger.Err(err))
		return nearby, nil
	}

	origin := models.Location{Latitude: in.Latitude, Longitude: in.Longitude}
	for _, d := range drivers {
		loc, ok := d.Location()
		if !ok || !d.IsAvailable {
			continue
		}
		distance := utils.CalculateDistance(origin, loc)
		if distance > radius {
			continue
		}
		nearby = append(nearby, models.NearbyDriver{
			DriverID:         d.DriverID,
			CurrentLatitude:  loc.Latitude,
			CurrentLongitude: loc.Longitude,
			DistanceKm:       distance,
			IsAvailable:      d.IsAvailable,
			Rating:           d.Rating.InexactFloat64(),
			TotalRides:       d.TotalRides,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}
