package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/models"
	nr "github.com/piresc/campusride/internal/pkg/newrelic"
)

const trackingColumns = `id, ride_id, driver_id, latitude, longitude, geohash, speed_kmh, heading, accuracy_m, recorded_at`

// TrackingRepo persists driver location samples for rides
type TrackingRepo struct {
	db *sqlx.DB
}

// NewTrackingRepository creates a tracking repository
func NewTrackingRepository(db *sqlx.DB) *TrackingRepo {
	return &TrackingRepo{db: db}
}

// AddTrackingPoint stores one location sample
func (r *TrackingRepo) AddTrackingPoint(ctx context.Context, point *models.RideTrackingPoint) error {
	defer nr.DatastoreSegment(ctx, "ride_tracking", "INSERT")()

	query := `INSERT INTO ride_tracking (` + trackingColumns + `)
		VALUES (:id, :ride_id, :driver_id, :latitude, :longitude, :geohash, :speed_kmh, :heading, :accuracy_m, :recorded_at)`

	if _, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, point); err != nil {
		return fmt.Errorf("failed to insert tracking point: %w", err)
	}
	return nil
}

// ListTrackingPoints returns the most recent samples of a ride, newest first
func (r *TrackingRepo) ListTrackingPoints(ctx context.Context, rideID uuid.UUID, limit int) ([]*models.RideTrackingPoint, error) {
	defer nr.DatastoreSegment(ctx, "ride_tracking", "SELECT")()

	query := `SELECT ` + trackingColumns + ` FROM ride_tracking
		WHERE ride_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2`

	points := []*models.RideTrackingPoint{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &points, query, rideID, limit); err != nil {
		return nil, fmt.Errorf("failed to list tracking points: %w", err)
	}
	return points, nil
}
