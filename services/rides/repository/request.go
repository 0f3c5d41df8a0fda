package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/models"
	nr "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/services/rides"
)

const requestColumns = `id, rider_id,
	pickup_label, pickup_latitude, pickup_longitude,
	drop_label, drop_latitude, drop_longitude,
	base_fare, estimated_fare, estimated_distance_km, estimated_duration_min,
	max_wait_minutes, special_requirements, expires_at, is_active, created_at, updated_at`

// RequestRepo persists ride requests in Postgres
type RequestRepo struct {
	db *sqlx.DB
}

// NewRequestRepository creates a ride request repository
func NewRequestRepository(db *sqlx.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

// CreateRequest inserts a new ride request
func (r *RequestRepo) CreateRequest(ctx context.Context, req *models.RideRequest) error {
	defer nr.DatastoreSegment(ctx, "ride_requests", "INSERT")()

	query := `INSERT INTO ride_requests (` + requestColumns + `)
		VALUES (:id, :rider_id,
			:pickup_label, :pickup_latitude, :pickup_longitude,
			:drop_label, :drop_latitude, :drop_longitude,
			:base_fare, :estimated_fare, :estimated_distance_km, :estimated_duration_min,
			:max_wait_minutes, :special_requirements, :expires_at, :is_active, :created_at, :updated_at)`

	if _, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("failed to insert ride request: %w", err)
	}
	return nil
}

// GetRequest fetches a ride request by id
func (r *RequestRepo) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error) {
	return r.getRequest(ctx, `SELECT `+requestColumns+` FROM ride_requests WHERE id = $1`, requestID)
}

// GetRequestForUpdate fetches a ride request and locks its row until the
// surrounding transaction ends.
func (r *RequestRepo) GetRequestForUpdate(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error) {
	return r.getRequest(ctx, `SELECT `+requestColumns+` FROM ride_requests WHERE id = $1 FOR UPDATE`, requestID)
}

func (r *RequestRepo) getRequest(ctx context.Context, query string, requestID uuid.UUID) (*models.RideRequest, error) {
	defer nr.DatastoreSegment(ctx, "ride_requests", "SELECT")()

	var req models.RideRequest
	err := database.Conn(ctx, r.db).GetContext(ctx, &req, query, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride request: %w", err)
	}
	return &req, nil
}

// ListActiveRequests returns matchable requests, newest first
func (r *RequestRepo) ListActiveRequests(ctx context.Context, now time.Time, limit int) ([]*models.RideRequest, error) {
	defer nr.DatastoreSegment(ctx, "ride_requests", "SELECT")()

	query := `SELECT ` + requestColumns + ` FROM ride_requests
		WHERE is_active AND expires_at > $1
		ORDER BY created_at DESC
		LIMIT $2`

	requests := []*models.RideRequest{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &requests, query, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list active ride requests: %w", err)
	}
	return requests, nil
}

// DeactivateRequest closes a request to further offers
func (r *RequestRepo) DeactivateRequest(ctx context.Context, requestID uuid.UUID, now time.Time) error {
	defer nr.DatastoreSegment(ctx, "ride_requests", "UPDATE")()

	query := `UPDATE ride_requests SET is_active = FALSE, updated_at = $1 WHERE id = $2`
	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, now, requestID)
	if err != nil {
		return fmt.Errorf("failed to deactivate ride request: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return rides.ErrRequestNotFound
	}
	return nil
}

// ExpireRequestsBatch deactivates up to batchSize expired requests. Rows
// locked by an in-flight acceptance or offer are skipped, not waited on.
func (r *RequestRepo) ExpireRequestsBatch(ctx context.Context, now time.Time, batchSize int) (int64, error) {
	defer nr.DatastoreSegment(ctx, "ride_requests", "UPDATE")()

	query := `UPDATE ride_requests SET is_active = FALSE, updated_at = $1
		WHERE id IN (
			SELECT id FROM ride_requests
			WHERE is_active AND expires_at <= $1
			ORDER BY expires_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, now, batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to expire ride requests: %w", err)
	}
	return result.RowsAffected()
}
