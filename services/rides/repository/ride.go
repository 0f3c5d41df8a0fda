package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/models"
	nr "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/services/rides"
)

const rideColumns = `id, request_id, offer_id, rider_id, driver_id, status,
	pickup_label, pickup_latitude, pickup_longitude,
	drop_label, drop_latitude, drop_longitude,
	base_fare, estimated_fare, final_fare, distance_km, duration_minutes,
	requested_at, accepted_at, driver_arrived_at, started_at, ended_at, cancelled_at,
	cancellation_reason, cancellation_details,
	rider_rating, rider_feedback, driver_rating, driver_feedback,
	is_emergency, special_instructions, created_at, updated_at`

const historyColumns = `id, ride_id, previous_status, new_status, changed_by, changed_at, notes, latitude, longitude`

// RideRepo persists rides and their status history in Postgres
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates a ride repository
func NewRideRepository(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	defer nr.DatastoreSegment(ctx, "rides", "INSERT")()

	query := `INSERT INTO rides (` + rideColumns + `)
		VALUES (:id, :request_id, :offer_id, :rider_id, :driver_id, :status,
			:pickup_label, :pickup_latitude, :pickup_longitude,
			:drop_label, :drop_latitude, :drop_longitude,
			:base_fare, :estimated_fare, :final_fare, :distance_km, :duration_minutes,
			:requested_at, :accepted_at, :driver_arrived_at, :started_at, :ended_at, :cancelled_at,
			:cancellation_reason, :cancellation_details,
			:rider_rating, :rider_feedback, :driver_rating, :driver_feedback,
			:is_emergency, :special_instructions, :created_at, :updated_at)`

	if _, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, ride); err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// GetRide fetches a ride by id
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return r.getRide(ctx, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, rideID)
}

// GetRideForUpdate fetches a ride and locks its row
func (r *RideRepo) GetRideForUpdate(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return r.getRide(ctx, `SELECT `+rideColumns+` FROM rides WHERE id = $1 FOR UPDATE`, rideID)
}

func (r *RideRepo) getRide(ctx context.Context, query string, rideID uuid.UUID) (*models.Ride, error) {
	defer nr.DatastoreSegment(ctx, "rides", "SELECT")()

	var ride models.Ride
	err := database.Conn(ctx, r.db).GetContext(ctx, &ride, query, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrRideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// UpdateRide writes the mutable lifecycle columns of a ride
func (r *RideRepo) UpdateRide(ctx context.Context, ride *models.Ride) error {
	defer nr.DatastoreSegment(ctx, "rides", "UPDATE")()

	query := `UPDATE rides SET
			status = :status,
			final_fare = :final_fare,
			driver_arrived_at = :driver_arrived_at,
			started_at = :started_at,
			ended_at = :ended_at,
			cancelled_at = :cancelled_at,
			cancellation_reason = :cancellation_reason,
			cancellation_details = :cancellation_details,
			rider_rating = :rider_rating,
			rider_feedback = :rider_feedback,
			driver_rating = :driver_rating,
			driver_feedback = :driver_feedback,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, ride)
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return rides.ErrRideNotFound
	}
	return nil
}

// ListRides returns a page of the principal's rides, newest first, and the
// total number of rides matching the filter.
func (r *RideRepo) ListRides(ctx context.Context, principal models.Principal, filter models.RideFilter) ([]*models.Ride, int, error) {
	defer nr.DatastoreSegment(ctx, "rides", "SELECT")()

	column := "rider_id"
	if principal.IsDriver() {
		column = "driver_id"
	}

	conditions := []string{column + " = $1"}
	args := []interface{}{principal.UserID}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, pq.Array(statuses))
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	conn := database.Conn(ctx, r.db)

	var total int
	if err := conn.GetContext(ctx, &total, `SELECT COUNT(*) FROM rides WHERE `+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count rides: %w", err)
	}

	offset := (filter.Page - 1) * filter.Size
	query := fmt.Sprintf(`SELECT %s FROM rides WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		rideColumns, where, len(args)+1, len(args)+2)

	items := []*models.Ride{}
	if err := conn.SelectContext(ctx, &items, query, append(args, filter.Size, offset)...); err != nil {
		return nil, 0, fmt.Errorf("failed to list rides: %w", err)
	}
	return items, total, nil
}

// AddHistory appends a status history entry
func (r *RideRepo) AddHistory(ctx context.Context, entry *models.RideStatusHistory) error {
	defer nr.DatastoreSegment(ctx, "ride_status_history", "INSERT")()

	query := `INSERT INTO ride_status_history (` + historyColumns + `)
		VALUES (:id, :ride_id, :previous_status, :new_status, :changed_by, :changed_at, :notes, :latitude, :longitude)`

	if _, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to insert ride status history: %w", err)
	}
	return nil
}

// ListHistory returns the ride's status history in the order it happened
func (r *RideRepo) ListHistory(ctx context.Context, rideID uuid.UUID) ([]*models.RideStatusHistory, error) {
	defer nr.DatastoreSegment(ctx, "ride_status_history", "SELECT")()

	query := `SELECT ` + historyColumns + ` FROM ride_status_history
		WHERE ride_id = $1
		ORDER BY changed_at ASC, id ASC`

	entries := []*models.RideStatusHistory{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &entries, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to list ride status history: %w", err)
	}
	return entries, nil
}
