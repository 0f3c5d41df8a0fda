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

const offerColumns = `id, request_id, driver_id, offered_fare, eta_minutes, message,
	expires_at, is_active, is_accepted, created_at`

// OfferRepo persists driver offers in Postgres
type OfferRepo struct {
	db *sqlx.DB
}

// NewOfferRepository creates a driver offer repository
func NewOfferRepository(db *sqlx.DB) *OfferRepo {
	return &OfferRepo{db: db}
}

// CreateOffer inserts a new offer. A concurrent active offer by the same
// driver trips the partial unique index and maps to ErrDuplicateOffer.
func (r *OfferRepo) CreateOffer(ctx context.Context, offer *models.DriverOffer) error {
	defer nr.DatastoreSegment(ctx, "driver_offers", "INSERT")()

	query := `INSERT INTO driver_offers (` + offerColumns + `)
		VALUES (:id, :request_id, :driver_id, :offered_fare, :eta_minutes, :message,
			:expires_at, :is_active, :is_accepted, :created_at)`

	if _, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, offer); err != nil {
		if database.IsUniqueViolation(err) {
			return rides.ErrDuplicateOffer
		}
		return fmt.Errorf("failed to insert driver offer: %w", err)
	}
	return nil
}

// GetOffer fetches an offer by id
func (r *OfferRepo) GetOffer(ctx context.Context, offerID uuid.UUID) (*models.DriverOffer, error) {
	return r.getOffer(ctx, `SELECT `+offerColumns+` FROM driver_offers WHERE id = $1`, offerID)
}

// GetOfferForUpdate fetches an offer and locks its row
func (r *OfferRepo) GetOfferForUpdate(ctx context.Context, offerID uuid.UUID) (*models.DriverOffer, error) {
	return r.getOffer(ctx, `SELECT `+offerColumns+` FROM driver_offers WHERE id = $1 FOR UPDATE`, offerID)
}

func (r *OfferRepo) getOffer(ctx context.Context, query string, offerID uuid.UUID) (*models.DriverOffer, error) {
	defer nr.DatastoreSegment(ctx, "driver_offers", "SELECT")()

	var offer models.DriverOffer
	err := database.Conn(ctx, r.db).GetContext(ctx, &offer, query, offerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver offer: %w", err)
	}
	return &offer, nil
}

// GetActiveOfferByDriver returns the driver's active offer on a request, or
// nil when there is none. The offer may be past its expiry.
func (r *OfferRepo) GetActiveOfferByDriver(ctx context.Context, requestID, driverID uuid.UUID) (*models.DriverOffer, error) {
	defer nr.DatastoreSegment(ctx, "driver_offers", "SELECT")()

	query := `SELECT ` + offerColumns + ` FROM driver_offers
		WHERE request_id = $1 AND driver_id = $2 AND is_active`

	var offer models.DriverOffer
	err := database.Conn(ctx, r.db).GetContext(ctx, &offer, query, requestID, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver's active offer: %w", err)
	}
	return &offer, nil
}

// ListLiveOffers returns active, unexpired offers on a request, oldest first
func (r *OfferRepo) ListLiveOffers(ctx context.Context, requestID uuid.UUID, now time.Time) ([]*models.DriverOffer, error) {
	defer nr.DatastoreSegment(ctx, "driver_offers", "SELECT")()

	query := `SELECT ` + offerColumns + ` FROM driver_offers
		WHERE request_id = $1 AND is_active AND NOT is_accepted AND expires_at > $2
		ORDER BY created_at ASC`

	offers := []*models.DriverOffer{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &offers, query, requestID, now); err != nil {
		return nil, fmt.Errorf("failed to list driver offers: %w", err)
	}
	return offers, nil
}

// DeactivateOffer retires a single offer
func (r *OfferRepo) DeactivateOffer(ctx context.Context, offerID uuid.UUID) error {
	defer nr.DatastoreSegment(ctx, "driver_offers", "UPDATE")()

	query := `UPDATE driver_offers SET is_active = FALSE WHERE id = $1`
	if _, err := database.Conn(ctx, r.db).ExecContext(ctx, query, offerID); err != nil {
		return fmt.Errorf("failed to deactivate driver offer: %w", err)
	}
	return nil
}

// MarkOfferAccepted flags the winning offer. It stays active so the partial
// unique index keeps the driver from re-offering on the request.
func (r *OfferRepo) MarkOfferAccepted(ctx context.Context, offerID uuid.UUID) error {
	defer nr.DatastoreSegment(ctx, "driver_offers", "UPDATE")()

	query := `UPDATE driver_offers SET is_accepted = TRUE WHERE id = $1 AND is_active AND NOT is_accepted`
	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, offerID)
	if err != nil {
		return fmt.Errorf("failed to accept driver offer: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return rides.ErrOfferExpired
	}
	return nil
}

// DeactivateSiblingOffers retires every other active offer on the request
func (r *OfferRepo) DeactivateSiblingOffers(ctx context.Context, requestID, acceptedOfferID uuid.UUID) (int64, error) {
	defer nr.DatastoreSegment(ctx, "driver_offers", "UPDATE")()

	query := `UPDATE driver_offers SET is_active = FALSE
		WHERE request_id = $1 AND id <> $2 AND is_active`
	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, requestID, acceptedOfferID)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate sibling offers: %w", err)
	}
	return result.RowsAffected()
}

// ExpireOffersBatch deactivates up to batchSize expired, unaccepted offers
func (r *OfferRepo) ExpireOffersBatch(ctx context.Context, now time.Time, batchSize int) (int64, error) {
	defer nr.DatastoreSegment(ctx, "driver_offers", "UPDATE")()

	query := `UPDATE driver_offers SET is_active = FALSE
		WHERE id IN (
			SELECT id FROM driver_offers
			WHERE is_active AND NOT is_accepted AND expires_at <= $1
			ORDER BY expires_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, now, batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to expire driver offers: %w", err)
	}
	return result.RowsAffected()
}
