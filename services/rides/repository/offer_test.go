package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/rides"
	"github.com/piresc/campusride/services/rides/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var offerRowColumns = []string{"id", "request_id", "driver_id", "offered_fare", "eta_minutes", "expires_at", "is_active", "is_accepted", "created_at"}

func newOffer() *models.DriverOffer {
	now := time.Now().UTC()
	return &models.DriverOffer{
		ID:          uuid.New(),
		RequestID:   uuid.New(),
		DriverID:    uuid.New(),
		OfferedFare: decimal.NewFromInt(90),
		ETAMinutes:  4,
		ExpiresAt:   now.Add(5 * time.Minute),
		IsActive:    true,
		CreatedAt:   now,
	}
}

func TestCreateOffer_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOfferRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO driver_offers")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateOffer(context.Background(), newOffer()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOffer_UniqueViolationIsDuplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOfferRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO driver_offers")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateOffer(context.Background(), newOffer())
	assert.ErrorIs(t, err, rides.ErrDuplicateOffer)
}

func TestGetOffer_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOfferRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM driver_offers WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(offerRowColumns))

	_, err := repo.GetOffer(context.Background(), id)
	assert.ErrorIs(t, err, rides.ErrOfferNotFound)
}

func TestGetOfferForUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOfferRepository(db)
	o := newOffer()

	mock.ExpectQuery(regexp.QuoteMeta("FROM driver_offers WHERE id = $1 FOR UPDATE")).
		WithArgs(o.ID).
		WillReturnRows(sqlmock.NewRows(offerRowColumns).
			AddRow(o.ID.String(), o.RequestID.String(), o.DriverID.String(), "90.00", 4, o.ExpiresAt, true, false, o.CreatedAt))

	got, err := repo.GetOfferForUpdate(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.DriverID, got.DriverID)
	assert.True(t, got.OfferedFare.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, 4, got.ETAMinutes)
}

func TestGetActiveOfferByDriver_NoneReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOfferRepository(db)
	requestID, driverID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE request_id = $1 AND driver_id = $2 AND is_active")).
		WithArgs(requestID, driverID).
		WillReturnRows(sqlmock.NewRows(offerRowColumns))

	got, err := repo.GetActiveOfferByDriver(context.Background(), requestID, driverID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListLiveOffers_OldestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOfferRepository(db)
	requestID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)expires_at > \$2.*ORDER BY created_at ASC`).
		WithArgs(requestID, now).
		WillReturnRows(sqlmock.NewRows(offerRowColumns).
			AddRow(uuid.NewString(), requestID.String(), uuid.NewString(), "80.00", 3, now.Add(time.Minute), true, false, now.Add(-2*time.Minute)).
			AddRow(uuid.NewString(), requestID.String(), uuid.NewString(), "85.00", 6, now.Add(time.Minute), true, false, now.Add(-time.Minute)))

	got, err := repo.ListLiveOffers(context.Background(), requestID, now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ETAMinutes)
}

func TestMarkOfferAccepted_AlreadyTaken(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOfferRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE driver_offers SET is_accepted = TRUE")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkOfferAccepted(context.Background(), uuid.New())
	assert.ErrorIs(t, err, rides.ErrOfferExpired)
}

func TestDeactivateSiblingOffers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOfferRepository(db)
	requestID, acceptedID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("WHERE request_id = $1 AND id <> $2 AND is_active")).
		WithArgs(requestID, acceptedID).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeactivateSiblingOffers(context.Background(), requestID, acceptedID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireOffersBatch_SkipsLockedRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOfferRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec(`(?s)UPDATE driver_offers SET is_active = FALSE.*NOT is_accepted AND expires_at <= \$1.*FOR UPDATE SKIP LOCKED`).
		WithArgs(now, 100).
		WillReturnResult(sqlmock.NewResult(0, 100))

	n, err := repo.ExpireOffersBatch(context.Background(), now, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), n)
}
