package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/rides"
	"github.com/piresc/campusride/services/rides/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offerFixture struct {
	uc          *offerUC
	tx          *fakeTx
	requestRepo *mocks.MockRequestRepo
	offerRepo   *mocks.MockOfferRepo
	rideRepo    *mocks.MockRideRepo
	rideGW      *mocks.MockRideGW
}

func newOfferFixture(t *testing.T) offerFixture {
	ctrl := gomock.NewController(t)

	f := offerFixture{
		tx:          &fakeTx{},
		requestRepo: mocks.NewMockRequestRepo(ctrl),
		offerRepo:   mocks.NewMockOfferRepo(ctrl),
		rideRepo:    mocks.NewMockRideRepo(ctrl),
		rideGW:      mocks.NewMockRideGW(ctrl),
	}
	f.uc = NewOfferUC(testConfig(), f.tx, f.requestRepo, f.offerRepo, f.rideRepo, f.rideGW).(*offerUC)
	f.uc.now = fixedClock
	return f
}

func TestSubmitOffer_DefaultsFareToEstimate(t *testing.T) {
	f := newOfferFixture(t)
	d := driver()
	req := openRequest(uuid.New())

	f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
	f.offerRepo.EXPECT().GetActiveOfferByDriver(gomock.Any(), req.ID, d.UserID).Return(nil, nil)
	f.offerRepo.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(nil)
	f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), constants.SubjectRideOfferReceived, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, event models.RideEvent) error {
			assert.Equal(t, models.RideStatusOfferReceived, event.Status)
			assert.Equal(t, req.RiderID, event.RiderID)
			require.NotNil(t, event.DriverID)
			assert.Equal(t, d.UserID, *event.DriverID)
			return nil
		})

	offer, err := f.uc.SubmitOffer(context.Background(), d, req.ID, models.SubmitOfferRequest{ETAMinutes: 4})

	require.NoError(t, err)
	assert.True(t, offer.OfferedFare.Equal(req.EstimatedFare))
	assert.Equal(t, testNow.Add(5*time.Minute), offer.ExpiresAt)
	assert.True(t, offer.IsActive)
	assert.False(t, offer.IsAccepted)
	assert.Equal(t, 1, f.tx.calls)
}

func TestSubmitOffer_RetiresStaleOffer(t *testing.T) {
	f := newOfferFixture(t)
	d := driver()
	req := openRequest(uuid.New())
	stale := liveOffer(req.ID, d.UserID)
	stale.ExpiresAt = testNow.Add(-time.Second)
	fare := decimal.NewFromInt(80)

	gomock.InOrder(
		f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil),
		f.offerRepo.EXPECT().GetActiveOfferByDriver(gomock.Any(), req.ID, d.UserID).Return(stale, nil),
		f.offerRepo.EXPECT().DeactivateOffer(gomock.Any(), stale.ID).Return(nil),
		f.offerRepo.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(nil),
	)
	f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	offer, err := f.uc.SubmitOffer(context.Background(), d, req.ID, models.SubmitOfferRequest{OfferedFare: &fare, ETAMinutes: 3})

	require.NoError(t, err)
	assert.NotEqual(t, stale.ID, offer.ID)
	assert.True(t, offer.OfferedFare.Equal(fare))
}

func TestSubmitOffer_Conflicts(t *testing.T) {
	d := driver()

	tests := []struct {
		name  string
		setup func(f offerFixture, req *models.RideRequest)
		err   error
	}{
		{
			name: "live offer already held",
			setup: func(f offerFixture, req *models.RideRequest) {
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
				f.offerRepo.EXPECT().GetActiveOfferByDriver(gomock.Any(), req.ID, d.UserID).Return(liveOffer(req.ID, d.UserID), nil)
			},
			err: rides.ErrDuplicateOffer,
		},
		{
			name: "concurrent insert hits unique index",
			setup: func(f offerFixture, req *models.RideRequest) {
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
				f.offerRepo.EXPECT().GetActiveOfferByDriver(gomock.Any(), req.ID, d.UserID).Return(nil, nil)
				f.offerRepo.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Return(
					&pq.Error{Code: "23505", Constraint: "uq_driver_offers_active"})
			},
			err: rides.ErrDuplicateOffer,
		},
		{
			name: "request expired",
			setup: func(f offerFixture, req *models.RideRequest) {
				req.ExpiresAt = testNow
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
			},
			err: rides.ErrRequestNotMatchable,
		},
		{
			name: "request already matched",
			setup: func(f offerFixture, req *models.RideRequest) {
				req.IsActive = false
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
			},
			err: rides.ErrRequestNotMatchable,
		},
		{
			name: "request missing",
			setup: func(f offerFixture, req *models.RideRequest) {
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(nil, rides.ErrRequestNotFound)
			},
			err: rides.ErrRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOfferFixture(t)
			req := openRequest(uuid.New())
			tt.setup(f, req)

			offer, err := f.uc.SubmitOffer(context.Background(), d, req.ID, models.SubmitOfferRequest{ETAMinutes: 5})

			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, offer)
		})
	}
}

func TestSubmitOffer_Rejections(t *testing.T) {
	f := newOfferFixture(t)
	negative := decimal.NewFromInt(-1)

	_, err := f.uc.SubmitOffer(context.Background(), rider(), uuid.New(), models.SubmitOfferRequest{ETAMinutes: 5})
	assert.ErrorIs(t, err, rides.ErrUnauthorized)

	_, err = f.uc.SubmitOffer(context.Background(), driver(), uuid.New(), models.SubmitOfferRequest{ETAMinutes: 0})
	assert.ErrorIs(t, err, rides.ErrValidation)

	_, err = f.uc.SubmitOffer(context.Background(), driver(), uuid.New(), models.SubmitOfferRequest{ETAMinutes: 5, OfferedFare: &negative})
	assert.ErrorIs(t, err, rides.ErrValidation)

	tooLarge := decimal.NewFromInt(100000000)
	_, err = f.uc.SubmitOffer(context.Background(), driver(), uuid.New(), models.SubmitOfferRequest{ETAMinutes: 5, OfferedFare: &tooLarge})
	assert.ErrorIs(t, err, rides.ErrValidation)

	assert.Equal(t, 0, f.tx.calls)
}

func TestListOffers_OwnerOnly(t *testing.T) {
	f := newOfferFixture(t)
	owner := rider()
	req := openRequest(owner.UserID)
	offers := []*models.DriverOffer{liveOffer(req.ID, uuid.New())}

	f.requestRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil).Times(2)
	f.offerRepo.EXPECT().ListLiveOffers(gomock.Any(), req.ID, testNow).Return(offers, nil)

	got, err := f.uc.ListOffers(context.Background(), owner, req.ID)
	require.NoError(t, err)
	assert.Equal(t, offers, got)

	_, err = f.uc.ListOffers(context.Background(), driver(), req.ID)
	assert.ErrorIs(t, err, rides.ErrUnauthorized)
}

func TestAcceptOffer_CreatesRideAtomically(t *testing.T) {
	f := newOfferFixture(t)
	owner := rider()
	req := openRequest(owner.UserID)
	offer := liveOffer(req.ID, uuid.New())

	var created *models.Ride
	gomock.InOrder(
		f.offerRepo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil),
		f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil),
		f.offerRepo.EXPECT().GetOfferForUpdate(gomock.Any(), offer.ID).Return(offer, nil),
		f.offerRepo.EXPECT().MarkOfferAccepted(gomock.Any(), offer.ID).Return(nil),
		f.offerRepo.EXPECT().DeactivateSiblingOffers(gomock.Any(), req.ID, offer.ID).Return(int64(2), nil),
		f.requestRepo.EXPECT().DeactivateRequest(gomock.Any(), req.ID, testNow).Return(nil),
		f.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ride *models.Ride) error {
				created = ride
				return nil
			}),
		f.rideRepo.EXPECT().AddHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *models.RideStatusHistory) error {
				assert.Nil(t, entry.PreviousStatus)
				assert.Equal(t, models.RideStatusAccepted, entry.NewStatus)
				assert.Equal(t, owner.UserID, entry.ChangedBy)
				assert.Equal(t, created.ID, entry.RideID)
				return nil
			}),
		f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), constants.SubjectRideAccepted, gomock.Any()).Return(nil),
	)

	result, err := f.uc.AcceptOffer(context.Background(), owner, offer.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, f.tx.calls)
	assert.Same(t, created, result.Ride)
	assert.True(t, result.Offer.IsAccepted)
	assert.False(t, result.Request.IsActive)

	ride := result.Ride
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	assert.Equal(t, req.ID, ride.RequestID)
	assert.Equal(t, offer.ID, ride.OfferID)
	assert.Equal(t, owner.UserID, ride.RiderID)
	assert.Equal(t, offer.DriverID, ride.DriverID)
	assert.Equal(t, req.PickupLabel, ride.PickupLabel)
	assert.True(t, ride.EstimatedFare.Equal(offer.OfferedFare))
	require.NotNil(t, ride.AcceptedAt)
	assert.Equal(t, testNow, *ride.AcceptedAt)
}

func TestAcceptOffer_Rejections(t *testing.T) {
	owner := rider()

	tests := []struct {
		name  string
		setup func(f offerFixture, req *models.RideRequest, offer *models.DriverOffer)
		as    models.Principal
		err   error
	}{
		{
			name: "offer missing",
			setup: func(f offerFixture, req *models.RideRequest, offer *models.DriverOffer) {
				f.offerRepo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(nil, rides.ErrOfferNotFound)
			},
			as:  owner,
			err: rides.ErrOfferNotFound,
		},
		{
			name: "another rider",
			setup: func(f offerFixture, req *models.RideRequest, offer *models.DriverOffer) {
				f.offerRepo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
			},
			as:  rider(),
			err: rides.ErrUnauthorized,
		},
		{
			name: "another rider on an expired offer",
			setup: func(f offerFixture, req *models.RideRequest, offer *models.DriverOffer) {
				offer.ExpiresAt = testNow.Add(-time.Second)
				f.offerRepo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
			},
			as:  rider(),
			err: rides.ErrUnauthorized,
		},
		{
			name: "offer expired",
			setup: func(f offerFixture, req *models.RideRequest, offer *models.DriverOffer) {
				offer.ExpiresAt = testNow.Add(-time.Second)
				f.offerRepo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
				f.offerRepo.EXPECT().GetOfferForUpdate(gomock.Any(), offer.ID).Return(offer, nil)
			},
			as:  owner,
			err: rides.ErrOfferExpired,
		},
		{
			name: "offer lost the race",
			setup: func(f offerFixture, req *models.RideRequest, offer *models.DriverOffer) {
				locked := *offer
				locked.IsActive = false
				f.offerRepo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
				f.offerRepo.EXPECT().GetOfferForUpdate(gomock.Any(), offer.ID).Return(&locked, nil)
			},
			as:  owner,
			err: rides.ErrOfferExpired,
		},
		{
			name: "request expired",
			setup: func(f offerFixture, req *models.RideRequest, offer *models.DriverOffer) {
				req.ExpiresAt = testNow.Add(-time.Second)
				f.offerRepo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
				f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
				f.offerRepo.EXPECT().GetOfferForUpdate(gomock.Any(), offer.ID).Return(offer, nil)
			},
			as:  owner,
			err: rides.ErrRequestNotMatchable,
		},
		{
			name:  "driver cannot accept",
			setup: func(f offerFixture, req *models.RideRequest, offer *models.DriverOffer) {},
			as:    driver(),
			err:   rides.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOfferFixture(t)
			req := openRequest(owner.UserID)
			offer := liveOffer(req.ID, uuid.New())
			tt.setup(f, req, offer)

			result, err := f.uc.AcceptOffer(context.Background(), tt.as, offer.ID)

			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, result)
		})
	}
}

func TestAcceptOffer_RideInsertFailurePublishesNothing(t *testing.T) {
	f := newOfferFixture(t)
	owner := rider()
	req := openRequest(owner.UserID)
	offer := liveOffer(req.ID, uuid.New())

	f.offerRepo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
	f.requestRepo.EXPECT().GetRequestForUpdate(gomock.Any(), req.ID).Return(req, nil)
	f.offerRepo.EXPECT().GetOfferForUpdate(gomock.Any(), offer.ID).Return(offer, nil)
	f.offerRepo.EXPECT().MarkOfferAccepted(gomock.Any(), offer.ID).Return(nil)
	f.offerRepo.EXPECT().DeactivateSiblingOffers(gomock.Any(), req.ID, offer.ID).Return(int64(0), nil)
	f.requestRepo.EXPECT().DeactivateRequest(gomock.Any(), req.ID, testNow).Return(nil)
	f.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	result, err := f.uc.AcceptOffer(context.Background(), owner, offer.ID)

	assert.EqualError(t, err, "insert failed")
	assert.Nil(t, result)
}

func TestExpireOffers(t *testing.T) {
	f := newOfferFixture(t)

	gomock.InOrder(
		f.offerRepo.EXPECT().ExpireOffersBatch(gomock.Any(), testNow, 2).Return(int64(2), nil),
		f.offerRepo.EXPECT().ExpireOffersBatch(gomock.Any(), testNow, 2).Return(int64(0), nil),
	)

	n, err := f.uc.ExpireOffers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
