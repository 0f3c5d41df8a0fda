package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/fare"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/rides"
	"github.com/piresc/campusride/services/rides/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type requestFixture struct {
	uc          *requestUC
	requestRepo *mocks.MockRequestRepo
	rideGW      *mocks.MockRideGW
	directory   *mocks.MockDriverDirectory
}

func newRequestFixture(t *testing.T) requestFixture {
	ctrl := gomock.NewController(t)
	cfg := testConfig()

	f := requestFixture{
		requestRepo: mocks.NewMockRequestRepo(ctrl),
		rideGW:      mocks.NewMockRideGW(ctrl),
		directory:   mocks.NewMockDriverDirectory(ctrl),
	}
	f.uc = NewRequestUC(cfg, f.requestRepo, f.rideGW, f.directory, fare.NewEstimator(cfg.Fare)).(*requestUC)
	f.uc.now = fixedClock
	return f
}

func validCreateRequest() models.CreateRideRequest {
	return models.CreateRideRequest{
		PickupLabel:     "Library",
		PickupLatitude:  23.7280,
		PickupLongitude: 90.3920,
		DropLabel:       "Hall",
		DropLatitude:    23.7465,
		DropLongitude:   90.3800,
	}
}

func TestCreateRequest_Success(t *testing.T) {
	f := newRequestFixture(t)
	p := rider()

	var stored *models.RideRequest
	f.requestRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.RideRequest) error {
			stored = req
			return nil
		})
	f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), constants.SubjectRideRequested, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, event models.RideEvent) error {
			require.NotNil(t, event.RequestID)
			assert.Equal(t, stored.ID, *event.RequestID)
			assert.Equal(t, models.RideStatusRequested, event.Status)
			assert.Equal(t, p.UserID, event.RiderID)
			return nil
		})

	req, err := f.uc.CreateRequest(context.Background(), p, validCreateRequest())

	require.NoError(t, err)
	assert.Same(t, stored, req)
	assert.Equal(t, p.UserID, req.RiderID)
	assert.True(t, req.IsActive)
	assert.Equal(t, 10, req.MaxWaitMinutes)
	assert.Equal(t, testNow.Add(10*time.Minute), req.ExpiresAt)
	assert.Equal(t, 7, req.EstimatedDurationMin)
	assert.True(t, req.BaseFare.Equal(decimal.NewFromInt(30)))
	assert.True(t, req.EstimatedFare.GreaterThan(req.BaseFare))
}

func TestCreateRequest_LogsIdentifiers(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.SetGlobalLogger(&logger.ZapLogger{Logger: zap.New(core)})
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	f := newRequestFixture(t)
	p := rider()
	f.requestRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil)
	f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	req, err := f.uc.CreateRequest(context.Background(), p, validCreateRequest())
	require.NoError(t, err)

	entries := logs.FilterMessage("Ride request created").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, req.ID.String(), fields["request_id"])
	assert.Equal(t, p.UserID.String(), fields["rider_id"])
}

func TestCreateRequest_PublishFailureIsSwallowed(t *testing.T) {
	f := newRequestFixture(t)

	f.requestRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil)
	f.rideGW.EXPECT().PublishRideEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	req, err := f.uc.CreateRequest(context.Background(), rider(), validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, req)
}

func TestCreateRequest_Rejections(t *testing.T) {
	wait := 61
	long := strings.Repeat("a", 501)

	tests := []struct {
		name      string
		principal models.Principal
		mutate    func(*models.CreateRideRequest)
		err       error
	}{
		{name: "driver cannot request", principal: driver(), mutate: func(*models.CreateRideRequest) {}, err: rides.ErrUnauthorized},
		{name: "same labels", principal: rider(), mutate: func(r *models.CreateRideRequest) { r.DropLabel = " Library " }, err: rides.ErrValidation},
		{name: "same coordinates", principal: rider(), mutate: func(r *models.CreateRideRequest) {
			r.DropLatitude, r.DropLongitude = r.PickupLatitude, r.PickupLongitude
		}, err: rides.ErrValidation},
		{name: "latitude out of range", principal: rider(), mutate: func(r *models.CreateRideRequest) { r.PickupLatitude = 91 }, err: rides.ErrValidation},
		{name: "empty label", principal: rider(), mutate: func(r *models.CreateRideRequest) { r.PickupLabel = "  " }, err: rides.ErrValidation},
		{name: "wait too long", principal: rider(), mutate: func(r *models.CreateRideRequest) { r.MaxWaitMinutes = &wait }, err: rides.ErrValidation},
		{name: "requirements too long", principal: rider(), mutate: func(r *models.CreateRideRequest) { r.SpecialRequirements = &long }, err: rides.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRequestFixture(t)
			in := validCreateRequest()
			tt.mutate(&in)

			req, err := f.uc.CreateRequest(context.Background(), tt.principal, in)

			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, req)
		})
	}
}

func TestListActiveRequests(t *testing.T) {
	f := newRequestFixture(t)
	expected := []*models.RideRequest{openRequest(uuid.New())}

	f.requestRepo.EXPECT().ListActiveRequests(gomock.Any(), testNow, 20).Return(expected, nil)

	got, err := f.uc.ListActiveRequests(context.Background(), driver(), 0)
	require.NoError(t, err)
	assert.Equal(t, expected, got)

	_, err = f.uc.ListActiveRequests(context.Background(), driver(), 51)
	assert.ErrorIs(t, err, rides.ErrValidation)

	_, err = f.uc.ListActiveRequests(context.Background(), rider(), 10)
	assert.ErrorIs(t, err, rides.ErrUnauthorized)
}

func TestGetRequest_Authorization(t *testing.T) {
	f := newRequestFixture(t)
	owner := rider()
	req := openRequest(owner.UserID)

	f.requestRepo.EXPECT().GetRequest(gomock.Any(), req.ID).Return(req, nil).Times(3)

	got, err := f.uc.GetRequest(context.Background(), owner, req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, got.ID)

	_, err = f.uc.GetRequest(context.Background(), driver(), req.ID)
	assert.NoError(t, err)

	_, err = f.uc.GetRequest(context.Background(), rider(), req.ID)
	assert.ErrorIs(t, err, rides.ErrUnauthorized)
}

func TestExpireRequests_LoopsUntilShortBatch(t *testing.T) {
	f := newRequestFixture(t)

	gomock.InOrder(
		f.requestRepo.EXPECT().ExpireRequestsBatch(gomock.Any(), testNow, 2).Return(int64(2), nil),
		f.requestRepo.EXPECT().ExpireRequestsBatch(gomock.Any(), testNow, 2).Return(int64(2), nil),
		f.requestRepo.EXPECT().ExpireRequestsBatch(gomock.Any(), testNow, 2).Return(int64(1), nil),
	)

	n, err := f.uc.ExpireRequests(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestExpireRequests_Error(t *testing.T) {
	f := newRequestFixture(t)

	gomock.InOrder(
		f.requestRepo.EXPECT().ExpireRequestsBatch(gomock.Any(), testNow, 2).Return(int64(2), nil),
		f.requestRepo.EXPECT().ExpireRequestsBatch(gomock.Any(), testNow, 2).Return(int64(0), errors.New("db down")),
	)

	n, err := f.uc.ExpireRequests(context.Background())

	assert.Error(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCalculateFare(t *testing.T) {
	f := newRequestFixture(t)
	in := models.FareCalculationRequest{
		PickupLatitude: 23.7280, PickupLongitude: 90.3920,
		DropLatitude: 23.7465, DropLongitude: 90.3800,
	}

	midday, err := f.uc.CalculateFare(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "1", midday.SurgeMultiplier.String())

	rush := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	in.TimeOfDay = &rush
	surged, err := f.uc.CalculateFare(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "1.5", surged.SurgeMultiplier.String())
	assert.True(t, surged.TotalFare.GreaterThan(midday.TotalFare))

	in.DropLongitude = 181
	_, err = f.uc.CalculateFare(context.Background(), in)
	assert.ErrorIs(t, err, rides.ErrValidation)
}

func TestNearbyDrivers_FiltersSortsAndCaps(t *testing.T) {
	f := newRequestFixture(t)

	near := uuid.New()
	nearer := uuid.New()
	alsoNear := uuid.New()
	far := uuid.New()
	noLocation := uuid.New()

	at := func(id uuid.UUID, lat, lng float64) models.AvailableDriver {
		return models.AvailableDriver{
			DriverID:         id,
			CurrentLatitude:  decimal.NewNullDecimal(decimal.NewFromFloat(lat)),
			CurrentLongitude: decimal.NewNullDecimal(decimal.NewFromFloat(lng)),
			IsAvailable:      true,
			Rating:           decimal.NewFromFloat(4.5),
			TotalRides:       12,
		}
	}
	f.directory.EXPECT().AvailableDrivers(gomock.Any()).Return([]models.AvailableDriver{
		at(near, 23.7350, 90.3920),
		at(far, 23.9000, 90.3920),
		{DriverID: noLocation, IsAvailable: true},
		at(nearer, 23.7290, 90.3920),
		at(alsoNear, 23.7400, 90.3920),
	}, nil)

	got, err := f.uc.NearbyDrivers(context.Background(), models.NearbyDriversRequest{Latitude: 23.7280, Longitude: 90.3920})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, nearer, got[0].DriverID)
	assert.Equal(t, near, got[1].DriverID)
	assert.Less(t, got[0].DistanceKm, got[1].DistanceKm)
	assert.Equal(t, 4.5, got[0].Rating)
}

func TestNearbyDrivers_NearestAfterFarEntries(t *testing.T) {
	f := newRequestFixture(t)

	var drivers []models.AvailableDriver
	for i := 0; i < 20; i++ {
		drivers = append(drivers, models.AvailableDriver{
			DriverID:         uuid.New(),
			CurrentLatitude:  decimal.NewNullDecimal(decimal.NewFromFloat(23.9080)),
			CurrentLongitude: decimal.NewNullDecimal(decimal.NewFromFloat(90.3920)),
			IsAvailable:      true,
		})
	}
	var near []uuid.UUID
	for i := 0; i < 5; i++ {
		id := uuid.New()
		near = append(near, id)
		drivers = append(drivers, models.AvailableDriver{
			DriverID:         id,
			CurrentLatitude:  decimal.NewNullDecimal(decimal.NewFromFloat(23.7285 + float64(i)*0.0001)),
			CurrentLongitude: decimal.NewNullDecimal(decimal.NewFromFloat(90.3920)),
			IsAvailable:      true,
		})
	}
	f.directory.EXPECT().AvailableDrivers(gomock.Any()).Return(drivers, nil)

	got, err := f.uc.NearbyDrivers(context.Background(), models.NearbyDriversRequest{Latitude: 23.7280, Longitude: 90.3920})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, near[0], got[0].DriverID)
	assert.Equal(t, near[1], got[1].DriverID)
	assert.Less(t, got[1].DistanceKm, 0.1)
}

func TestNearbyDrivers_DirectoryFailureGivesEmptyList(t *testing.T) {
	f := newRequestFixture(t)
	f.directory.EXPECT().AvailableDrivers(gomock.Any()).Return(nil, errors.New("profile down"))

	got, err := f.uc.NearbyDrivers(context.Background(), models.NearbyDriversRequest{Latitude: 23.7280, Longitude: 90.3920})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestNearbyDrivers_RadiusValidation(t *testing.T) {
	f := newRequestFixture(t)

	for _, radius := range []float64{0.05, 50.5} {
		r := radius
		_, err := f.uc.NearbyDrivers(context.Background(), models.NearbyDriversRequest{Latitude: 23.7, Longitude: 90.3, RadiusKm: &r})
		assert.ErrorIs(t, err, rides.ErrValidation, "radius %v", radius)
	}
}
