package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/circuitbreaker"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const availableDriversBody = `[
	{"user_id":"6f1c2d1e-8a47-4f0e-9a77-0d4f7e0c1a01","current_latitude":"23.7285","current_longitude":90.3915,"is_available":true,"rating":"4.80","total_rides":120},
	{"user_id":"6f1c2d1e-8a47-4f0e-9a77-0d4f7e0c1a02","current_latitude":null,"current_longitude":null,"is_available":true,"rating":5,"total_rides":3}
]`

func profileConfig(url string) *models.Config {
	cfg := &models.Config{}
	cfg.Profile.ServiceURL = url
	cfg.Profile.APIKey = "profile-key"
	cfg.Profile.Timeout = time.Second
	cfg.Profile.CacheTTL = 15 * time.Second
	cfg.Profile.BreakerFailures = 5
	cfg.Profile.BreakerTimeout = time.Minute
	cfg.Rides.NearbyMaxResult = 20
	return cfg
}

func TestProfileGW_AvailableDrivers_CachesResponse(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, AvailableDriversPath, r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("limit"))
		assert.Equal(t, "profile-key", r.Header.Get("X-API-Key"))
		_, _ = w.Write([]byte(availableDriversBody))
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	cache := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	gw := NewProfileGW(profileConfig(srv.URL), cache)

	drivers, err := gw.AvailableDrivers(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 2)

	loc, ok := drivers[0].Location()
	require.True(t, ok)
	assert.InDelta(t, 23.7285, loc.Latitude, 1e-9)
	assert.Equal(t, "4.8", drivers[0].Rating.String())

	_, ok = drivers[1].Location()
	assert.False(t, ok)

	again, err := gw.AvailableDrivers(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	mr.FastForward(16 * time.Second)
	_, err = gw.AvailableDrivers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProfileGW_AvailableDrivers_UpstreamError(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		calls int32
	}{
		{name: "bad gateway is retried", code: http.StatusBadGateway, calls: 3},
		{name: "not found is not retried", code: http.StatusNotFound, calls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.code)
			}))
			defer srv.Close()

			gw := NewProfileGW(profileConfig(srv.URL), nil)

			_, err := gw.AvailableDrivers(context.Background())
			assert.Error(t, err)
			assert.Equal(t, tt.calls, atomic.LoadInt32(&calls))
		})
	}
}

func TestProfileGW_AvailableDrivers_RecoversFromTransientFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(availableDriversBody))
	}))
	defer srv.Close()

	drivers, err := NewProfileGW(profileConfig(srv.URL), nil).AvailableDrivers(context.Background())
	require.NoError(t, err)
	assert.Len(t, drivers, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProfileGW_AvailableDrivers_FetchesFullList(t *testing.T) {
	drivers := make([]models.AvailableDriver, 25)
	for i := range drivers {
		drivers[i] = models.AvailableDriver{DriverID: uuid.New(), IsAvailable: true}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out := drivers
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, _ := strconv.Atoi(raw)
			out = out[:n]
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
	defer srv.Close()

	got, err := NewProfileGW(profileConfig(srv.URL), nil).AvailableDrivers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 25)
	assert.Equal(t, drivers[24].DriverID, got[24].DriverID)
}

func TestProfileGW_AvailableDrivers_BreakerOpensOnRepeatedFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := profileConfig(srv.URL)
	cfg.Profile.BreakerFailures = 1
	gw := NewProfileGW(cfg, nil)

	_, err := gw.AvailableDrivers(context.Background())
	require.Error(t, err)
	upstreamCalls := atomic.LoadInt32(&calls)

	_, err = gw.AvailableDrivers(context.Background())
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, upstreamCalls, atomic.LoadInt32(&calls))
}

func TestProfileGW_AvailableDrivers_ClientErrorsKeepBreakerClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := profileConfig(srv.URL)
	cfg.Profile.BreakerFailures = 1
	gw := NewProfileGW(cfg, nil)

	for i := 0; i < 3; i++ {
		_, err := gw.AvailableDrivers(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, circuitbreaker.ErrOpen)
	}
	assert.Equal(t, circuitbreaker.StateClosed, gw.breaker.State())
}
