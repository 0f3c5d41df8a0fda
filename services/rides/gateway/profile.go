package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/piresc/campusride/internal/pkg/circuitbreaker"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
	httppkg "github.com/piresc/campusride/internal/pkg/http"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/pkg/retry"
)

// AvailableDriversPath is the profile service endpoint listing available drivers
const AvailableDriversPath = "/api/v1/drivers/available"

// ProfileGW reads available drivers from the profile service through a
// short-lived Redis cache. The full list is fetched; radius filtering and the
// result cap happen in the caller after sorting by distance.
type ProfileGW struct {
	client   *httppkg.APIKeyClient
	retrier  *retry.Retrier
	breaker  *circuitbreaker.CircuitBreaker
	cache    *database.RedisClient
	cacheTTL time.Duration
}

// NewProfileGW creates the profile service gateway. cache may be nil.
func NewProfileGW(cfg *models.Config, cache *database.RedisClient) *ProfileGW {
	return &ProfileGW{
		client:   httppkg.NewAPIKeyClient("profile-service", cfg.Profile.ServiceURL, cfg.Profile.APIKey, cfg.Profile.Timeout),
		retrier:  retry.New("profile.available_drivers", profileRetryConfig()),
		breaker:  circuitbreaker.New(profileBreakerConfig(cfg.Profile)),
		cache:    cache,
		cacheTTL: cfg.Profile.CacheTTL,
	}
}

// AvailableDrivers returns the drivers the profile service reports as available
func (g *ProfileGW) AvailableDrivers(ctx context.Context) ([]models.AvailableDriver, error) {
	if drivers, ok := g.cached(ctx); ok {
		return drivers, nil
	}

	var drivers []models.AvailableDriver
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Do(ctx, func(ctx context.Context) error {
			drivers = nil
			return g.client.GetJSON(ctx, AvailableDriversPath, &drivers)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available drivers: %w", err)
	}

	g.store(ctx, drivers)
	return drivers, nil
}

func (g *ProfileGW) cached(ctx context.Context) ([]models.AvailableDriver, bool) {
	if g.cache == nil || g.cacheTTL <= 0 {
		return nil, false
	}
	data, found, err := g.cache.Get(ctx, constants.KeyAvailableDrivers)
	if err != nil {
		logger.WarnCtx(ctx, "Available drivers cache read failed", logger.Err(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	var drivers []models.AvailableDriver
	if err := json.Unmarshal(data, &drivers); err != nil {
		return nil, false
	}
	return drivers, true
}

func (g *ProfileGW) store(ctx context.Context, drivers []models.AvailableDriver) {
	if g.cache == nil || g.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(drivers)
	if err != nil {
		return
	}
	if err := g.cache.Set(ctx, constants.KeyAvailableDrivers, data, g.cacheTTL); err != nil {
		logger.WarnCtx(ctx, "Available drivers cache write failed", logger.Err(err))
	}
}

func profileBreakerConfig(cfg models.ProfileConfig) circuitbreaker.Config {
	bc := circuitbreaker.DefaultConfig("profile-service")
	if cfg.BreakerFailures > 0 {
		bc.FailureThreshold = uint32(cfg.BreakerFailures)
	}
	if cfg.BreakerTimeout > 0 {
		bc.Timeout = cfg.BreakerTimeout
	}
	bc.IsFailure = isTransient
	return bc
}

func profileRetryConfig() retry.Config {
	cfg := retry.DefaultConfig()
	cfg.Retryable = isTransient
	return cfg
}

// isTransient reports whether a profile call is worth repeating: transport
// failures and 5xx answers are, client errors are not.
func isTransient(err error) bool {
	var statusErr *httppkg.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled)
}
