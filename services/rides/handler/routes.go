package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
)

// RegisterRoutes registers all HTTP routes under /api/v1. Everything except
// the fare calculator requires a bearer token.
func (h *Handler) RegisterRoutes(e *echo.Echo, revoked middleware.RevocationStore, redisClient *redis.Client) {
	api := e.Group("/api/v1")
	api.POST("/fare/calculate", h.ridesHTTP.CalculateFare)

	auth := api.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT, revoked))

	requests := auth.Group("/requests")
	requests.POST("", h.ridesHTTP.CreateRequest)
	requests.GET("/active", h.ridesHTTP.ListActiveRequests)
	requests.GET("/:requestID", h.ridesHTTP.GetRequest)
	requests.POST("/:requestID/offers", h.ridesHTTP.SubmitOffer)
	requests.GET("/:requestID/offers", h.ridesHTTP.ListOffers)

	auth.POST("/offers/:offerID/accept", h.ridesHTTP.AcceptOffer)
	auth.POST("/drivers/nearby", h.ridesHTTP.NearbyDrivers)

	ridesGroup := auth.Group("/rides")
	ridesGroup.GET("", h.ridesHTTP.ListMyRides)
	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide)
	ridesGroup.GET("/:rideID/history", h.ridesHTTP.GetHistory)
	ridesGroup.PUT("/:rideID/status", h.ridesHTTP.UpdateStatus)
	ridesGroup.POST("/:rideID/cancel", h.ridesHTTP.CancelRide)
	ridesGroup.POST("/:rideID/rate", h.ridesHTTP.RateRide)
	ridesGroup.GET("/:rideID/tracking", h.ridesHTTP.GetTracking)

	var trackingLimit []echo.MiddlewareFunc
	if redisClient != nil && h.cfg.Rides.TrackingRateLimit > 0 {
		trackingLimit = append(trackingLimit, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient,
			Key:         "ratelimit:tracking",
			Limit:       h.cfg.Rides.TrackingRateLimit,
			Period:      time.Minute,
		}))
	}
	ridesGroup.POST("/:rideID/tracking", h.ridesHTTP.AddTrackingPoint, trackingLimit...)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.revocationNATS.InitNATSConsumers()
}
