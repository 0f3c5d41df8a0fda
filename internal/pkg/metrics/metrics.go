// Package metrics exposes prometheus instrumentation for the rides service.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campusride"

var (
	RequestsCreated = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "ride_requests_created_total", Help: "Ride requests created"})
	OffersSubmitted = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "driver_offers_submitted_total", Help: "Driver offers submitted"})
	OffersAccepted  = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "driver_offers_accepted_total", Help: "Driver offers accepted"})

	RideTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "ride_transitions_total", Help: "Ride status transitions by target status"},
		[]string{"status"},
	)
	ExpiredBySweep = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "expired_by_sweep_total", Help: "Records deactivated by the expiry sweeper"},
		[]string{"kind"},
	)
	EventsPublishFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "events_publish_failed_total", Help: "Ride events that could not be handed to the notifier"},
		[]string{"subject"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// EchoMiddleware records request count and latency labelled by route template
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
