package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
)

// ListMyRides pages through the caller's rides
func (h *RidesHandler) ListMyRides(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	filter, msg := parseRideFilter(c)
	if msg != "" {
		return utils.BadRequestResponse(c, msg)
	}

	page, err := h.rideUC.ListMyRides(c.Request().Context(), p, filter)
	if err != nil {
		return errorResponse(c, "list_my_rides", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides", page)
}

func parseRideFilter(c echo.Context) (models.RideFilter, string) {
	var filter models.RideFilter

	for _, raw := range c.QueryParams()["status"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, models.RideStatus(strings.ToUpper(s)))
			}
		}
	}

	var ok bool
	if filter.Page, ok = utils.QueryInt(c, "page", 0); !ok {
		return filter, "page must be an integer"
	}
	if filter.Size, ok = utils.QueryInt(c, "size", 0); !ok {
		return filter, "size must be an integer"
	}

	for _, q := range []struct {
		name string
		dest **time.Time
	}{{"date_from", &filter.DateFrom}, {"date_to", &filter.DateTo}} {
		raw := c.QueryParam(q.name)
		if raw == "" {
			continue
		}
		t, err := parseDate(raw)
		if err != nil {
			return filter, q.name + " must be RFC3339 or YYYY-MM-DD"
		}
		*q.dest = &t
	}
	return filter, ""
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// GetRide returns a ride to one of its parties
func (h *RidesHandler) GetRide(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	rideID, err := pathID(c, "rideID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), p, rideID)
	if err != nil {
		return errorResponse(c, "get_ride", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride", ride)
}

// GetHistory returns the status history of a ride
func (h *RidesHandler) GetHistory(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	rideID, err := pathID(c, "rideID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	history, err := h.rideUC.GetHistory(c.Request().Context(), p, rideID)
	if err != nil {
		return errorResponse(c, "get_history", err)
	}
	if history == nil {
		history = []*models.RideStatusHistory{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride history", history)
}

// UpdateStatus moves a ride to the requested status
func (h *RidesHandler) UpdateStatus(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	rideID, err := pathID(c, "rideID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.Status = models.RideStatus(strings.ToUpper(string(req.Status)))

	ride, err := h.rideUC.TransitionRide(c.Request().Context(), p, rideID, req)
	if err != nil {
		return errorResponse(c, "update_status", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride status updated", ride)
}

// CancelRide cancels a ride that has not finished
func (h *RidesHandler) CancelRide(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	rideID, err := pathID(c, "rideID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.CancelRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.CancelRide(c.Request().Context(), p, rideID, req)
	if err != nil {
		return errorResponse(c, "cancel_ride", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// RateRide stores the caller's rating of a completed ride
func (h *RidesHandler) RateRide(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	rideID, err := pathID(c, "rideID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.RateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.RateRide(c.Request().Context(), p, rideID, req)
	if err != nil {
		return errorResponse(c, "rate_ride", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride rated", ride)
}

// AddTrackingPoint records a location sample from the ride's driver
func (h *RidesHandler) AddTrackingPoint(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	rideID, err := pathID(c, "rideID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.TrackingPointRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	point, err := h.rideUC.AddTrackingPoint(c.Request().Context(), p, rideID, req)
	if err != nil {
		return errorResponse(c, "add_tracking_point", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Tracking point recorded", point)
}

// GetTracking returns the latest tracking samples of a ride
func (h *RidesHandler) GetTracking(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	rideID, err := pathID(c, "rideID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	limit, ok := utils.QueryInt(c, "limit", 0)
	if !ok {
		return utils.BadRequestResponse(c, "limit must be an integer")
	}

	points, err := h.rideUC.GetTracking(c.Request().Context(), p, rideID, limit)
	if err != nil {
		return errorResponse(c, "get_tracking", err)
	}
	if points == nil {
		points = []*models.RideTrackingPoint{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride tracking", points)
}
