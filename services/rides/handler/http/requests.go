package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
)

// CalculateFare prices a trip without authentication
func (h *RidesHandler) CalculateFare(c echo.Context) error {
	var req models.FareCalculationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	estimate, err := h.requestUC.CalculateFare(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, "calculate_fare", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fare calculated", estimate)
}

// CreateRequest opens a new ride request for the calling rider
func (h *RidesHandler) CreateRequest(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	created, err := h.requestUC.CreateRequest(c.Request().Context(), p, req)
	if err != nil {
		return errorResponse(c, "create_request", err)
	}
	middleware.AddAttribute(c, "request.id", created.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Ride request created", created)
}

// ListActiveRequests lists open requests for drivers
func (h *RidesHandler) ListActiveRequests(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	limit, ok := utils.QueryInt(c, "limit", 0)
	if !ok {
		return utils.BadRequestResponse(c, "limit must be an integer")
	}

	requests, err := h.requestUC.ListActiveRequests(c.Request().Context(), p, limit)
	if err != nil {
		return errorResponse(c, "list_active_requests", err)
	}
	if requests == nil {
		requests = []*models.RideRequest{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active ride requests", requests)
}

// GetRequest returns a single ride request
func (h *RidesHandler) GetRequest(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	requestID, err := pathID(c, "requestID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	req, err := h.requestUC.GetRequest(c.Request().Context(), p, requestID)
	if err != nil {
		return errorResponse(c, "get_request", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride request", req)
}

// NearbyDrivers lists available drivers around a point
func (h *RidesHandler) NearbyDrivers(c echo.Context) error {
	if _, ok := middleware.PrincipalFrom(c); !ok {
		return unauthenticated(c)
	}

	var req models.NearbyDriversRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	drivers, err := h.requestUC.NearbyDrivers(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, "nearby_drivers", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers", drivers)
}
