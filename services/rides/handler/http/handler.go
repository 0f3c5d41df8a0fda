package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/rides"
)

// RidesHandler handles HTTP requests for ride requests, offers and rides
type RidesHandler struct {
	requestUC rides.RequestUC
	offerUC   rides.OfferUC
	rideUC    rides.RideUC
}

// NewRidesHandler creates a new rides HTTP handler
func NewRidesHandler(requestUC rides.RequestUC, offerUC rides.OfferUC, rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		requestUC: requestUC,
		offerUC:   offerUC,
		rideUC:    rideUC,
	}
}

// pathID parses a UUID path parameter
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

func unauthenticated(c echo.Context) error {
	return utils.UnauthorizedResponse(c, "Authentication required")
}
