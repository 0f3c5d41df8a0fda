package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
)

// SubmitOffer places the calling driver's offer on a request
func (h *RidesHandler) SubmitOffer(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	requestID, err := pathID(c, "requestID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var req models.SubmitOfferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	offer, err := h.offerUC.SubmitOffer(c.Request().Context(), p, requestID, req)
	if err != nil {
		return errorResponse(c, "submit_offer", err)
	}
	middleware.AddAttribute(c, "offer.id", offer.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Offer submitted", offer)
}

// ListOffers lists live offers on the caller's request
func (h *RidesHandler) ListOffers(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	requestID, err := pathID(c, "requestID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	offers, err := h.offerUC.ListOffers(c.Request().Context(), p, requestID)
	if err != nil {
		return errorResponse(c, "list_offers", err)
	}
	if offers == nil {
		offers = []*models.DriverOffer{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver offers", offers)
}

// AcceptOffer accepts an offer and returns the new ride
func (h *RidesHandler) AcceptOffer(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	offerID, err := pathID(c, "offerID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid offer ID")
	}

	accepted, err := h.offerUC.AcceptOffer(c.Request().Context(), p, offerID)
	if err != nil {
		return errorResponse(c, "accept_offer", err)
	}
	middleware.AddAttribute(c, "ride.id", accepted.Ride.ID.String())
	return utils.SuccessResponse(c, http.StatusOK, "Offer accepted", accepted)
}
