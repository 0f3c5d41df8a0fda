package handler

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/campusride/internal/pkg/models"
	natspkg "github.com/piresc/campusride/internal/pkg/nats"
	"github.com/piresc/campusride/services/rides"
	httpHandler "github.com/piresc/campusride/services/rides/handler/http"
	natsHandler "github.com/piresc/campusride/services/rides/handler/nats"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP      *httpHandler.RidesHandler
	revocationNATS *natsHandler.RevocationHandler
	cfg            *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	requestUC rides.RequestUC,
	offerUC rides.OfferUC,
	rideUC rides.RideUC,
	revocationUC rides.TokenRevocationUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		ridesHTTP:      httpHandler.NewRidesHandler(requestUC, offerUC, rideUC),
		revocationNATS: natsHandler.NewRevocationHandler(revocationUC, natsClient, nrApp),
		cfg:            cfg,
	}
}
