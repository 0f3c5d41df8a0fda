package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	natspkg "github.com/piresc/campusride/internal/pkg/nats"
	nrpkg "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/services/rides"
)

// RevocationHandler consumes token revocation events from the identity service
type RevocationHandler struct {
	revocationUC rides.TokenRevocationUC
	natsClient   *natspkg.Client
	nrApp        *newrelic.Application
}

// NewRevocationHandler creates a new revocation NATS handler
func NewRevocationHandler(
	revocationUC rides.TokenRevocationUC,
	client *natspkg.Client,
	nrApp *newrelic.Application,
) *RevocationHandler {
	return &RevocationHandler{
		revocationUC: revocationUC,
		natsClient:   client,
		nrApp:        nrApp,
	}
}

// InitNATSConsumers subscribes to revocation events. Instances share a queue
// group so each event is stored once.
func (h *RevocationHandler) InitNATSConsumers() error {
	if err := h.natsClient.QueueSubscribe(constants.SubjectTokenRevoked, constants.QueueRides, h.handleTokenRevoked); err != nil {
		return fmt.Errorf("failed to subscribe to token revocations: %w", err)
	}

	logger.Info("Subscribed to token revocation events",
		logger.String("subject", constants.SubjectTokenRevoked),
		logger.String("queue_group", constants.QueueRides))
	return nil
}

func (h *RevocationHandler) handleTokenRevoked(data []byte) error {
	ctx := context.Background()
	if h.nrApp != nil {
		txn := h.nrApp.StartTransaction("NATS.Rides.HandleTokenRevoked")
		defer txn.End()
		ctx = newrelic.NewContext(ctx, txn)
	}
	nrpkg.AddTransactionAttribute(ctx, "message.size", len(data))

	var event models.TokenRevokedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal token revoked event: %w", err)
	}

	if err := h.revocationUC.RevokeToken(ctx, event); err != nil {
		if txn := nrpkg.FromContext(ctx); txn != nil {
			txn.NoticeError(err)
		}
		return fmt.Errorf("failed to revoke token %s: %w", event.TokenID, err)
	}

	logger.InfoCtx(ctx, "Token revocation recorded", logger.String("token_id", event.TokenID))
	return nil
}
