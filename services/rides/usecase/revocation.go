package usecase

import (
	"context"
	"strings"

	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/rides"
)

type tokenRevocationUC struct {
	revocationRepo rides.RevocationRepo
	now            models.Clock
}

// NewTokenRevocationUC creates the token revocation use case
func NewTokenRevocationUC(revocationRepo rides.RevocationRepo) rides.TokenRevocationUC {
	return &tokenRevocationUC{revocationRepo: revocationRepo, now: models.Now}
}

// RevokeToken remembers a revoked token id until the token expires on its own
func (uc *tokenRevocationUC) RevokeToken(ctx context.Context, event models.TokenRevokedEvent) error {
	if strings.TrimSpace(event.TokenID) == "" {
		return rides.NewValidationError("token_id is required")
	}

	ttl := event.ExpiresAt.Sub(uc.now())
	if ttl <= 0 {
		logger.Debug("Ignoring revocation of expired token", logger.String("token_id", event.TokenID))
		return nil
	}

	return uc.revocationRepo.StoreRevokedToken(ctx, event.TokenID, ttl)
}
