package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/database"
)

// RevocationRepo stores revoked token ids in Redis until the token would
// have expired anyway.
type RevocationRepo struct {
	redisClient *database.RedisClient
}

// NewRevocationRepository creates a revocation repository
func NewRevocationRepository(redisClient *database.RedisClient) *RevocationRepo {
	return &RevocationRepo{redisClient: redisClient}
}

// StoreRevokedToken marks tokenID revoked for ttl
func (r *RevocationRepo) StoreRevokedToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyRevokedToken, tokenID)
	if err := r.redisClient.Set(ctx, key, []byte("1"), ttl); err != nil {
		return fmt.Errorf("failed to store revoked token: %w", err)
	}
	return nil
}
