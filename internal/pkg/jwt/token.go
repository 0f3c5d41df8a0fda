package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/models"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// Claims are the access token claims issued by the identity service
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ValidateToken verifies an HS256 token signature, expiry and issuer
func ValidateToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidClaims, claims.Issuer)
	}
	return claims, nil
}

// Principal converts validated claims into the authenticated principal
func (c *Claims) Principal() (models.Principal, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: user_id is not a valid UUID", ErrInvalidClaims)
	}
	role, ok := models.ParseRole(c.Role)
	if !ok {
		return models.Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidClaims, c.Role)
	}
	return models.Principal{UserID: userID, Role: role, TokenID: c.ID}, nil
}
