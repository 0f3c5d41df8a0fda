package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/constants"
	jwtpkg "github.com/piresc/campusride/internal/pkg/jwt"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
)

// RevocationStore answers whether a token id has been revoked
type RevocationStore interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// JWTAuthMiddleware validates the bearer token and stores the resulting
// principal on the echo context. Revoked token ids are rejected when a store
// is supplied; store failures are logged and treated as not revoked.
func JWTAuthMiddleware(config models.JWTConfig, revoked RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			principal, err := claims.Principal()
			if err != nil {
				return utils.UnauthorizedResponse(c, err.Error())
			}

			if revoked != nil && principal.TokenID != "" {
				isRevoked, err := revoked.Exists(c.Request().Context(), fmt.Sprintf(constants.KeyRevokedToken, principal.TokenID))
				if err != nil {
					logger.WarnCtx(c.Request().Context(), "Token revocation lookup failed",
						logger.String("token_id", principal.TokenID),
						logger.Err(err))
				} else if isRevoked {
					return utils.UnauthorizedResponse(c, "Token has been revoked")
				}
			}

			c.Set(constants.ContextKeyPrincipal, principal)
			c.Set(constants.ContextKeyUserID, principal.UserID)
			c.Set(constants.ContextKeyUserRole, string(principal.Role))
			AddAttribute(c, "user.id", principal.UserID.String())

			return next(c)
		}
	}
}

// PrincipalFrom returns the authenticated principal set by JWTAuthMiddleware
func PrincipalFrom(c echo.Context) (models.Principal, bool) {
	p, ok := c.Get(constants.ContextKeyPrincipal).(models.Principal)
	return p, ok
}
