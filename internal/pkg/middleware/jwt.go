package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/campuspool/campuspool/internal/pkg/jwt"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
)

const actorContextKey = "actor"

// JWTAuthMiddleware authenticates requests carrying a Bearer token and
// stores the resolved actor in the echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(actorContextKey, claims.Actor())
			return next(c)
		}
	}
}

// ActorFromContext returns the authenticated actor, or the unauthenticated
// sentinel if the request carried no valid identity.
func ActorFromContext(c echo.Context) models.Actor {
	if actor, ok := c.Get(actorContextKey).(models.Actor); ok {
		return actor
	}
	return models.Actor{}
}
