package middleware

import (
	"net/http"
	"quotation-management-api/pkg/jwtutil"
	"quotation-management-api/pkg/logger"
	"strings"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

// ClaimsContextKey is where validated user claims live on the echo context.
const ClaimsContextKey = "user"

// JWTAuth validates the bearer token and stores the claims on the context.
func JWTAuth(jwt *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"reason": "Missing authorization header"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"reason": "Invalid authorization header format"})
			}

			claims, err := jwt.ValidateToken(parts[1])
			if err != nil {
				logger.L().Warn("invalid or expired token", zap.Error(err))

				return c.JSON(http.StatusUnauthorized, map[string]string{"reason": "Invalid or expired token"})
			}

			c.Set(ClaimsContextKey, claims)

			return next(c)
		}
	}
}
