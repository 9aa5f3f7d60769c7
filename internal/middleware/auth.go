// Package middleware holds the authentication and authorization gates that
// are composed in front of protected routes at registration time.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"elective/internal/auth"
	apperrors "elective/internal/errors"
	"elective/internal/metrics"
)

// Context keys under which the auth gate stores the verified identity.
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

const bearerPrefix = "Bearer "

// Auth requires a valid bearer token and injects its claims into the context.
// The Authorization value may carry a "Bearer " prefix; without one the whole
// header value is treated as the token.
func Auth(tokens *auth.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Token is missing"})
			}

			raw := header
			if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				raw = header[len(bearerPrefix):]
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					metrics.AuthFailuresTotal.WithLabelValues("expired_token").Inc()
					return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Token has expired"})
				}
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Invalid token"})
			}

			c.Set(ContextUsername, claims.Username)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
