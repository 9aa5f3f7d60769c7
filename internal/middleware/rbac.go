package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"elective/internal/accounts"
	apperrors "elective/internal/errors"
	"elective/internal/metrics"
)

// RequireRole restricts an operation to accounts whose role is on the
// allow-list. The role is re-read from the account store at check time, not
// taken from the token claim, so a role change takes effect on the next
// request even for tokens issued before it.
func RequireRole(store accounts.Store, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, _ := c.Get(ContextUsername).(string)

			acct, ok := store.Get(username)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, apperrors.ErrorResponse{Error: "Insufficient permissions"})
			}
			if _, ok := allowed[acct.Role]; !ok {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, apperrors.ErrorResponse{Error: "Insufficient permissions"})
			}

			return next(c)
		}
	}
}
