package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nlog/notes-system/internal/api/metrics"
	"github.com/nlog/notes-system/internal/core/domain"
	"github.com/nlog/notes-system/internal/core/ports"
)

// IdentityKey is the echo context key under which Auth stores the verified
// account email.
const IdentityKey = "identity"

const notAuthenticated = "Not authenticated"

// Auth validates the bearer token and injects the acting identity into the
// request context. The token subject is re-fetched from the account
// directory, so a valid token for a vanished account is rejected too. All
// failure modes produce the same 401 body; callers learn nothing about why.
func Auth(tokens ports.TokenService, accounts ports.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthenticated)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthenticated)
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthenticated)
			}

			account, err := accounts.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("unknown_account").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, notAuthenticated)
				}
				return err
			}

			c.Set(IdentityKey, account.Email)

			return next(c)
		}
	}
}
