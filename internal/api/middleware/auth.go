package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightcart/storefront-api/internal/api/metrics"
	"github.com/brightcart/storefront-api/internal/api/session"
	"github.com/brightcart/storefront-api/internal/core/ports"
)

// Context keys populated by Authenticate.
const (
	CtxSubjectID = "subject_id"
	CtxRole      = "role"
)

// Authenticate extracts and verifies the caller's token and injects the
// resulting identity into the request context. An absent token is an
// authentication failure (401); a token that fails verification is a
// credential rejection (403).
func Authenticate(carrier *session.Carrier, tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := carrier.Extract(c)
			if token == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("absent").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(CtxSubjectID, identity.SubjectID)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}
