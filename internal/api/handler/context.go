package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightcart/storefront-api/internal/api/middleware"
	"github.com/brightcart/storefront-api/internal/core/domain"
)

// ctxIdentity extracts the request identity injected by the Authenticate
// middleware. A missing role means the middleware did not run on this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	subjectID, _ := c.Get(middleware.CtxSubjectID).(string)
	return domain.Identity{SubjectID: subjectID, Role: role}, nil
}
