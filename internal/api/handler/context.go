package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both user_id and role
// must be present, and the role must be one the domain knows.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role := domain.Role(roleStr)
	if !role.IsValid() {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown role in token")
	}

	return ports.Actor{ID: userID, Role: role}, nil
}
