package api

import (
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
)

// requestUserID resolves the authenticated user from proxy headers.
// Authentication itself happens upstream (oauth2-proxy or similar); the
// proxy injects the resolved user id. The query parameter form exists for
// WebSocket clients that cannot set headers.
func requestUserID(c *echo.Context) (uuid.UUID, error) {
	raw := c.Request().Header.Get("X-User-ID")
	if raw == "" {
		raw = c.QueryParam("user_id")
	}
	if raw == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "user identity is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid user id")
	}
	return id, nil
}
