package api

import (
	"errors"
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/daybreakhq/daybreak/pkg/store"
)

// wsHandler upgrades GET /days/today/context to a WebSocket and delegates
// to the ConnectionManager.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	userID, err := requestUserID(c)
	if err != nil {
		return err
	}
	user, err := s.store.User(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "unknown user")
		}
		return mapServiceError(err)
	}

	opts := &websocket.AcceptOptions{}
	if len(s.cfg.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.AllowedWSOrigins
	} else {
		// No allowlist configured: same-origin deployments behind the
		// auth proxy. Origin enforcement happens there.
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn, user)
	return nil
}
