package api

import (
	echo "github.com/labstack/echo/v5"
)

// securityHeaders hardens every API response. The planner UI and the
// kiosk display are separate origins that talk to this API over fetch
// and WebSocket; nothing ever frames it, and no response needs access to
// device sensors.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			h.Set("Cache-Control", "no-store")
			return next(c)
		}
	}
}
