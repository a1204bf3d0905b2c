package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
)

// captureBrainDumpHandler handles POST /api/v1/brain-dumps.
func (s *Server) captureBrainDumpHandler(c *echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	var req models.CaptureBrainDumpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.UserID = userID

	dump, err := s.svc.Messages.CaptureBrainDump(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, dump)
}

// inboundSMSHandler handles POST /webhooks/sms. The sender is resolved
// by phone number; unknown numbers are acknowledged and dropped so the
// provider does not retry them.
func (s *Server) inboundSMSHandler(c *echo.Context) error {
	var req models.ReceiveSMSRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	msg, err := s.svc.Messages.ReceiveSMS(c.Request().Context(), req)
	if errors.Is(err, services.ErrNotFound) {
		slog.Warn("Inbound SMS from unknown number dropped", "from", req.FromNumber)
		return c.JSON(http.StatusOK, map[string]any{"dropped": true})
	}
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message_id": msg.ID})
}

// syncCalendarHandler handles POST /api/v1/calendar/sync.
func (s *Server) syncCalendarHandler(c *echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	results, err := s.svc.Calendar.SyncCalendar(c.Request().Context(), userID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"accounts": results})
}

// pushSubscriptionRequest is the body of POST /api/v1/push-subscriptions.
type pushSubscriptionRequest struct {
	Endpoint string            `json:"endpoint"`
	Keys     map[string]string `json:"keys"`
}

// registerPushSubscriptionHandler handles POST /api/v1/push-subscriptions.
func (s *Server) registerPushSubscriptionHandler(c *echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	var req pushSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sub, err := s.svc.Notifications.RegisterPushSubscription(c.Request().Context(), userID, req.Endpoint, req.Keys)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}
