package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/models"
)

// scheduleDayRequest is the body of POST /api/v1/days/:date/schedule.
type scheduleDayRequest struct {
	TemplateID *uuid.UUID `json:"template_id"`
}

// scheduleDayHandler handles POST /api/v1/days/:date/schedule.
func (s *Server) scheduleDayHandler(c *echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	var req scheduleDayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	day, err := s.svc.Days.ScheduleDay(c.Request().Context(), models.ScheduleDayRequest{
		UserID:     userID,
		Date:       c.Param("date"),
		TemplateID: req.TemplateID,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, day)
}

// startDayHandler handles POST /api/v1/days/:date/start.
func (s *Server) startDayHandler(c *echo.Context) error {
	return s.transitionDay(c, s.svc.Days.StartDay)
}

// completeDayHandler handles POST /api/v1/days/:date/complete.
func (s *Server) completeDayHandler(c *echo.Context) error {
	return s.transitionDay(c, s.svc.Days.CompleteDay)
}

// unscheduleDayHandler handles POST /api/v1/days/:date/unschedule.
func (s *Server) unscheduleDayHandler(c *echo.Context) error {
	return s.transitionDay(c, s.svc.Days.UnscheduleDay)
}

func (s *Server) transitionDay(c *echo.Context, transition func(ctx context.Context, userID uuid.UUID, rawDate string) (*domain.Day, error)) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}
	day, err := transition(c.Request().Context(), userID, c.Param("date"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, day)
}

// previewDayHandler handles GET /api/v1/days/:date/preview. It returns
// the tasks scheduling would produce without persisting anything.
func (s *Server) previewDayHandler(c *echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	var templateID *uuid.UUID
	if v := c.QueryParam("template_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid template_id")
		}
		templateID = &id
	}

	tasks, err := s.svc.Days.PreviewDay(c.Request().Context(), userID, c.Param("date"), templateID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"tasks": tasks})
}

// taskRiskHandler handles GET /api/v1/days/:date/risk.
func (s *Server) taskRiskHandler(c *echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date: must be YYYY-MM-DD")
	}

	lookback := 14
	if v := c.QueryParam("lookback_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 90 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lookback_days: must be 1-90")
		}
		lookback = n
	}

	risks, err := s.svc.Tasks.TaskRisk(c.Request().Context(), userID, date, lookback)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"risks": risks})
}
