package api

import (
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/daybreakhq/daybreak/pkg/models"
)

// createAdhocTaskHandler handles POST /api/v1/tasks.
func (s *Server) createAdhocTaskHandler(c *echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	var req models.CreateAdhocTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.UserID = userID

	task, err := s.svc.Tasks.CreateAdhocTask(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, task)
}

// taskActionRequest is the body of POST /api/v1/tasks/:id/actions.
type taskActionRequest struct {
	Action string `json:"action"`
	Note   string `json:"note"`
}

// taskActionHandler handles POST /api/v1/tasks/:id/actions.
func (s *Server) taskActionHandler(c *echo.Context) error {
	userID, err := requestUserID(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid task id")
	}

	var req taskActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := s.svc.Tasks.RecordTaskAction(c.Request().Context(), models.RecordTaskActionRequest{
		UserID: userID,
		TaskID: taskID,
		Action: req.Action,
		Note:   req.Note,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, task)
}
