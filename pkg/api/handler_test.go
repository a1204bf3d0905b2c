package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

// newTestContext builds an echo context with the request user set.
func newTestContext(t *testing.T, method, target, body string) *echo.Context {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("X-User-ID", uuid.New().String())
	return e.NewContext(req, httptest.NewRecorder())
}

func assertHTTPError(t *testing.T, err error, wantCode int, wantMsg string) {
	t.Helper()
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok, "expected echo.HTTPError") {
			assert.Equal(t, wantCode, he.Code)
			assert.Contains(t, he.Message, wantMsg)
		}
	}
}

func TestHandlersRequireUser(t *testing.T) {
	// Validation-only: handlers reject before touching the service layer.
	s := &Server{}
	e := echo.New()

	handlers := map[string]echo.HandlerFunc{
		"schedule":          s.scheduleDayHandler,
		"start":             s.startDayHandler,
		"complete":          s.completeDayHandler,
		"unschedule":        s.unscheduleDayHandler,
		"preview":           s.previewDayHandler,
		"risk":              s.taskRiskHandler,
		"adhoc task":        s.createAdhocTaskHandler,
		"task action":       s.taskActionHandler,
		"brain dump":        s.captureBrainDumpHandler,
		"calendar sync":     s.syncCalendarHandler,
		"push subscription": s.registerPushSubscriptionHandler,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			c := e.NewContext(req, httptest.NewRecorder())
			assertHTTPError(t, h(c), http.StatusUnauthorized, "user identity")
		})
	}
}

func TestRequestUserIDInvalid(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "not-a-uuid")
	c := e.NewContext(req, httptest.NewRecorder())

	_, err := requestUserID(c)
	assertHTTPError(t, err, http.StatusUnauthorized, "invalid user id")
}

func TestRequestUserIDFromQueryParam(t *testing.T) {
	e := echo.New()
	want := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/days/today/context?user_id="+want.String(), nil)
	c := e.NewContext(req, httptest.NewRecorder())

	got, err := requestUserID(c)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTaskActionHandlerInvalidTaskID(t *testing.T) {
	// Missing :id path param parses as an empty uuid and is rejected.
	s := &Server{}
	c := newTestContext(t, http.MethodPost, "/api/v1/tasks//actions", `{"action":"COMPLETED"}`)

	assertHTTPError(t, s.taskActionHandler(c), http.StatusBadRequest, "invalid task id")
}

func TestTaskRiskHandlerInvalidDate(t *testing.T) {
	s := &Server{}
	c := newTestContext(t, http.MethodGet, "/api/v1/days//risk", "")
	assertHTTPError(t, s.taskRiskHandler(c), http.StatusBadRequest, "invalid date")
}

func TestPreviewDayHandlerInvalidTemplateID(t *testing.T) {
	s := &Server{}
	c := newTestContext(t, http.MethodGet, "/api/v1/days/2026-03-14/preview?template_id=zzz", "")

	assertHTTPError(t, s.previewDayHandler(c), http.StatusBadRequest, "invalid template_id")
}
