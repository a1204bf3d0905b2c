// Package api exposes the HTTP surface: command endpoints over the
// service layer, the SMS webhook, health, and the WebSocket sync
// endpoint at /days/today/context.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/daybreakhq/daybreak/pkg/config"
	"github.com/daybreakhq/daybreak/pkg/database"
	"github.com/daybreakhq/daybreak/pkg/queue"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
)

// Services bundles the command and query handlers the server fronts.
type Services struct {
	Days          *services.DayService
	Tasks         *services.TaskService
	Messages      *services.MessageService
	Calendar      *services.CalendarService
	Notifications *services.NotificationService
	Contexts      *services.ContextService
}

// Server is the HTTP server.
type Server struct {
	cfg         *config.ServerConfig
	dbClient    *database.Client
	store       *store.Store
	svc         Services
	workerPool  *queue.WorkerPool
	connManager *ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the server and registers all routes.
func NewServer(cfg *config.ServerConfig, db *database.Client, st *store.Store, svc Services, pool *queue.WorkerPool, connManager *ConnectionManager) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    db,
		store:       st,
		svc:         svc,
		workerPool:  pool,
		connManager: connManager,
		echo:        echo.New(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/days/today/context", s.wsHandler)

	// SMS provider callback; caller is the gateway, not a user.
	e.POST("/webhooks/sms", s.inboundSMSHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/days/:date/schedule", s.scheduleDayHandler)
	v1.POST("/days/:date/start", s.startDayHandler)
	v1.POST("/days/:date/complete", s.completeDayHandler)
	v1.POST("/days/:date/unschedule", s.unscheduleDayHandler)
	v1.GET("/days/:date/preview", s.previewDayHandler)
	v1.GET("/days/:date/risk", s.taskRiskHandler)

	v1.POST("/tasks", s.createAdhocTaskHandler)
	v1.POST("/tasks/:id/actions", s.taskActionHandler)

	v1.POST("/brain-dumps", s.captureBrainDumpHandler)
	v1.POST("/calendar/sync", s.syncCalendarHandler)
	v1.POST("/push-subscriptions", s.registerPushSubscriptionHandler)
}

// Start runs the HTTP server until Shutdown or a listener error.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", s.cfg.ListenAddr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
