// Daybreak planning server — serves the HTTP and WebSocket API, runs the
// job queue workers, and drives the per-minute reactive loop.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/daybreakhq/daybreak/pkg/api"
	"github.com/daybreakhq/daybreak/pkg/cleanup"
	"github.com/daybreakhq/daybreak/pkg/config"
	"github.com/daybreakhq/daybreak/pkg/cron"
	"github.com/daybreakhq/daybreak/pkg/database"
	"github.com/daybreakhq/daybreak/pkg/dispatch"
	"github.com/daybreakhq/daybreak/pkg/events"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/queue"
	"github.com/daybreakhq/daybreak/pkg/reactive"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
	"github.com/daybreakhq/daybreak/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildRunner assembles the LLM runner from the configured providers.
// A deployment without providers still runs; LLM-driven jobs fail per-user
// with a clear error instead of at startup.
func buildRunner(cfg *config.Config) *llm.Runner {
	var gws []llm.Gateway
	for name, p := range cfg.LLMProviders {
		if p.Type != config.ProviderAnthropic {
			slog.Warn("Skipping LLM provider with unsupported type", "provider", name, "type", p.Type)
			continue
		}
		gw, err := llm.NewAnthropicGateway(os.Getenv(p.APIKeyEnv), p.Model)
		if err != nil {
			slog.Warn("Skipping LLM provider", "provider", name, "error", err)
			continue
		}
		gws = append(gws, gw)
		slog.Info("LLM provider initialized", "provider", name, "model", p.Model)
	}
	if len(gws) == 0 {
		slog.Warn("No LLM providers configured; brain dump, SMS and overview jobs will fail")
	}
	return llm.NewRunner(gws...)
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting daybreak",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (migrations run on connect)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Pub/sub: publisher writes events + NOTIFY, listener feeds the hub
	hub := events.NewHub()
	publisher := events.NewPublisher(dbClient.DB())

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), hub)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	hub.SetListener(notifyListener)
	slog.Info("Realtime infrastructure initialized")

	// 5. Transports. Outbound SMS, web push and calendar sync run through
	// gateway interfaces; deployments plug their providers in here.
	smsGateway := &gateways.StubSMSGateway{}
	pushGateway := &gateways.StubPushGateway{}
	calendarGateway := &gateways.StubCalendarGateway{}
	tokenRefresher := &gateways.StubTokenRefresher{}

	// 6. Write core: unit of work + post-commit domain event handlers
	st := store.New(dbClient.Client)
	runner := buildRunner(cfg)

	handlers := dispatch.NewRegistry()
	dispatcher := dispatch.NewDispatcher(handlers)
	uowf := uow.NewFactory(dbClient, publisher, dispatcher)

	notificationService := services.NewNotificationService(uowf, st, pushGateway)
	dayService := services.NewDayService(uowf, st)
	taskService := services.NewTaskService(uowf, st)
	messageService := services.NewMessageService(uowf, st)
	calendarService := services.NewCalendarService(uowf, st, calendarGateway, tokenRefresher)
	contextService := services.NewContextService(st)

	handlers.Register("AlarmTriggeredEvent", func() dispatch.Handler {
		return reactive.NewAlarmTransportHandler(uowf, st, notificationService, smsGateway, publisher)
	})
	slog.Info("Services initialized")

	// 7. Job executors
	registry := queue.NewRegistry()
	registry.Register(services.JobScheduleUserDay, queue.NewScheduleDayExecutor(dayService))
	registry.Register(services.JobSendPushNotification, queue.NewPushExecutor(notificationService))
	registry.Register(services.JobProcessBrainDumpItem,
		queue.NewBrainDumpExecutor(uowf, st, runner, taskService, contextService))
	registry.Register(services.JobProcessInboundSMS,
		queue.NewInboundSMSExecutor(uowf, st, runner, taskService, contextService, smsGateway))

	registry.Register(queue.KindEvaluateAlarms,
		queue.NewUserEvaluatorExecutor(st, reactive.NewAlarmEvaluator(uowf, st)))
	registry.Register(queue.KindEvaluateTiming,
		queue.NewUserEvaluatorExecutor(st, reactive.NewTimingEvaluator(uowf, st)))
	registry.Register(queue.KindEvaluateReminders,
		queue.NewUserEvaluatorExecutor(st, reactive.NewReminderEvaluator(uowf, st, notificationService, smsGateway, publisher)))
	registry.Register(queue.KindEvaluateOverview,
		queue.NewUserEvaluatorExecutor(st, reactive.NewMorningOverviewEvaluator(st, runner, contextService, taskService, notificationService)))
	registry.Register(queue.KindEvaluateSmart,
		queue.NewUserEvaluatorExecutor(st, reactive.NewSmartNotificationEvaluator(st, runner, contextService, notificationService,
			cfg.Notifications.SmartEnabled, cfg.Notifications.SmartCooldown)))
	registry.Register(queue.KindEvaluateKiosk,
		queue.NewUserEvaluatorExecutor(st, reactive.NewKioskNotificationEvaluator(runner, contextService, publisher,
			cfg.Notifications.KioskEnabled)))

	// 8. Worker pool (before HTTP, so deferred jobs drain immediately)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, registry)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)

	// 10. Cron fan-out loop
	var scheduler *cron.Scheduler
	if cfg.Cron.Enabled {
		scheduler = cron.NewScheduler(dbClient, st, reactive.NewNewDayEmitter(st, publisher))
		if err := scheduler.Start(ctx); err != nil {
			slog.Error("Failed to start cron scheduler", "error", err)
			os.Exit(1)
		}
		slog.Info("Cron scheduler started", "entries", scheduler.Entries())
	} else {
		slog.Info("Cron scheduler disabled on this replica")
	}

	// 11. HTTP + WebSocket server
	httpServer := api.NewServer(cfg.Server, dbClient, st, api.Services{
		Days:          dayService,
		Tasks:         taskService,
		Messages:      messageService,
		Calendar:      calendarService,
		Notifications: notificationService,
		Contexts:      contextService,
	}, workerPool, api.NewConnectionManager(hub, contextService))

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.ListenAddr)
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Daybreak started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop producing, drain workers, then HTTP
	if scheduler != nil {
		scheduler.Stop()
	}
	cleanupService.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
