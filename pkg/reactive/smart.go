package reactive

import (
	"context"
	"log/slog"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/templates"
)

// DefaultSmartCooldown is the minimum gap between proactive pushes.
const DefaultSmartCooldown = 10 * time.Minute

// SmartNotificationEvaluator asks the LLM whether a proactive push is
// warranted right now. Globally gated by configuration; per user it
// requires a configured provider and respects the cooldown.
type SmartNotificationEvaluator struct {
	store         *store.Store
	runner        *llm.Runner
	contexts      *services.ContextService
	notifications *services.NotificationService
	enabled       bool
	cooldown      time.Duration
}

// NewSmartNotificationEvaluator creates a SmartNotificationEvaluator.
// A non-positive cooldown falls back to DefaultSmartCooldown.
func NewSmartNotificationEvaluator(st *store.Store, runner *llm.Runner, cs *services.ContextService, ns *services.NotificationService, enabled bool, cooldown time.Duration) *SmartNotificationEvaluator {
	if cooldown <= 0 {
		cooldown = DefaultSmartCooldown
	}
	return &SmartNotificationEvaluator{
		store:         st,
		runner:        runner,
		contexts:      cs,
		notifications: ns,
		enabled:       enabled,
		cooldown:      cooldown,
	}
}

// EvaluateUser runs the decide_notification use case and delivers the
// resulting push when the decision warrants one.
func (e *SmartNotificationEvaluator) EvaluateUser(ctx context.Context, user *domain.User, now time.Time) error {
	if !e.enabled {
		return nil
	}
	provider := user.Settings.LLMProvider
	if provider == "" || !e.runner.HasProvider(provider) {
		slog.Debug("Smart notification skipped, no LLM provider", "user_id", user.ID)
		return nil
	}

	sent, err := e.store.PushNotificationSentSince(ctx, user.ID, now.Add(-e.cooldown))
	if err != nil {
		return err
	}
	if sent {
		slog.Debug("Smart notification skipped, cooldown active", "user_id", user.ID)
		return nil
	}

	date, loc := userToday(user, now)
	dc, serialized, err := loadSerializedContext(ctx, e.contexts, user, date, loc)
	if err != nil {
		return err
	}

	vars := map[string]any{
		"Now":                 now.In(loc).Format("15:04"),
		"Timezone":            loc.String(),
		"DayContext":          serialized,
		"RecentNotifications": dc.PushNotifications,
	}
	contextPrompt, err := templates.Render(templates.SmartNotificationContext, vars)
	if err != nil {
		return err
	}

	var decision notifyDecision
	snapshot, err := e.runner.Run(ctx, provider, llm.UseCase{
		Name:              "smart_notification",
		System:            templates.MustRender(templates.SmartNotificationSystem, nil),
		Context:           contextPrompt,
		Ask:               templates.MustRender(templates.SmartNotificationAsk, nil),
		Tools:             []llm.ToolSpec{decideNotificationTool(&decision)},
		SerializedContext: serialized,
	})
	if err != nil {
		return err
	}
	if !decision.Fire() {
		slog.Debug("Smart notification declined",
			"user_id", user.ID, "should_notify", decision.ShouldNotify,
			"priority", decision.Priority, "reason", decision.Reason)
		return nil
	}

	_, err = e.notifications.SendPushNotification(ctx, models.SendPushNotificationRequest{
		UserID:      user.ID,
		Content:     decision.Message,
		TriggeredBy: "smart_notification",
		LLMSnapshot: snapshot,
	})
	return err
}
