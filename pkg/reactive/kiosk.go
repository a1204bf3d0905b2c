package reactive

import (
	"context"
	"log/slog"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/events"
	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/templates"
)

// KioskNotificationEvaluator mirrors the smart evaluator but broadcasts
// the decided message verbatim on the user's kiosk channel instead of
// sending a push. Kiosks dedup client-side via the message hash in the
// payload, so no server-side record is written.
type KioskNotificationEvaluator struct {
	runner    *llm.Runner
	contexts  *services.ContextService
	publisher *events.Publisher
	enabled   bool
}

// NewKioskNotificationEvaluator creates a KioskNotificationEvaluator.
func NewKioskNotificationEvaluator(runner *llm.Runner, cs *services.ContextService, pub *events.Publisher, enabled bool) *KioskNotificationEvaluator {
	return &KioskNotificationEvaluator{runner: runner, contexts: cs, publisher: pub, enabled: enabled}
}

// EvaluateUser runs the decide_notification use case and publishes the
// message on user:{id}:kiosk-notifications when warranted.
func (e *KioskNotificationEvaluator) EvaluateUser(ctx context.Context, user *domain.User, now time.Time) error {
	if !e.enabled {
		return nil
	}
	provider := user.Settings.LLMProvider
	if provider == "" || !e.runner.HasProvider(provider) {
		slog.Debug("Kiosk notification skipped, no LLM provider", "user_id", user.ID)
		return nil
	}

	date, loc := userToday(user, now)
	dc, serialized, err := loadSerializedContext(ctx, e.contexts, user, date, loc)
	if err != nil {
		return err
	}

	contextPrompt, err := templates.Render(templates.SmartNotificationContext, map[string]any{
		"Now":                 now.In(loc).Format("15:04"),
		"Timezone":            loc.String(),
		"DayContext":          serialized,
		"RecentNotifications": dc.PushNotifications,
	})
	if err != nil {
		return err
	}

	var decision notifyDecision
	_, err = e.runner.Run(ctx, provider, llm.UseCase{
		Name:              "kiosk_notification",
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
		return nil
	}
	return e.publisher.PublishKioskNotification(ctx, user.ID, decision.Message)
}
