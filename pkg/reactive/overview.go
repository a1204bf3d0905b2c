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

// overviewBucket is the evaluator's cron granularity. A user's configured
// overview time matches exactly one bucket per day.
const overviewBucket = 15 * time.Minute

// riskLookbackDays is the completion-history window fed to the overview.
const riskLookbackDays = 30

// MorningOverviewEvaluator sends the LLM-written morning overview when the
// user's configured time falls in the current 15-minute bucket.
type MorningOverviewEvaluator struct {
	store         *store.Store
	runner        *llm.Runner
	contexts      *services.ContextService
	tasks         *services.TaskService
	notifications *services.NotificationService
}

// NewMorningOverviewEvaluator creates a MorningOverviewEvaluator.
func NewMorningOverviewEvaluator(st *store.Store, runner *llm.Runner, cs *services.ContextService, ts *services.TaskService, ns *services.NotificationService) *MorningOverviewEvaluator {
	return &MorningOverviewEvaluator{store: st, runner: runner, contexts: cs, tasks: ts, notifications: ns}
}

// EvaluateUser checks the time bucket, the provider and the daily dedup,
// then runs the overview use case and pushes its text.
func (e *MorningOverviewEvaluator) EvaluateUser(ctx context.Context, user *domain.User, now time.Time) error {
	date, loc := userToday(user, now)
	if !e.inBucket(user, now, loc) {
		return nil
	}
	provider := user.Settings.LLMProvider
	if provider == "" || !e.runner.HasProvider(provider) {
		slog.Debug("Morning overview skipped, no LLM provider", "user_id", user.ID)
		return nil
	}

	sentToday, err := e.sentToday(ctx, user, date, loc)
	if err != nil {
		return err
	}
	if sentToday {
		return nil
	}

	risks, err := e.tasks.TaskRisk(ctx, user.ID, date, riskLookbackDays)
	if err != nil {
		return err
	}
	_, serialized, err := loadSerializedContext(ctx, e.contexts, user, date, loc)
	if err != nil {
		return err
	}

	contextPrompt, err := templates.Render(templates.MorningOverviewContext, map[string]any{
		"Date":       string(date),
		"Weekday":    date.Weekday().String(),
		"Now":        now.In(loc).Format("15:04"),
		"Timezone":   loc.String(),
		"DayContext": serialized,
		"RiskyTasks": risks,
	})
	if err != nil {
		return err
	}

	var overview string
	snapshot, err := e.runner.Run(ctx, provider, llm.UseCase{
		Name:              "morning_overview",
		System:            templates.MustRender(templates.MorningOverviewSystem, nil),
		Context:           contextPrompt,
		Ask:               templates.MustRender(templates.MorningOverviewAsk, nil),
		Tools:             []llm.ToolSpec{sendOverviewTool(&overview)},
		SerializedContext: serialized,
	})
	if err != nil {
		return err
	}
	if overview == "" {
		slog.Warn("Morning overview run produced no text", "user_id", user.ID)
		return nil
	}

	_, err = e.notifications.SendPushNotification(ctx, models.SendPushNotificationRequest{
		UserID:      user.ID,
		Content:     overview,
		TriggeredBy: "morning_overview",
		LLMSnapshot: snapshot,
	})
	return err
}

// inBucket reports whether the user's overview time falls inside the
// 15-minute bucket containing now (user-local).
func (e *MorningOverviewEvaluator) inBucket(user *domain.User, now time.Time, loc *time.Location) bool {
	configured := user.Settings.MorningOverviewTime
	if configured == "" {
		return false
	}
	target, err := parseClock(configured)
	if err != nil {
		slog.Warn("Invalid morning_overview_time", "user_id", user.ID, "value", configured)
		return false
	}
	local := now.In(loc)
	bucketStart := (local.Hour()*60 + local.Minute()) / 15 * 15
	return target >= bucketStart && target < bucketStart+int(overviewBucket.Minutes())
}

// sentToday reports whether a morning overview already went out today in
// the user's timezone.
func (e *MorningOverviewEvaluator) sentToday(ctx context.Context, user *domain.User, date domain.Date, loc *time.Location) (bool, error) {
	notifs, err := e.store.PushNotificationsBetween(ctx, user.ID, date.Time(loc), date.AddDays(1).Time(loc))
	if err != nil {
		return false, err
	}
	for _, n := range notifs {
		if n.TriggeredBy == "morning_overview" {
			return true, nil
		}
	}
	return false, nil
}

// sendOverviewTool captures the overview text the model produces.
func sendOverviewTool(out *string) llm.ToolSpec {
	return llm.ToolSpec{
		Name:        "send_overview",
		Description: "Send the finished morning overview to the user.",
		Params: []llm.ParamSpec{
			{Name: "text", Type: llm.ParamString, Doc: "the overview text"},
		},
		Invoke: func(_ context.Context, args map[string]any) (string, error) {
			*out, _ = args["text"].(string)
			return "overview queued", nil
		},
	}
}
