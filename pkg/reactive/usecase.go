package reactive

import (
	"context"
	"encoding/json"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
)

// notifyDecision is the captured output of one decide_notification call.
type notifyDecision struct {
	ShouldNotify bool
	Message      string
	Priority     string
	Reason       string
}

// Fire reports whether the decision warrants a notification. Low-priority
// suggestions are intentionally dropped.
func (d notifyDecision) Fire() bool {
	return d.ShouldNotify && d.Priority != "low" && d.Message != ""
}

// decideNotificationTool builds the single tool the smart and kiosk
// evaluators expose. The callback only records the decision; delivery
// happens after the run so the snapshot can travel with it.
func decideNotificationTool(out *notifyDecision) llm.ToolSpec {
	return llm.ToolSpec{
		Name:        "decide_notification",
		Description: "Record whether to send the user a proactive notification right now.",
		Params: []llm.ParamSpec{
			{Name: "should_notify", Type: llm.ParamBool, Doc: "true to send a notification"},
			{Name: "message", Type: llm.ParamString, Doc: "the notification text", Optional: true},
			{Name: "priority", Type: llm.ParamEnum, Doc: "urgency of the notification", Enum: []string{"low", "medium", "high"}},
			{Name: "reason", Type: llm.ParamString, Doc: "one line explaining the decision", Optional: true},
		},
		Invoke: func(_ context.Context, args map[string]any) (string, error) {
			out.ShouldNotify, _ = args["should_notify"].(bool)
			out.Message, _ = args["message"].(string)
			out.Priority, _ = args["priority"].(string)
			out.Reason, _ = args["reason"].(string)
			return "decision recorded", nil
		},
	}
}

// loadSerializedContext assembles the user's day context and its JSON
// form for prompt rendering and snapshot storage.
func loadSerializedContext(ctx context.Context, svc *services.ContextService, user *domain.User, date domain.Date, loc *time.Location) (*models.DayContext, string, error) {
	dc, err := svc.DayContext(ctx, user.ID, date, loc)
	if err != nil {
		return nil, "", err
	}
	raw, err := json.Marshal(dc)
	if err != nil {
		return nil, "", err
	}
	return dc, string(raw), nil
}
