package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/templates"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// createTaskTool lets a use case drop an actionable item onto the user's
// day. The service opens its own unit of work, so the task lands even when
// the surrounding run later fails.
func createTaskTool(tasks *services.TaskService, userID uuid.UUID, date domain.Date, created *int) llm.ToolSpec {
	return llm.ToolSpec{
		Name:        "create_task",
		Description: "Create an ad-hoc task on the user's day.",
		Params: []llm.ParamSpec{
			{Name: "name", Type: llm.ParamString, Doc: "short task name"},
			{Name: "category", Type: llm.ParamString, Doc: "task category", Optional: true},
		},
		Invoke: func(ctx context.Context, args map[string]any) (string, error) {
			name, _ := args["name"].(string)
			category, _ := args["category"].(string)
			task, err := tasks.CreateAdhocTask(ctx, models.CreateAdhocTaskRequest{
				UserID:   userID,
				Name:     name,
				Date:     string(date),
				Category: category,
			})
			if err != nil {
				return "", err
			}
			*created++
			return fmt.Sprintf("created task %q (%s)", task.Name, task.ID), nil
		},
	}
}

// serializedDayContext assembles and serializes the user's day context for
// prompt rendering and snapshot storage.
func serializedDayContext(ctx context.Context, contexts *services.ContextService, user *domain.User, date domain.Date, loc *time.Location) (string, error) {
	dc, err := contexts.DayContext(ctx, user.ID, date, loc)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(dc)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// NewBrainDumpExecutor handles process_brain_dump_item jobs: one LLM run
// that triages a single captured line into a task or a saved note. The
// item's processed marker makes redelivery a no-op.
func NewBrainDumpExecutor(uowf *uow.Factory, st *store.Store, runner *llm.Runner, tasks *services.TaskService, contexts *services.ContextService) ExecutorFunc {
	return func(ctx context.Context, row *ent.Job) error {
		rawDate, err := payloadString(row.Payload, "day_date")
		if err != nil {
			return err
		}
		date, err := domain.ParseDate(rawDate)
		if err != nil {
			return fmt.Errorf("job payload field \"day_date\": %w", err)
		}
		itemID, err := payloadUUID(row.Payload, "item_id")
		if err != nil {
			return err
		}

		user, err := st.User(ctx, row.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		dump, err := st.BrainDumpByDate(ctx, row.UserID, date)
		if errors.Is(err, store.ErrNotFound) {
			slog.Warn("Brain dump row gone, dropping item job", "user_id", row.UserID, "day_date", rawDate)
			return nil
		}
		if err != nil {
			return err
		}

		var item *domain.BrainDumpItem
		for i := range dump.Items {
			if dump.Items[i].ID == itemID {
				item = &dump.Items[i]
				break
			}
		}
		if item == nil {
			slog.Warn("Brain dump item gone, dropping job", "user_id", row.UserID, "item_id", itemID)
			return nil
		}
		if item.ProcessedAt != nil {
			return nil
		}

		provider := user.Settings.LLMProvider
		if provider == "" || !runner.HasProvider(provider) {
			slog.Debug("Brain dump processing skipped, no LLM provider", "user_id", user.ID)
			return nil
		}

		loc := user.Settings.Location()
		now := time.Now()
		serialized, err := serializedDayContext(ctx, contexts, user, date, loc)
		if err != nil {
			return err
		}
		contextPrompt, err := templates.Render(templates.BrainDumpItemContext, map[string]any{
			"Date":       string(date),
			"Now":        now.In(loc).Format("15:04"),
			"Timezone":   loc.String(),
			"DayContext": serialized,
		})
		if err != nil {
			return err
		}
		askPrompt, err := templates.Render(templates.BrainDumpItemAsk, map[string]any{
			"Item": item.Text,
		})
		if err != nil {
			return err
		}

		var tasksCreated int
		var note string
		saveNote := llm.ToolSpec{
			Name:        "save_note",
			Description: "Save a one-line note when the item is not an actionable task.",
			Params: []llm.ParamSpec{
				{Name: "text", Type: llm.ParamString, Doc: "the note text"},
			},
			Invoke: func(_ context.Context, args map[string]any) (string, error) {
				note, _ = args["text"].(string)
				return "note saved", nil
			},
		}

		snapshot, err := runner.Run(ctx, provider, llm.UseCase{
			Name:               "brain_dump_item",
			System:             templates.MustRender(templates.BrainDumpItemSystem, nil),
			Context:            contextPrompt,
			Ask:                askPrompt,
			Tools:              []llm.ToolSpec{createTaskTool(tasks, user.ID, date, &tasksCreated), saveNote},
			SerializedContext:  serialized,
			ReferencedEntities: []string{itemID.String()},
		})
		if err != nil {
			return err
		}

		outcome := "discarded"
		switch {
		case tasksCreated > 0:
			outcome = "task"
		case note != "":
			outcome = "message"
		}

		u, ctx, err := uowf.Begin(ctx)
		if err != nil {
			return err
		}
		defer u.Rollback()

		dump.MarkItemProcessed(itemID, outcome, now)
		u.Add(dump)

		if note != "" {
			msg := domain.NewOutboundMessage(user.ID, note, "brain_dump_item")
			msg.LLMRunResult = snapshot
			u.Add(msg)
		}
		return u.Commit(ctx)
	}
}

// NewInboundSMSExecutor handles process_inbound_sms jobs: one LLM run over
// the day context and recent conversation that may create tasks, then
// replies by SMS. The reply is committed before the send so a transport
// failure never loses the conversation record.
func NewInboundSMSExecutor(uowf *uow.Factory, st *store.Store, runner *llm.Runner, tasks *services.TaskService, contexts *services.ContextService, sms gateways.SMSGateway) ExecutorFunc {
	return func(ctx context.Context, row *ent.Job) error {
		messageID, err := payloadUUID(row.Payload, "message_id")
		if err != nil {
			return err
		}

		msg, err := st.MessageByID(ctx, row.UserID, messageID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		user, err := st.User(ctx, row.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		provider := user.Settings.LLMProvider
		if provider == "" || !runner.HasProvider(provider) {
			slog.Debug("Inbound SMS processing skipped, no LLM provider", "user_id", user.ID)
			return nil
		}

		loc := user.Settings.Location()
		now := time.Now()
		date := domain.DateOf(now, loc)

		serialized, err := serializedDayContext(ctx, contexts, user, date, loc)
		if err != nil {
			return err
		}
		recent, err := st.RecentMessages(ctx, user.ID, 10)
		if err != nil {
			return err
		}
		contextPrompt, err := templates.Render(templates.InboundSMSContext, map[string]any{
			"Now":            now.In(loc).Format("15:04"),
			"Timezone":       loc.String(),
			"DayContext":     serialized,
			"RecentMessages": recent,
		})
		if err != nil {
			return err
		}
		askPrompt, err := templates.Render(templates.InboundSMSAsk, map[string]any{
			"Inbound": msg.Content,
		})
		if err != nil {
			return err
		}

		var tasksCreated int
		var reply string
		sendReply := llm.ToolSpec{
			Name:        "send_reply",
			Description: "Send the SMS reply to the user.",
			Params: []llm.ParamSpec{
				{Name: "text", Type: llm.ParamString, Doc: "the reply text"},
			},
			Invoke: func(_ context.Context, args map[string]any) (string, error) {
				reply, _ = args["text"].(string)
				return "reply queued", nil
			},
		}

		snapshot, err := runner.Run(ctx, provider, llm.UseCase{
			Name:               "inbound_sms",
			System:             templates.MustRender(templates.InboundSMSSystem, nil),
			Context:            contextPrompt,
			Ask:                askPrompt,
			Tools:              []llm.ToolSpec{createTaskTool(tasks, user.ID, date, &tasksCreated), sendReply},
			SerializedContext:  serialized,
			ReferencedEntities: []string{messageID.String()},
		})
		if err != nil {
			return err
		}
		if reply == "" {
			slog.Warn("Inbound SMS run produced no reply", "user_id", user.ID, "message_id", messageID)
			return nil
		}

		toNumber, _ := msg.Meta["from_number"].(string)

		out := domain.NewOutboundMessage(user.ID, reply, "inbound_sms")
		out.LLMRunResult = snapshot
		out.Meta["in_reply_to_message_id"] = msg.ID.String()
		if toNumber != "" {
			out.Meta["to_number"] = toNumber
		}

		u, ctx, err := uowf.Begin(ctx)
		if err != nil {
			return err
		}
		defer u.Rollback()
		u.Add(out)
		if err := u.Commit(ctx); err != nil {
			return err
		}

		if toNumber == "" {
			slog.Warn("Inbound SMS reply has no destination number", "user_id", user.ID, "message_id", messageID)
			return nil
		}
		if err := sms.SendMessage(ctx, toNumber, reply); err != nil {
			slog.Error("SMS reply delivery failed", "user_id", user.ID, "to_number", toNumber, "error", err)
		}
		return nil
	}
}
