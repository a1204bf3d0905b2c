package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
)

func TestScheduleDayExecutor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	tmpl := domain.NewDayTemplate(user.ID, "default")
	tmpl.TimeBlocks = []domain.TimeBlock{
		{Name: "Morning Work", StartTime: "09:00", EndTime: "12:00"},
	}
	f.commit(t, tmpl)

	exec := NewScheduleDayExecutor(services.NewDayService(f.uow, f.store))
	row := f.enqueue(t, user.ID, services.JobScheduleUserDay, map[string]any{"date": "2026-03-14"})
	require.NoError(t, exec.Execute(ctx, row))

	day, err := f.store.DayByDate(ctx, user.ID, domain.Date("2026-03-14"))
	require.NoError(t, err)
	assert.Equal(t, domain.DayScheduled, day.Status)
}

func TestScheduleDayExecutorSkipsUserWithoutTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := domain.NewUser("No Defaults")
	f.commit(t, user)

	exec := NewScheduleDayExecutor(services.NewDayService(f.uow, f.store))
	row := f.enqueue(t, user.ID, services.JobScheduleUserDay, map[string]any{"date": "2026-03-14"})

	// A template-less user is a skip, not a retry.
	require.NoError(t, exec.Execute(ctx, row))

	_, err := f.store.DayByDate(ctx, user.ID, domain.Date("2026-03-14"))
	assert.Error(t, err)
}

func TestScheduleDayExecutorRejectsBadPayload(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)

	exec := NewScheduleDayExecutor(services.NewDayService(f.uow, f.store))
	row := f.enqueue(t, user.ID, services.JobScheduleUserDay, map[string]any{})
	assert.Error(t, exec.Execute(context.Background(), row))
}

func TestPushExecutor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	f.commit(t, domain.NewPushSubscription(user.ID, "https://push.example/a", nil))

	push := &gateways.StubPushGateway{}
	exec := NewPushExecutor(services.NewNotificationService(f.uow, f.store, push))

	row := f.enqueue(t, user.ID, services.JobSendPushNotification, map[string]any{
		"content":      "Water the plants",
		"triggered_by": "api",
	})
	require.NoError(t, exec.Execute(ctx, row))

	sent := push.Pushes()
	require.Len(t, sent, 1)
	assert.Equal(t, "https://push.example/a", sent[0].Endpoint)

	stored, err := f.store.PushNotificationsBetween(ctx, user.ID,
		time.Now().Add(-time.Minute), time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "api", stored[0].TriggeredBy)
}

func TestUserEvaluatorExecutor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	var seen []uuid.UUID
	exec := NewUserEvaluatorExecutor(f.store, evaluatorFunc(func(_ context.Context, u *domain.User, _ time.Time) error {
		seen = append(seen, u.ID)
		return nil
	}))

	row := f.enqueue(t, user.ID, KindEvaluateAlarms, nil)
	require.NoError(t, exec.Execute(ctx, row))
	assert.Equal(t, []uuid.UUID{user.ID}, seen)

	// A vanished user completes the job instead of retrying forever.
	gone := f.enqueue(t, uuid.New(), KindEvaluateAlarms, nil)
	require.NoError(t, exec.Execute(ctx, gone))
	assert.Len(t, seen, 1)
}

type evaluatorFunc func(ctx context.Context, user *domain.User, now time.Time) error

func (fn evaluatorFunc) EvaluateUser(ctx context.Context, user *domain.User, now time.Time) error {
	return fn(ctx, user, now)
}

func brainDumpJob(t *testing.T, f *fixture, user *domain.User, text string) *ent.Job {
	t.Helper()
	msgs := services.NewMessageService(f.uow, f.store)
	_, err := msgs.CaptureBrainDump(context.Background(), models.CaptureBrainDumpRequest{
		UserID: user.ID,
		Date:   "2026-03-14",
		Items:  []string{text},
	})
	require.NoError(t, err)

	rows := f.jobsByKind(t, user.ID, services.JobProcessBrainDumpItem)
	require.NotEmpty(t, rows)
	return rows[len(rows)-1]
}

func TestBrainDumpExecutorCreatesTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	row := brainDumpJob(t, f, user, "buy milk on the way home")

	runner := llm.NewRunner(&scriptedGateway{resp: &llm.Response{
		ToolCalls: []llm.ToolCall{{Name: "create_task", Arguments: map[string]any{"name": "Buy milk"}}},
	}})
	exec := NewBrainDumpExecutor(f.uow, f.store, runner,
		services.NewTaskService(f.uow, f.store), services.NewContextService(f.store))

	require.NoError(t, exec.Execute(ctx, row))

	tasks, err := f.store.TasksForDate(ctx, user.ID, domain.Date("2026-03-14"))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Name)

	dump, err := f.store.BrainDumpByDate(ctx, user.ID, domain.Date("2026-03-14"))
	require.NoError(t, err)
	require.Len(t, dump.Items, 1)
	require.NotNil(t, dump.Items[0].ProcessedAt)
	assert.Equal(t, "task", dump.Items[0].Outcome)

	// Redelivery is a no-op once the item is marked processed.
	require.NoError(t, exec.Execute(ctx, row))
	tasks, err = f.store.TasksForDate(ctx, user.ID, domain.Date("2026-03-14"))
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestBrainDumpExecutorSavesNote(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	row := brainDumpJob(t, f, user, "passport expires in June")

	runner := llm.NewRunner(&scriptedGateway{resp: &llm.Response{
		ToolCalls: []llm.ToolCall{{Name: "save_note", Arguments: map[string]any{"text": "Passport renewal due before June"}}},
	}})
	exec := NewBrainDumpExecutor(f.uow, f.store, runner,
		services.NewTaskService(f.uow, f.store), services.NewContextService(f.store))

	require.NoError(t, exec.Execute(ctx, row))

	msgs, err := f.store.RecentMessages(ctx, user.ID, 5)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
	note := msgs[0]
	assert.Equal(t, domain.RoleAssistant, note.Role)
	assert.Equal(t, "Passport renewal due before June", note.Content)
	assert.Equal(t, "brain_dump_item", note.TriggeredBy)
	require.NotNil(t, note.LLMRunResult)
	assert.Equal(t, "ANTHROPIC", note.LLMRunResult.Provider)

	dump, err := f.store.BrainDumpByDate(ctx, user.ID, domain.Date("2026-03-14"))
	require.NoError(t, err)
	assert.Equal(t, "message", dump.Items[0].Outcome)
}

func TestBrainDumpExecutorDiscardsWithoutToolCall(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	row := brainDumpJob(t, f, user, "hmmm")

	runner := llm.NewRunner(&scriptedGateway{resp: &llm.Response{Text: "Nothing actionable here."}})
	exec := NewBrainDumpExecutor(f.uow, f.store, runner,
		services.NewTaskService(f.uow, f.store), services.NewContextService(f.store))

	require.NoError(t, exec.Execute(ctx, row))

	dump, err := f.store.BrainDumpByDate(ctx, user.ID, domain.Date("2026-03-14"))
	require.NoError(t, err)
	assert.Equal(t, "discarded", dump.Items[0].Outcome)
}

func TestBrainDumpExecutorSkipsUserWithoutProvider(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	row := brainDumpJob(t, f, user, "call the dentist")

	// No gateway registered for the user's provider.
	exec := NewBrainDumpExecutor(f.uow, f.store, llm.NewRunner(),
		services.NewTaskService(f.uow, f.store), services.NewContextService(f.store))

	require.NoError(t, exec.Execute(ctx, row))

	dump, err := f.store.BrainDumpByDate(ctx, user.ID, domain.Date("2026-03-14"))
	require.NoError(t, err)
	assert.Nil(t, dump.Items[0].ProcessedAt)
}

func TestBrainDumpExecutorRetriesOnGatewayError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	row := brainDumpJob(t, f, user, "book flights")

	runner := llm.NewRunner(&scriptedGateway{err: errors.New("rate limited")})
	exec := NewBrainDumpExecutor(f.uow, f.store, runner,
		services.NewTaskService(f.uow, f.store), services.NewContextService(f.store))

	assert.Error(t, exec.Execute(ctx, row))
}

func inboundSMSJob(t *testing.T, f *fixture, body string) *ent.Job {
	t.Helper()
	msgs := services.NewMessageService(f.uow, f.store)
	_, err := msgs.ReceiveSMS(context.Background(), models.ReceiveSMSRequest{
		FromNumber: "+15550001111",
		ToNumber:   "+15559990000",
		Body:       body,
	})
	require.NoError(t, err)

	rows := f.jobsByKind(t, mustUserByPhone(t, f).ID, services.JobProcessInboundSMS)
	require.NotEmpty(t, rows)
	return rows[len(rows)-1]
}

func mustUserByPhone(t *testing.T, f *fixture) *domain.User {
	t.Helper()
	user, err := f.store.UserByPhone(context.Background(), "+15550001111")
	require.NoError(t, err)
	return user
}

func TestInboundSMSExecutorReplies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	row := inboundSMSJob(t, f, "what's on my plate today?")

	runner := llm.NewRunner(&scriptedGateway{resp: &llm.Response{
		ToolCalls: []llm.ToolCall{{Name: "send_reply", Arguments: map[string]any{"text": "Two tasks and a standup at 10."}}},
	}})
	sms := &gateways.StubSMSGateway{}
	exec := NewInboundSMSExecutor(f.uow, f.store, runner,
		services.NewTaskService(f.uow, f.store), services.NewContextService(f.store), sms)

	require.NoError(t, exec.Execute(ctx, row))

	sent := sms.Messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "+15550001111", sent[0].To)
	assert.Equal(t, "Two tasks and a standup at 10.", sent[0].Body)

	msgs, err := f.store.RecentMessages(ctx, user.ID, 5)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
	reply := msgs[0]
	assert.Equal(t, domain.RoleAssistant, reply.Role)
	assert.Equal(t, "inbound_sms", reply.TriggeredBy)
	assert.Equal(t, "+15550001111", reply.Meta["to_number"])
	require.NotNil(t, reply.LLMRunResult)
}

func TestInboundSMSExecutorCanCreateTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	row := inboundSMSJob(t, f, "remind me to submit the expense report today")

	runner := llm.NewRunner(&scriptedGateway{resp: &llm.Response{
		ToolCalls: []llm.ToolCall{
			{Name: "create_task", Arguments: map[string]any{"name": "Submit expense report"}},
			{Name: "send_reply", Arguments: map[string]any{"text": "Added it to today."}},
		},
	}})
	exec := NewInboundSMSExecutor(f.uow, f.store, runner,
		services.NewTaskService(f.uow, f.store), services.NewContextService(f.store), &gateways.StubSMSGateway{})

	require.NoError(t, exec.Execute(ctx, row))

	today := domain.DateOf(time.Now(), user.Settings.Location())
	tasks, err := f.store.TasksForDate(ctx, user.ID, today)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Submit expense report", tasks[0].Name)
}

func TestInboundSMSExecutorNoReply(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	row := inboundSMSJob(t, f, "ok")

	runner := llm.NewRunner(&scriptedGateway{resp: &llm.Response{Text: "Acknowledged."}})
	sms := &gateways.StubSMSGateway{}
	exec := NewInboundSMSExecutor(f.uow, f.store, runner,
		services.NewTaskService(f.uow, f.store), services.NewContextService(f.store), sms)

	require.NoError(t, exec.Execute(ctx, row))

	assert.Empty(t, sms.Messages())
	msgs, err := f.store.RecentMessages(ctx, user.ID, 5)
	require.NoError(t, err)
	// Only the inbound message exists.
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
}

func TestInboundSMSExecutorMissingMessage(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)

	exec := NewInboundSMSExecutor(f.uow, f.store, llm.NewRunner(),
		services.NewTaskService(f.uow, f.store), services.NewContextService(f.store), &gateways.StubSMSGateway{})

	row := f.enqueue(t, user.ID, services.JobProcessInboundSMS, map[string]any{
		"message_id": uuid.NewString(),
	})
	require.NoError(t, exec.Execute(context.Background(), row))
}
