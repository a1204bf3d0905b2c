package reactive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/services"
)

func overviewResponse(text string) *llm.Response {
	return &llm.Response{
		ToolCalls: []llm.ToolCall{{
			Name:      "send_overview",
			Arguments: map[string]any{"text": text},
		}},
	}
}

func overviewFixture(t *testing.T, gw *scriptedGateway) (*fixture, *domain.User, *gateways.StubPushGateway, *MorningOverviewEvaluator) {
	t.Helper()
	f := newFixture(t)

	user := domain.NewUser("Dana")
	user.Settings.LLMProvider = "ANTHROPIC"
	user.Settings.MorningOverviewTime = "07:30"
	f.commit(t, user, domain.NewPushSubscription(user.ID, "https://push.example/a", nil))

	push := &gateways.StubPushGateway{}
	eval := NewMorningOverviewEvaluator(f.store, llm.NewRunner(gw),
		services.NewContextService(f.store),
		services.NewTaskService(f.uow, f.store),
		services.NewNotificationService(f.uow, f.store, push))
	return f, user, push, eval
}

// at returns today at the given UTC wall-clock time.
func at(hour, minute int) time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
}

func TestMorningOverviewSends(t *testing.T) {
	ctx := context.Background()
	gw := &scriptedGateway{resp: overviewResponse("Two meetings and a workout today. Ship the draft before standup.")}
	f, user, push, eval := overviewFixture(t, gw)

	// 07:37 falls in the 07:30 bucket.
	require.NoError(t, eval.EvaluateUser(ctx, user, at(7, 37)))

	require.Len(t, push.Pushes(), 1)
	records := f.pushRecords(t, user)
	require.Len(t, records, 1)
	assert.Equal(t, "morning_overview", records[0].TriggeredBy)
	require.NotNil(t, records[0].LLMSnapshot)
}

func TestMorningOverviewSentOncePerDay(t *testing.T) {
	ctx := context.Background()
	gw := &scriptedGateway{resp: overviewResponse("Good morning.")}
	f, user, push, eval := overviewFixture(t, gw)

	require.NoError(t, eval.EvaluateUser(ctx, user, at(7, 31)))
	require.NoError(t, eval.EvaluateUser(ctx, user, at(7, 44)))

	assert.Equal(t, 1, gw.calls)
	assert.Len(t, push.Pushes(), 1)
	assert.Len(t, f.pushRecords(t, user), 1)
}

func TestMorningOverviewOutsideBucket(t *testing.T) {
	gw := &scriptedGateway{resp: overviewResponse("never seen")}
	_, user, push, eval := overviewFixture(t, gw)

	require.NoError(t, eval.EvaluateUser(context.Background(), user, at(9, 0)))
	assert.Zero(t, gw.calls)
	assert.Empty(t, push.Pushes())
}

func TestMorningOverviewNoConfiguredTime(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := domain.NewUser("No Overview")
	user.Settings.LLMProvider = "ANTHROPIC"
	f.commit(t, user)

	gw := &scriptedGateway{resp: overviewResponse("never seen")}
	eval := NewMorningOverviewEvaluator(f.store, llm.NewRunner(gw),
		services.NewContextService(f.store),
		services.NewTaskService(f.uow, f.store),
		services.NewNotificationService(f.uow, f.store, &gateways.StubPushGateway{}))

	require.NoError(t, eval.EvaluateUser(ctx, user, at(7, 31)))
	assert.Zero(t, gw.calls)
}

func TestMorningOverviewEmptyText(t *testing.T) {
	ctx := context.Background()
	gw := &scriptedGateway{resp: &llm.Response{Text: "I have nothing."}}
	f, user, push, eval := overviewFixture(t, gw)

	require.NoError(t, eval.EvaluateUser(ctx, user, at(7, 31)))
	assert.Empty(t, push.Pushes())
	assert.Empty(t, f.pushRecords(t, user))
}
