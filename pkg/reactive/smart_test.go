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

func smartFixture(t *testing.T, gw *scriptedGateway, enabled bool) (*fixture, *domain.User, *gateways.StubPushGateway, *SmartNotificationEvaluator) {
	t.Helper()
	f := newFixture(t)
	user := f.seedUser(t)
	f.commit(t, domain.NewPushSubscription(user.ID, "https://push.example/a", nil))

	push := &gateways.StubPushGateway{}
	eval := NewSmartNotificationEvaluator(f.store, llm.NewRunner(gw),
		services.NewContextService(f.store),
		services.NewNotificationService(f.uow, f.store, push),
		enabled, 10*time.Minute)
	return f, user, push, eval
}

func TestSmartNotificationFires(t *testing.T) {
	ctx := context.Background()
	gw := &scriptedGateway{resp: decisionResponse(true, "Leave now to make the 14:30 meeting", "high")}
	f, user, push, eval := smartFixture(t, gw, true)

	require.NoError(t, eval.EvaluateUser(ctx, user, time.Now()))

	require.Len(t, push.Pushes(), 1)
	records := f.pushRecords(t, user)
	require.Len(t, records, 1)
	assert.Equal(t, "smart_notification", records[0].TriggeredBy)
	assert.Equal(t, "Leave now to make the 14:30 meeting", records[0].Content)
	require.NotNil(t, records[0].LLMSnapshot)
	assert.Equal(t, "ANTHROPIC", records[0].LLMSnapshot.Provider)
}

func TestSmartNotificationDisabled(t *testing.T) {
	gw := &scriptedGateway{resp: decisionResponse(true, "never seen", "high")}
	_, user, push, eval := smartFixture(t, gw, false)

	require.NoError(t, eval.EvaluateUser(context.Background(), user, time.Now()))
	assert.Zero(t, gw.calls)
	assert.Empty(t, push.Pushes())
}

func TestSmartNotificationNoProvider(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := domain.NewUser("No Provider")
	f.commit(t, user)

	gw := &scriptedGateway{resp: decisionResponse(true, "never seen", "high")}
	push := &gateways.StubPushGateway{}
	eval := NewSmartNotificationEvaluator(f.store, llm.NewRunner(gw),
		services.NewContextService(f.store),
		services.NewNotificationService(f.uow, f.store, push), true, 0)

	require.NoError(t, eval.EvaluateUser(ctx, user, time.Now()))
	assert.Zero(t, gw.calls)
}

func TestSmartNotificationCooldown(t *testing.T) {
	ctx := context.Background()
	gw := &scriptedGateway{resp: decisionResponse(true, "another nudge", "high")}
	f, user, push, eval := smartFixture(t, gw, true)

	f.commit(t, domain.NewPushNotification(user.ID, "recent nudge", "smart_notification", domain.PushSuccess))

	require.NoError(t, eval.EvaluateUser(ctx, user, time.Now()))
	assert.Zero(t, gw.calls)
	assert.Empty(t, push.Pushes())
}

func TestSmartNotificationDeclines(t *testing.T) {
	tests := []struct {
		name string
		resp *llm.Response
	}{
		{"should_notify false", decisionResponse(false, "quiet day", "high")},
		{"low priority", decisionResponse(true, "minor thing", "low")},
		{"empty message", decisionResponse(true, "", "high")},
		{"no tool call", &llm.Response{Text: "Nothing worth interrupting for."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &scriptedGateway{resp: tt.resp}
			f, user, push, eval := smartFixture(t, gw, true)

			require.NoError(t, eval.EvaluateUser(context.Background(), user, time.Now()))
			assert.Equal(t, 1, gw.calls)
			assert.Empty(t, push.Pushes())
			assert.Empty(t, f.pushRecords(t, user))
		})
	}
}
