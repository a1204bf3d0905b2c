package reactive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/services"
)

func TestKioskNotificationPublishes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	gw := &scriptedGateway{resp: decisionResponse(true, "Dinner prep starts at 18:00", "medium")}
	eval := NewKioskNotificationEvaluator(llm.NewRunner(gw),
		services.NewContextService(f.store), f.publisher(), true)

	// Kiosk broadcasts are NOTIFY-only; success here means the decision
	// ran and pg_notify accepted the payload.
	require.NoError(t, eval.EvaluateUser(ctx, user, time.Now()))
	assert.Equal(t, 1, gw.calls)
}

func TestKioskNotificationDisabled(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)

	gw := &scriptedGateway{resp: decisionResponse(true, "never seen", "high")}
	eval := NewKioskNotificationEvaluator(llm.NewRunner(gw),
		services.NewContextService(f.store), f.publisher(), false)

	require.NoError(t, eval.EvaluateUser(context.Background(), user, time.Now()))
	assert.Zero(t, gw.calls)
}

func TestKioskNotificationDeclines(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)

	gw := &scriptedGateway{resp: decisionResponse(true, "minor", "low")}
	eval := NewKioskNotificationEvaluator(llm.NewRunner(gw),
		services.NewContextService(f.store), f.publisher(), true)

	require.NoError(t, eval.EvaluateUser(context.Background(), user, time.Now()))
	assert.Equal(t, 1, gw.calls)
}
