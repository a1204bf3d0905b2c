package reactive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent/event"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/events"
)

func TestNewDayEmitterEmitsPerUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice := domain.NewUser("Alice")
	bob := domain.NewUser("Bob")
	bob.Settings.Timezone = "America/New_York"
	f.commit(t, alice, bob)

	now := time.Now()
	emitter := NewNewDayEmitter(f.store, f.publisher())
	require.NoError(t, emitter.EmitAll(ctx, now))

	for _, user := range []*domain.User{alice, bob} {
		rows, err := f.client.Event.Query().
			Where(event.UserID(user.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "NewDayEvent", rows[0].Payload["name"])
		assert.Equal(t, events.DomainEventsChannel(user.ID), rows[0].Channel)

		data, ok := rows[0].Payload["data"].(map[string]any)
		require.True(t, ok)
		wantDate, _ := userToday(user, now)
		assert.Equal(t, string(wantDate), data["date"])
	}
}

func TestNewDayEmitterNoUsers(t *testing.T) {
	f := newFixture(t)
	emitter := NewNewDayEmitter(f.store, f.publisher())
	assert.NoError(t, emitter.EmitAll(context.Background(), time.Now()))
}
