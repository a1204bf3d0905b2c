package reactive

import (
	"context"
	"log/slog"
	"time"

	"github.com/daybreakhq/daybreak/pkg/events"
	"github.com/daybreakhq/daybreak/pkg/store"
)

// NewDayEmitter announces the new calendar day on every user's
// domain-events channel. Runs once per day, after the nightly scheduling
// fan-out.
type NewDayEmitter struct {
	store     *store.Store
	publisher *events.Publisher
}

// NewNewDayEmitter creates a NewDayEmitter.
func NewNewDayEmitter(st *store.Store, pub *events.Publisher) *NewDayEmitter {
	return &NewDayEmitter{store: st, publisher: pub}
}

// EmitAll publishes one NewDayEvent per user for today in that user's
// timezone. Per-user failures are logged and do not stop the sweep; the
// first one is returned.
func (e *NewDayEmitter) EmitAll(ctx context.Context, now time.Time) error {
	users, err := e.store.Users(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, user := range users {
		date, _ := userToday(user, now)
		err := e.publisher.PublishDomainEvent(ctx, events.DomainEventPayload{
			Name:       "NewDayEvent",
			UserID:     user.ID,
			OccurredAt: now.UTC(),
			Data: map[string]any{
				"user_id": user.ID.String(),
				"date":    string(date),
			},
		})
		if err != nil {
			slog.Error("Failed to publish NewDayEvent", "user_id", user.ID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
