package reactive

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/database"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/events"
	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
	testdb "github.com/daybreakhq/daybreak/test/database"
)

// fixture bundles the wiring every evaluator test needs.
type fixture struct {
	client *database.Client
	uow    *uow.Factory
	store  *store.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	return &fixture{
		client: client,
		uow:    uow.NewFactory(client, nil, nil),
		store:  store.New(client.Client),
	}
}

// publisher returns a real Publisher over the test database.
func (f *fixture) publisher() *events.Publisher {
	return events.NewPublisher(f.client.DB())
}

// recordingBroadcaster captures publishes in memory. NOTIFY-only traffic
// (the kiosk channel) leaves no database trace, so tests observe it here.
type recordingBroadcaster struct {
	domainEvents  []events.DomainEventPayload
	kioskMessages []string
}

func (b *recordingBroadcaster) PublishDomainEvent(_ context.Context, payload events.DomainEventPayload) error {
	b.domainEvents = append(b.domainEvents, payload)
	return nil
}

func (b *recordingBroadcaster) PublishKioskNotification(_ context.Context, _ uuid.UUID, message string) error {
	b.kioskMessages = append(b.kioskMessages, message)
	return nil
}

// commit persists the given aggregates in one transaction.
func (f *fixture) commit(t *testing.T, aggs ...domain.Aggregate) {
	t.Helper()
	ctx := context.Background()
	u, ctx, err := f.uow.Begin(ctx)
	require.NoError(t, err)
	for _, a := range aggs {
		u.Add(a)
	}
	require.NoError(t, u.Commit(ctx))
}

// seedUser creates a user in UTC with an LLM provider configured.
func (f *fixture) seedUser(t *testing.T) *domain.User {
	t.Helper()
	user := domain.NewUser("Dana")
	user.PhoneNumber = "+15550001111"
	user.Settings.LLMProvider = "ANTHROPIC"
	f.commit(t, user)
	return user
}

// seedEntry creates a calendar entry starting at the given time.
func (f *fixture) seedEntry(t *testing.T, user *domain.User, platformID, name string, startsAt time.Time) *domain.CalendarEntry {
	t.Helper()
	entry := domain.NewCalendarEntry(user.ID, "google", platformID)
	entry.Apply(domain.EntryFields{
		Name:             name,
		StartsAt:         startsAt,
		EndsAt:           startsAt.Add(30 * time.Minute),
		AttendanceStatus: domain.AttendanceGoing,
	})
	f.commit(t, entry)
	return entry
}

// pushRecords returns the user's stored push notification records around now.
func (f *fixture) pushRecords(t *testing.T, user *domain.User) []*domain.PushNotification {
	t.Helper()
	records, err := f.store.PushNotificationsBetween(context.Background(), user.ID,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	return records
}

// scriptedGateway returns a fixed response for every Generate call and
// counts invocations.
type scriptedGateway struct {
	resp  *llm.Response
	err   error
	calls int
}

func (g *scriptedGateway) Provider() string { return "ANTHROPIC" }

func (g *scriptedGateway) Generate(_ context.Context, _ llm.Request) (*llm.Response, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.resp, nil
}

// decisionResponse scripts one decide_notification tool call.
func decisionResponse(shouldNotify bool, message, priority string) *llm.Response {
	return &llm.Response{
		ToolCalls: []llm.ToolCall{{
			Name: "decide_notification",
			Arguments: map[string]any{
				"should_notify": shouldNotify,
				"message":       message,
				"priority":      priority,
			},
		}},
	}
}
