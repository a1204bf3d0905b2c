package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/job"
	"github.com/daybreakhq/daybreak/pkg/config"
	"github.com/daybreakhq/daybreak/pkg/database"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/llm"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
	testdb "github.com/daybreakhq/daybreak/test/database"
)

// fixture bundles the wiring every queue test needs.
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

// testQueueConfig returns queue settings tightened for tests.
func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.MaxConcurrentJobs = 2
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.JobTimeout = 5 * time.Second
	cfg.HeartbeatInterval = 50 * time.Millisecond
	cfg.MaxAttempts = 2
	cfg.RetryBackoff = time.Minute
	cfg.OrphanThreshold = 200 * time.Millisecond
	return cfg
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

// seedUser creates a user with a weekday template default and an LLM
// provider.
func (f *fixture) seedUser(t *testing.T) *domain.User {
	t.Helper()
	user := domain.NewUser("Dana")
	user.PhoneNumber = "+15550001111"
	user.Settings.LLMProvider = "ANTHROPIC"
	user.Settings.TemplateDefaults = []string{
		"default", "default", "default", "default", "default", "default", "default",
	}
	f.commit(t, user)
	return user
}

// enqueue inserts one pending job row directly.
func (f *fixture) enqueue(t *testing.T, userID uuid.UUID, kind string, payload map[string]any) *ent.Job {
	t.Helper()
	row, err := f.client.Job.Create().
		SetID(uuid.New()).
		SetUserID(userID).
		SetKind(kind).
		SetPayload(payload).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

// reloadJob fetches the current state of a job row.
func (f *fixture) reloadJob(t *testing.T, id uuid.UUID) *ent.Job {
	t.Helper()
	row, err := f.client.Job.Get(context.Background(), id)
	require.NoError(t, err)
	return row
}

// jobsByKind returns the user's job rows of one kind, oldest first.
func (f *fixture) jobsByKind(t *testing.T, userID uuid.UUID, kind string) []*ent.Job {
	t.Helper()
	rows, err := f.client.Job.Query().
		Where(job.UserID(userID), job.Kind(kind)).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// scriptedGateway returns a fixed response for every Generate call.
type scriptedGateway struct {
	resp *llm.Response
	err  error
}

func (g *scriptedGateway) Provider() string { return "ANTHROPIC" }

func (g *scriptedGateway) Generate(_ context.Context, _ llm.Request) (*llm.Response, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.resp, nil
}
