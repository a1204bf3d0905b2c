package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/database"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
	testdb "github.com/daybreakhq/daybreak/test/database"
)

// fixture bundles the wiring every service test needs.
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

// seedUser creates a user with a weekday template default pointing at
// slug "default" for every weekday.
func (f *fixture) seedUser(t *testing.T) *domain.User {
	t.Helper()
	user := domain.NewUser("Dana")
	user.PhoneNumber = "+15550001111"
	user.Settings.TemplateDefaults = []string{
		"default", "default", "default", "default", "default", "default", "default",
	}
	f.commit(t, user)
	return user
}

// seedTemplate creates the "default" template referencing the given
// routines.
func (f *fixture) seedTemplate(t *testing.T, user *domain.User, routineIDs ...domain.Aggregate) *domain.DayTemplate {
	t.Helper()
	tmpl := domain.NewDayTemplate(user.ID, "default")
	tmpl.TimeBlocks = []domain.TimeBlock{
		{Name: "Morning Work", StartTime: "09:00", EndTime: "12:00"},
	}
	tmpl.Plan = domain.HighLevelPlan{
		Title:      "Default day",
		Intentions: []string{"ship something"},
	}
	for _, r := range routineIDs {
		tmpl.RoutineDefinitionIDs = append(tmpl.RoutineDefinitionIDs, r.AggregateID())
	}
	f.commit(t, tmpl)
	return tmpl
}

// seedDailyRoutine creates a DAILY routine with one blueprint task.
func (f *fixture) seedDailyRoutine(t *testing.T, user *domain.User, name string) *domain.Routine {
	t.Helper()
	r := domain.NewRoutine(user.ID, name, domain.RecurrenceSchedule{Frequency: domain.FrequencyDaily})
	r.Tasks = []domain.RoutineTask{
		{Name: name, Category: "wellness", Schedule: &domain.TimeWindow{
			TimingType: domain.TimingFixedTime,
			StartTime:  "08:00",
		}},
	}
	f.commit(t, r)
	return r
}

// auditCount returns how many audit rows of the activity type exist.
func (f *fixture) auditCount(t *testing.T, activityType string) int {
	t.Helper()
	rows, err := f.client.AuditLog.Query().All(context.Background())
	require.NoError(t, err)
	n := 0
	for _, row := range rows {
		if row.ActivityType == activityType {
			n++
		}
	}
	return n
}

// totalAuditCount returns the total number of audit rows.
func (f *fixture) totalAuditCount(t *testing.T) int {
	t.Helper()
	n, err := f.client.AuditLog.Query().Count(context.Background())
	require.NoError(t, err)
	return n
}
