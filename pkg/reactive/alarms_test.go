package reactive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

func TestAlarmEvaluatorTriggersDueAlarms(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	now := time.Now()
	today := domain.DateOf(now, time.UTC)

	day := domain.NewDay(user.ID, today)
	day.AddAlarm(domain.Alarm{Name: "Wake up", Datetime: now.Add(-2 * time.Minute), Type: domain.AlarmLoud})
	day.AddAlarm(domain.Alarm{Name: "Lunch walk", Datetime: now.Add(3 * time.Hour), Type: domain.AlarmGentle})
	f.commit(t, day)

	eval := NewAlarmEvaluator(f.uow, f.store)
	require.NoError(t, eval.EvaluateUser(ctx, user, now))

	stored, err := f.store.DayByDate(ctx, user.ID, today)
	require.NoError(t, err)
	require.Len(t, stored.Alarms, 2)
	assert.NotNil(t, stored.Alarms[0].TriggeredAt)
	assert.Nil(t, stored.Alarms[1].TriggeredAt)
}

func TestAlarmEvaluatorIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	now := time.Now()
	today := domain.DateOf(now, time.UTC)

	day := domain.NewDay(user.ID, today)
	day.AddAlarm(domain.Alarm{Name: "Wake up", Datetime: now.Add(-time.Minute), Type: domain.AlarmFirm})
	f.commit(t, day)

	eval := NewAlarmEvaluator(f.uow, f.store)
	require.NoError(t, eval.EvaluateUser(ctx, user, now))

	first, err := f.store.DayByDate(ctx, user.ID, today)
	require.NoError(t, err)
	firstAt := first.Alarms[0].TriggeredAt
	require.NotNil(t, firstAt)

	// A later run leaves the triggered timestamp untouched.
	require.NoError(t, eval.EvaluateUser(ctx, user, now.Add(time.Minute)))
	second, err := f.store.DayByDate(ctx, user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, firstAt.Unix(), second.Alarms[0].TriggeredAt.Unix())
}

func TestAlarmEvaluatorNoDay(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t)

	eval := NewAlarmEvaluator(f.uow, f.store)
	assert.NoError(t, eval.EvaluateUser(context.Background(), user, time.Now()))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:30", 450, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noonish", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.minutes, got, tt.in)
	}
}
