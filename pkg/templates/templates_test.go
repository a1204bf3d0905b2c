package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCalendarReminderBody(t *testing.T) {
	out, err := Render(CalendarReminderBody, map[string]any{
		"Name":          "Team Sync",
		"MinutesBefore": 5,
		"StartTime":     "10:05",
	})
	require.NoError(t, err)
	assert.Equal(t, "Team Sync starts in 5 minutes (10:05)", out)

	now, err := Render(CalendarReminderBody, map[string]any{
		"Name":          "Team Sync",
		"MinutesBefore": 0,
		"StartTime":     "10:05",
	})
	require.NoError(t, err)
	assert.Equal(t, "Team Sync starts now (10:05)", now)
}

func TestRenderMorningOverviewContext(t *testing.T) {
	out, err := Render(MorningOverviewContext, map[string]any{
		"Date":       "2026-08-24",
		"Weekday":    "Monday",
		"Now":        "07:30",
		"Timezone":   "Europe/Berlin",
		"DayContext": "{}",
		"RiskyTasks": []map[string]any{
			{"Name": "Stretch", "Score": 55, "CompletionRate": 30},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "2026-08-24 (Monday)")
	assert.Contains(t, out, "- Stretch (score 55, completion 30%)")

	empty, err := Render(MorningOverviewContext, map[string]any{
		"Date": "2026-08-24", "Weekday": "Monday", "Now": "07:30",
		"Timezone": "UTC", "DayContext": "{}",
	})
	require.NoError(t, err)
	assert.Contains(t, empty, "(none)")
}

func TestRenderUnknownKey(t *testing.T) {
	_, err := Render("nope", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestAllKeysRegistered(t *testing.T) {
	for _, key := range []string{
		MorningOverviewSystem, MorningOverviewContext, MorningOverviewAsk,
		SmartNotificationSystem, SmartNotificationContext, SmartNotificationAsk,
		InboundSMSSystem, InboundSMSContext, InboundSMSAsk,
		BrainDumpItemSystem, BrainDumpItemContext, BrainDumpItemAsk,
		CalendarReminderBody, AlarmBody,
	} {
		_, ok := registry[key]
		assert.True(t, ok, key)
	}
}
