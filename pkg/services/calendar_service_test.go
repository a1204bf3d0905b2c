package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
)

func seedCalendarUser(t *testing.T, f *fixture) *domain.User {
	t.Helper()
	user := domain.NewUser("Dana")
	user.Settings.Calendars = []domain.CalendarAccount{{
		Platform:   "google",
		CalendarID: "primary",
		Auth: domain.AuthToken{
			AccessToken: "live",
			ExpiresAt:   time.Now().Add(time.Hour),
		},
	}}
	f.commit(t, user)
	return user
}

func entryAt(name, platformID, seriesPlatformID string, startsAt time.Time) gateways.EntryUpsert {
	return gateways.EntryUpsert{
		PlatformID:       platformID,
		SeriesPlatformID: seriesPlatformID,
		Name:             name,
		StartsAt:         startsAt,
		EndsAt:           startsAt.Add(time.Hour),
		Frequency:        domain.FrequencyWeekly,
	}
}

func TestSyncCalendarCreatesEntriesAndSeries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := seedCalendarUser(t, f)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	gw := &gateways.StubCalendarGateway{
		Script: []*gateways.CalendarDelta{{
			SeriesUpserts: []gateways.SeriesUpsert{{
				PlatformID: "ser-1",
				Fields: domain.SeriesFields{
					Name:      "Team Sync",
					Frequency: domain.FrequencyWeekly,
					StartsAt:  start,
				},
			}},
			EntryUpserts: []gateways.EntryUpsert{
				entryAt("Team Sync", "ev-1", "ser-1", start),
				entryAt("Team Sync", "ev-2", "ser-1", start.Add(7*24*time.Hour)),
			},
			NextSyncToken: "t1",
		}},
	}

	svc := NewCalendarService(f.uow, f.store, gw, &gateways.StubTokenRefresher{})
	results, err := svc.SyncCalendar(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].SeriesCreated)
	assert.Equal(t, 2, results[0].EntriesCreated)
	assert.Equal(t, "t1", results[0].NextSyncToken)

	seriesID := domain.SeriesID("google", "ser-1")
	series, err := f.store.SeriesByID(ctx, user.ID, seriesID)
	require.NoError(t, err)
	assert.Equal(t, "Team Sync", series.Name)

	entries, err := f.store.EntriesForSeries(ctx, user.ID, seriesID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The cursor advanced.
	fresh, err := f.store.User(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "t1", fresh.Settings.Calendars[0].SyncToken)
	require.NotNil(t, fresh.Settings.Calendars[0].LastSyncAt)
}

func TestSyncCalendarIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := seedCalendarUser(t, f)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	gw := &gateways.StubCalendarGateway{
		Script: []*gateways.CalendarDelta{{
			EntryUpserts:  []gateways.EntryUpsert{entryAt("Standup", "ev-1", "", start)},
			NextSyncToken: "t1",
		}},
		// Past the script the stub echoes the token with an empty delta.
	}

	svc := NewCalendarService(f.uow, f.store, gw, &gateways.StubTokenRefresher{})
	_, err := svc.SyncCalendar(ctx, user.ID)
	require.NoError(t, err)

	before := f.totalAuditCount(t)
	_, err = svc.SyncCalendar(ctx, user.ID)
	require.NoError(t, err)

	// No upstream changes: no writes, no audit rows.
	assert.Equal(t, before, f.totalAuditCount(t))
	assert.Equal(t, []string{"", "t1"}, gw.Calls)
}

func TestSyncCalendarSeriesCascade(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := seedCalendarUser(t, f)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	fields := domain.SeriesFields{Name: "Old Series", Frequency: domain.FrequencyWeekly, StartsAt: start}
	renamed := fields
	renamed.Name = "New Series"

	gw := &gateways.StubCalendarGateway{
		Script: []*gateways.CalendarDelta{
			{
				SeriesUpserts: []gateways.SeriesUpsert{{PlatformID: "ser-1", Fields: fields}},
				EntryUpserts: []gateways.EntryUpsert{
					entryAt("Old Series", "ev-1", "ser-1", start),
					entryAt("Old Series", "ev-2", "ser-1", start.Add(24*time.Hour)),
				},
				NextSyncToken: "t1",
			},
			{
				SeriesUpserts: []gateways.SeriesUpsert{{PlatformID: "ser-1", Fields: renamed}},
				NextSyncToken: "t2",
			},
		},
	}

	svc := NewCalendarService(f.uow, f.store, gw, &gateways.StubTokenRefresher{})
	_, err := svc.SyncCalendar(ctx, user.ID)
	require.NoError(t, err)

	_, err = svc.SyncCalendar(ctx, user.ID)
	require.NoError(t, err)

	seriesID := domain.SeriesID("google", "ser-1")
	entries, err := f.store.EntriesForSeries(ctx, user.ID, seriesID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "New Series", e.Name)
	}

	// Exactly one series update and one update per affected entry.
	assert.Equal(t, 1, f.auditCount(t, "CalendarEntrySeriesUpdatedEvent"))
	assert.Equal(t, 2, f.auditCount(t, "CalendarEntryUpdatedEvent"))
}

func TestSyncCalendarCancelledEntryEndsEmptySeries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := seedCalendarUser(t, f)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	gw := &gateways.StubCalendarGateway{
		Script: []*gateways.CalendarDelta{
			{
				SeriesUpserts: []gateways.SeriesUpsert{{PlatformID: "ser-1", Fields: domain.SeriesFields{
					Name: "Short lived", Frequency: domain.FrequencyWeekly, StartsAt: start,
				}}},
				EntryUpserts:  []gateways.EntryUpsert{entryAt("Short lived", "ev-1", "ser-1", start)},
				NextSyncToken: "t1",
			},
			{
				EntryDeletes:  []string{"ev-1"},
				NextSyncToken: "t2",
			},
		},
	}

	svc := NewCalendarService(f.uow, f.store, gw, &gateways.StubTokenRefresher{})
	_, err := svc.SyncCalendar(ctx, user.ID)
	require.NoError(t, err)
	_, err = svc.SyncCalendar(ctx, user.ID)
	require.NoError(t, err)

	seriesID := domain.SeriesID("google", "ser-1")
	entries, err := f.store.EntriesForSeries(ctx, user.ID, seriesID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	series, err := f.store.SeriesByID(ctx, user.ID, seriesID)
	require.NoError(t, err)
	require.NotNil(t, series.EndsAt, "series with no future occurrences must end")
}

func TestSyncCalendarFarFutureEntriesFiltered(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := seedCalendarUser(t, f)

	farOut := time.Now().Add(400 * 24 * time.Hour).UTC()
	gw := &gateways.StubCalendarGateway{
		Script: []*gateways.CalendarDelta{{
			EntryUpserts:  []gateways.EntryUpsert{entryAt("Someday", "ev-future", "", farOut)},
			NextSyncToken: "t1",
		}},
	}

	svc := NewCalendarService(f.uow, f.store, gw, &gateways.StubTokenRefresher{})
	results, err := svc.SyncCalendar(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, results[0].EntriesCreated)
}

func TestSyncCalendarTokenExpiredMarksReauth(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := domain.NewUser("Dana")
	user.Settings.Calendars = []domain.CalendarAccount{{
		Platform:   "google",
		CalendarID: "primary",
		Auth: domain.AuthToken{
			AccessToken: "stale",
			ExpiresAt:   time.Now().Add(-time.Hour),
		},
	}}
	f.commit(t, user)

	gw := &gateways.StubCalendarGateway{}
	refresher := &gateways.StubTokenRefresher{Err: errors.New("invalid_grant")}

	svc := NewCalendarService(f.uow, f.store, gw, refresher)
	_, err := svc.SyncCalendar(ctx, user.ID)
	require.Error(t, err)
	assert.True(t, gateways.IsTokenExpired(err))

	// The gateway was never called; the account is flagged.
	assert.Empty(t, gw.Calls)
	fresh, err := f.store.User(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, fresh.Settings.Calendars[0].NeedsReauth)
}
