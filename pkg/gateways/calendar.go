package gateways

import (
	"context"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

// SeriesUpsert is one recurring-series record from the upstream calendar.
type SeriesUpsert struct {
	PlatformID string
	Fields     domain.SeriesFields
}

// EntryUpsert is one occurrence record from the upstream calendar.
// SeriesPlatformID is empty for standalone events; the sync handler maps
// it to the deterministic series id.
type EntryUpsert struct {
	PlatformID       string
	SeriesPlatformID string
	Name             string
	StartsAt         time.Time
	EndsAt           time.Time
	Frequency        domain.Frequency
	Category         string
	AttendanceStatus domain.AttendanceStatus
}

// CalendarDelta is the result of one incremental (or full, when SyncToken
// was empty) load. Deletes carry upstream platform ids: for entries these
// are cancelled occurrences, for series the whole series is gone.
type CalendarDelta struct {
	SeriesUpserts []SeriesUpsert
	SeriesDeletes []string
	EntryUpserts  []EntryUpsert
	EntryDeletes  []string
	NextSyncToken string
}

// CalendarGateway loads event changes from an external calendar platform.
type CalendarGateway interface {
	// LoadCalendarEvents fetches changes since syncToken (full window of
	// lookback when the token is empty) using the given credential.
	LoadCalendarEvents(ctx context.Context, account domain.CalendarAccount, lookback time.Duration, token domain.AuthToken, syncToken string) (*CalendarDelta, error)
}

// TokenRefresher exchanges an expired credential for a fresh one.
type TokenRefresher interface {
	Refresh(ctx context.Context, token domain.AuthToken) (domain.AuthToken, error)
}

// EnsureFresh returns a usable token, refreshing when expired. A refresh
// failure is permanent from the caller's perspective and surfaces as
// TokenExpiredError.
func EnsureFresh(ctx context.Context, r TokenRefresher, platform string, token domain.AuthToken, now time.Time) (domain.AuthToken, error) {
	if !token.Expired(now) {
		return token, nil
	}
	fresh, err := r.Refresh(ctx, token)
	if err != nil {
		return domain.AuthToken{}, &TokenExpiredError{Platform: platform, Err: err}
	}
	return fresh, nil
}
