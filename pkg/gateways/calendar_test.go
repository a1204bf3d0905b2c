package gateways

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

func TestEnsureFresh(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	t.Run("valid token passes through", func(t *testing.T) {
		r := &StubTokenRefresher{}
		token := domain.AuthToken{AccessToken: "live", ExpiresAt: now.Add(time.Hour)}

		got, err := EnsureFresh(context.Background(), r, "google", token, now)
		require.NoError(t, err)
		assert.Equal(t, "live", got.AccessToken)
		assert.Zero(t, r.Calls)
	})

	t.Run("expired token refreshed", func(t *testing.T) {
		r := &StubTokenRefresher{Token: domain.AuthToken{AccessToken: "fresh", ExpiresAt: now.Add(time.Hour)}}
		token := domain.AuthToken{AccessToken: "stale", ExpiresAt: now.Add(-time.Minute)}

		got, err := EnsureFresh(context.Background(), r, "google", token, now)
		require.NoError(t, err)
		assert.Equal(t, "fresh", got.AccessToken)
		assert.Equal(t, 1, r.Calls)
	})

	t.Run("refresh failure is TokenExpiredError", func(t *testing.T) {
		r := &StubTokenRefresher{Err: errors.New("invalid_grant")}
		token := domain.AuthToken{AccessToken: "stale", ExpiresAt: now.Add(-time.Minute)}

		_, err := EnsureFresh(context.Background(), r, "google", token, now)
		require.Error(t, err)
		assert.True(t, IsTokenExpired(err))
		assert.Contains(t, err.Error(), "google")
	})
}

func TestGatewayErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewGatewayError("sms", "send_message", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "sms gateway")
	assert.False(t, IsTokenExpired(err))
}

func TestStubCalendarGatewayScript(t *testing.T) {
	gw := &StubCalendarGateway{
		Script: []*CalendarDelta{
			{EntryUpserts: []EntryUpsert{{PlatformID: "ev-1", Name: "Team Sync"}}, NextSyncToken: "t1"},
		},
	}
	account := domain.CalendarAccount{Platform: "google", CalendarID: "primary"}

	first, err := gw.LoadCalendarEvents(context.Background(), account, 30*24*time.Hour, domain.AuthToken{}, "")
	require.NoError(t, err)
	require.Len(t, first.EntryUpserts, 1)
	assert.Equal(t, "t1", first.NextSyncToken)

	// Past the script: empty delta, token echoed back.
	second, err := gw.LoadCalendarEvents(context.Background(), account, 30*24*time.Hour, domain.AuthToken{}, "t1")
	require.NoError(t, err)
	assert.Empty(t, second.EntryUpserts)
	assert.Equal(t, "t1", second.NextSyncToken)

	assert.Equal(t, []string{"", "t1"}, gw.Calls)
}
