package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// Entries further out than this are not projected.
const maxEntryHorizon = 365 * 24 * time.Hour

// Incremental loads look this far back on a fresh (token-less) sync.
const syncLookback = 30 * 24 * time.Hour

// CalendarService projects external calendars into entries and series.
type CalendarService struct {
	uow       *uow.Factory
	store     *store.Store
	gateway   gateways.CalendarGateway
	refresher gateways.TokenRefresher
}

// NewCalendarService creates a CalendarService.
func NewCalendarService(uowf *uow.Factory, st *store.Store, gw gateways.CalendarGateway, refresher gateways.TokenRefresher) *CalendarService {
	return &CalendarService{uow: uowf, store: st, gateway: gw, refresher: refresher}
}

// SyncCalendar runs one incremental sync pass over every calendar account
// of the user. A token-expired account is marked needing re-auth and
// skipped; other accounts still sync.
func (s *CalendarService) SyncCalendar(ctx context.Context, userID uuid.UUID) ([]models.SyncCalendarResult, error) {
	user, err := s.store.User(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	results := make([]models.SyncCalendarResult, 0, len(user.Settings.Calendars))
	var firstErr error
	for i := range user.Settings.Calendars {
		res, err := s.syncAccount(ctx, user, i)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			slog.Error("Calendar sync failed",
				"user_id", userID,
				"platform", user.Settings.Calendars[i].Platform,
				"error", err)
			continue
		}
		results = append(results, *res)
	}
	return results, firstErr
}

// syncAccount syncs one connected calendar. All projection writes and the
// cursor update commit in a single unit of work.
func (s *CalendarService) syncAccount(ctx context.Context, user *domain.User, idx int) (*models.SyncCalendarResult, error) {
	account := user.Settings.Calendars[idx]
	now := time.Now().UTC()

	token, err := gateways.EnsureFresh(ctx, s.refresher, account.Platform, account.Auth, now)
	if err != nil {
		if gateways.IsTokenExpired(err) {
			s.markNeedsReauth(ctx, user, idx)
		}
		return nil, err
	}

	delta, err := s.gateway.LoadCalendarEvents(ctx, account, syncLookback, token, account.SyncToken)
	if err != nil {
		return nil, gateways.NewGatewayError(account.Platform, "load_calendar_events", err)
	}

	u, ctx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	pass := &syncPass{
		service: s,
		uow:     u,
		user:    user,
		account: account,
		now:     now,
		entries: make(map[uuid.UUID]*domain.CalendarEntry),
		series:  make(map[uuid.UUID]*domain.CalendarEntrySeries),
		deleted: make(map[uuid.UUID]bool),
	}

	res := &models.SyncCalendarResult{NextSyncToken: delta.NextSyncToken}
	if err := pass.applySeriesUpserts(ctx, delta.SeriesUpserts, res); err != nil {
		return nil, err
	}
	if err := pass.applyEntryUpserts(ctx, delta.EntryUpserts, res); err != nil {
		return nil, err
	}
	if err := pass.applyEntryDeletes(ctx, delta.EntryDeletes, res); err != nil {
		return nil, err
	}
	if err := pass.applySeriesDeletes(ctx, delta.SeriesDeletes, res); err != nil {
		return nil, err
	}

	// Advance the cursor only when something moved: an idempotent re-sync
	// must produce no writes and no audit rows at all.
	changed := res.SeriesCreated+res.SeriesUpdated+res.SeriesDeleted+
		res.EntriesCreated+res.EntriesUpdated+res.EntriesDeleted > 0
	if changed || delta.NextSyncToken != account.SyncToken {
		freshUser, err := s.store.User(ctx, user.ID)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		acct := &freshUser.Settings.Calendars[idx]
		acct.Auth = token
		acct.SyncToken = delta.NextSyncToken
		acct.LastSyncAt = &now
		acct.NeedsReauth = false
		u.Add(freshUser)
	}

	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// markNeedsReauth persists the re-auth flag in its own transaction; the
// failed sync has nothing else to commit.
func (s *CalendarService) markNeedsReauth(ctx context.Context, user *domain.User, idx int) {
	u, ctx, err := s.uow.Begin(ctx)
	if err != nil {
		slog.Error("Failed to open transaction for re-auth flag", "user_id", user.ID, "error", err)
		return
	}
	defer u.Rollback()

	fresh, err := s.store.User(ctx, user.ID)
	if err != nil {
		slog.Error("Failed to reload user for re-auth flag", "user_id", user.ID, "error", err)
		return
	}
	fresh.Settings.Calendars[idx].NeedsReauth = true
	u.Add(fresh)
	if err := u.Commit(ctx); err != nil {
		slog.Error("Failed to persist re-auth flag", "user_id", user.ID, "error", err)
	}
}

// syncPass tracks the aggregates touched by one sync so the series cascade
// and the entry upserts share instances. One instance means one registration
// in the unit of work and exactly one audit event per entity.
type syncPass struct {
	service *CalendarService
	uow     *uow.UnitOfWork
	user    *domain.User
	account domain.CalendarAccount
	now     time.Time

	entries map[uuid.UUID]*domain.CalendarEntry
	series  map[uuid.UUID]*domain.CalendarEntrySeries
	deleted map[uuid.UUID]bool
}

func (p *syncPass) loadSeries(ctx context.Context, id uuid.UUID) (*domain.CalendarEntrySeries, error) {
	if s, ok := p.series[id]; ok {
		return s, nil
	}
	s, err := p.service.store.SeriesByID(ctx, p.user.ID, id)
	if err != nil {
		return nil, err
	}
	p.series[id] = s
	return s, nil
}

func (p *syncPass) loadEntry(ctx context.Context, id uuid.UUID) (*domain.CalendarEntry, error) {
	if e, ok := p.entries[id]; ok {
		return e, nil
	}
	e, err := p.service.store.EntryByID(ctx, p.user.ID, id)
	if err != nil {
		return nil, err
	}
	p.entries[id] = e
	return e, nil
}

func (p *syncPass) applySeriesUpserts(ctx context.Context, upserts []gateways.SeriesUpsert, res *models.SyncCalendarResult) error {
	for _, up := range upserts {
		id := domain.SeriesID(p.account.Platform, up.PlatformID)
		series, err := p.loadSeries(ctx, id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			series = domain.NewCalendarEntrySeries(p.user.ID, p.account.Platform, up.PlatformID)
			series.Apply(up.Fields)
			p.series[id] = series
			p.uow.Add(series)
			res.SeriesCreated++
		case err != nil:
			return err
		case series.Differs(up.Fields):
			series.Apply(up.Fields)
			p.uow.Add(series)
			res.SeriesUpdated++
			if err := p.cascadeSeries(ctx, series, res); err != nil {
				return err
			}
		}
	}
	return nil
}

// cascadeSeries pushes the changed series fields onto every projected
// occurrence. Each occurrence registers once, yielding exactly one
// CalendarEntryUpdatedEvent per entry.
func (p *syncPass) cascadeSeries(ctx context.Context, series *domain.CalendarEntrySeries, res *models.SyncCalendarResult) error {
	occurrences, err := p.service.store.EntriesForSeries(ctx, p.user.ID, series.ID)
	if err != nil {
		return err
	}
	for _, occ := range occurrences {
		entry, ok := p.entries[occ.ID]
		if !ok {
			entry = occ
			p.entries[occ.ID] = entry
		}
		if p.deleted[entry.ID] {
			continue
		}
		entry.InheritSeries(series)
		p.uow.Add(entry)
		res.EntriesUpdated++
	}
	return nil
}

func (p *syncPass) applyEntryUpserts(ctx context.Context, upserts []gateways.EntryUpsert, res *models.SyncCalendarResult) error {
	horizon := p.now.Add(maxEntryHorizon)
	for _, up := range upserts {
		if up.StartsAt.After(horizon) {
			continue
		}
		fields := domain.EntryFields{
			Name:             up.Name,
			StartsAt:         up.StartsAt,
			EndsAt:           up.EndsAt,
			Frequency:        up.Frequency,
			Category:         up.Category,
			AttendanceStatus: up.AttendanceStatus,
		}
		if up.SeriesPlatformID != "" {
			sid := domain.SeriesID(p.account.Platform, up.SeriesPlatformID)
			fields.SeriesID = &sid
		}

		id := domain.EntryID(p.account.Platform, up.PlatformID)
		entry, err := p.loadEntry(ctx, id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			entry = domain.NewCalendarEntry(p.user.ID, p.account.Platform, up.PlatformID)
			entry.Apply(fields)
			p.entries[id] = entry
			p.uow.Add(entry)
			res.EntriesCreated++
		case err != nil:
			return err
		case entry.Differs(fields):
			entry.Apply(fields)
			p.uow.Add(entry)
			res.EntriesUpdated++
		}
	}
	return nil
}

func (p *syncPass) applyEntryDeletes(ctx context.Context, platformIDs []string, res *models.SyncCalendarResult) error {
	for _, pid := range platformIDs {
		id := domain.EntryID(p.account.Platform, pid)
		entry, err := p.loadEntry(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if p.deleted[id] {
			continue
		}
		p.deleted[id] = true
		p.uow.Remove(entry)
		res.EntriesDeleted++

		if entry.SeriesID != nil {
			if err := p.endSeriesIfEmpty(ctx, *entry.SeriesID, res); err != nil {
				return err
			}
		}
	}
	return nil
}

// endSeriesIfEmpty closes a series once it has no remaining future
// occurrence.
func (p *syncPass) endSeriesIfEmpty(ctx context.Context, seriesID uuid.UUID, res *models.SyncCalendarResult) error {
	occurrences, err := p.service.store.EntriesForSeries(ctx, p.user.ID, seriesID)
	if err != nil {
		return err
	}
	for _, occ := range occurrences {
		if !p.deleted[occ.ID] && occ.StartsAt.After(p.now) {
			return nil
		}
	}
	series, err := p.loadSeries(ctx, seriesID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if series.EndsAt == nil {
		series.End(p.now)
		p.uow.Add(series)
		res.SeriesUpdated++
	}
	return nil
}

func (p *syncPass) applySeriesDeletes(ctx context.Context, platformIDs []string, res *models.SyncCalendarResult) error {
	for _, pid := range platformIDs {
		id := domain.SeriesID(p.account.Platform, pid)
		series, err := p.loadSeries(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		occurrences, err := p.service.store.EntriesForSeries(ctx, p.user.ID, id)
		if err != nil {
			return err
		}
		for _, occ := range occurrences {
			if p.deleted[occ.ID] || !occ.StartsAt.After(p.now) {
				continue
			}
			entry, ok := p.entries[occ.ID]
			if !ok {
				entry = occ
				p.entries[occ.ID] = entry
			}
			p.deleted[entry.ID] = true
			p.uow.Remove(entry)
			res.EntriesDeleted++
		}
		if series.EndsAt == nil {
			series.End(p.now)
			p.uow.Add(series)
		}
		res.SeriesDeleted++
	}
	return nil
}
