package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/calendarentry"
	"github.com/daybreakhq/daybreak/ent/calendarentryseries"
	"github.com/daybreakhq/daybreak/pkg/domain"
)

// EntryByID loads one calendar occurrence. Sync derives the id
// deterministically from (platform, platform_id), so a miss means the
// occurrence was never projected.
func (s *Store) EntryByID(ctx context.Context, userID, id uuid.UUID) (*domain.CalendarEntry, error) {
	row, err := s.client.CalendarEntry.Query().
		Where(calendarentry.ID(id), calendarentry.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load calendar entry: %w", err)
	}
	return entryFromEnt(row), nil
}

// SeriesByID loads one calendar series.
func (s *Store) SeriesByID(ctx context.Context, userID, id uuid.UUID) (*domain.CalendarEntrySeries, error) {
	row, err := s.client.CalendarEntrySeries.Query().
		Where(calendarentryseries.ID(id), calendarentryseries.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load calendar series: %w", err)
	}
	return seriesFromEnt(row), nil
}

// EntriesForSeries loads every projected occurrence of a series, oldest
// first. The series-change cascade walks this list.
func (s *Store) EntriesForSeries(ctx context.Context, userID, seriesID uuid.UUID) ([]*domain.CalendarEntry, error) {
	rows, err := s.client.CalendarEntry.Query().
		Where(
			calendarentry.UserID(userID),
			calendarentry.CalendarEntrySeriesID(seriesID),
		).
		Order(ent.Asc(calendarentry.FieldStartsAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list series occurrences: %w", err)
	}
	out := make([]*domain.CalendarEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromEnt(row))
	}
	return out, nil
}

// EntriesStartingBetween loads occurrences with from <= starts_at < to.
// The reminder evaluator uses one-minute windows; the day context uses
// day bounds.
func (s *Store) EntriesStartingBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.CalendarEntry, error) {
	rows, err := s.client.CalendarEntry.Query().
		Where(
			calendarentry.UserID(userID),
			calendarentry.StartsAtGTE(from),
			calendarentry.StartsAtLT(to),
		).
		Order(ent.Asc(calendarentry.FieldStartsAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar entries: %w", err)
	}
	out := make([]*domain.CalendarEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromEnt(row))
	}
	return out, nil
}
