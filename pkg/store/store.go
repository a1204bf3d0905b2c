// Package store is the read side of the planning core: user-scoped
// queries over the Ent client, mapped back to domain aggregates.
// Writes go through pkg/uow, never through here.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/day"
	"github.com/daybreakhq/daybreak/ent/daytemplate"
	"github.com/daybreakhq/daybreak/ent/routine"
	"github.com/daybreakhq/daybreak/ent/task"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
)

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("entity not found")

// Store exposes read queries over an Ent client. Construct it over
// database.Client for plain reads, or over uow.Tx().Client() when the
// reads must observe uncommitted writes of the same operation.
type Store struct {
	client *ent.Client
}

// New creates a Store.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// User loads one user.
func (s *Store) User(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return userFromEnt(row), nil
}

// UserByPhone resolves the user owning a phone number. Inbound SMS routing
// starts here.
func (s *Store) UserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	row, err := s.client.User.Query().
		Where(user.PhoneNumber(phone)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user by phone: %w", err)
	}
	return userFromEnt(row), nil
}

// Users loads every user. The cron scheduler fans out per-user work from
// this list.
func (s *Store) Users(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.client.User.Query().
		Order(ent.Asc(user.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromEnt(row))
	}
	return out, nil
}

// DayByDate loads the user's day for a calendar date.
func (s *Store) DayByDate(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.Day, error) {
	row, err := s.client.Day.Query().
		Where(day.UserID(userID), day.Date(string(date))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load day: %w", err)
	}
	return dayFromEnt(row), nil
}

// TemplateBySlug loads the user's day template by slug.
func (s *Store) TemplateBySlug(ctx context.Context, userID uuid.UUID, slug string) (*domain.DayTemplate, error) {
	row, err := s.client.DayTemplate.Query().
		Where(daytemplate.UserID(userID), daytemplate.Slug(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load day template: %w", err)
	}
	return templateFromEnt(row), nil
}

// TemplateByID loads the user's day template by id.
func (s *Store) TemplateByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.DayTemplate, error) {
	row, err := s.client.DayTemplate.Query().
		Where(daytemplate.ID(id), daytemplate.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load day template: %w", err)
	}
	return templateFromEnt(row), nil
}

// Routines loads all routine definitions for a user.
func (s *Store) Routines(ctx context.Context, userID uuid.UUID) ([]*domain.Routine, error) {
	rows, err := s.client.Routine.Query().
		Where(routine.UserID(userID)).
		Order(ent.Asc(routine.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	out := make([]*domain.Routine, 0, len(rows))
	for _, row := range rows {
		out = append(out, routineFromEnt(row))
	}
	return out, nil
}

// RoutinesByIDs loads the given routine definitions, skipping ids that no
// longer exist.
func (s *Store) RoutinesByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Routine, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.client.Routine.Query().
		Where(routine.UserID(userID), routine.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load routines: %w", err)
	}
	// Preserve the template's ordering.
	byID := make(map[uuid.UUID]*domain.Routine, len(rows))
	for _, row := range rows {
		byID[row.ID] = routineFromEnt(row)
	}
	out := make([]*domain.Routine, 0, len(rows))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// TaskByID loads one of the user's tasks.
func (s *Store) TaskByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Task, error) {
	row, err := s.client.Task.Query().
		Where(task.ID(id), task.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return taskFromEnt(row), nil
}

// TasksForDate loads every task scheduled on the date, adhoc and routine.
func (s *Store) TasksForDate(ctx context.Context, userID uuid.UUID, date domain.Date) ([]*domain.Task, error) {
	rows, err := s.client.Task.Query().
		Where(task.UserID(userID), task.ScheduledDate(string(date))).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	out := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskFromEnt(row))
	}
	return out, nil
}

// RoutineTasksForDate loads only the routine-materialized tasks of the
// date. Re-scheduling replaces exactly these; adhoc tasks survive.
func (s *Store) RoutineTasksForDate(ctx context.Context, userID uuid.UUID, date domain.Date) ([]*domain.Task, error) {
	rows, err := s.client.Task.Query().
		Where(
			task.UserID(userID),
			task.ScheduledDate(string(date)),
			task.RoutineDefinitionIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routine tasks: %w", err)
	}
	out := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskFromEnt(row))
	}
	return out, nil
}

