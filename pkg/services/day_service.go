package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// DayService owns the day state machine: scheduling, preview, completion.
type DayService struct {
	uow   *uow.Factory
	store *store.Store
}

// NewDayService creates a DayService.
func NewDayService(uowf *uow.Factory, st *store.Store) *DayService {
	return &DayService{uow: uowf, store: st}
}

// ScheduleDay resolves a template, replaces the date's routine tasks with
// freshly materialized ones and moves the Day to SCHEDULED. Adhoc tasks
// survive. Template resolution order: explicit id, the day's existing
// template, the settings default for the weekday.
func (s *DayService) ScheduleDay(ctx context.Context, req models.ScheduleDayRequest) (*domain.Day, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, NewValidationError("date", err.Error())
	}

	user, err := s.store.User(ctx, req.UserID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	day, err := s.loadOrCreateDay(ctx, req.UserID, date)
	if err != nil {
		return nil, err
	}

	tmpl, err := s.resolveTemplate(ctx, user, day, req.TemplateID, date)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, NewValidationError("template", "Day template is required to schedule")
	}

	tasks, err := s.materializeTasks(ctx, user, tmpl, date)
	if err != nil {
		return nil, err
	}

	u, ctx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	if err := day.Schedule(tmpl); err != nil {
		return nil, err
	}

	existing, err := s.store.RoutineTasksForDate(ctx, req.UserID, date)
	if err != nil {
		return nil, err
	}
	for _, t := range existing {
		u.Remove(t)
	}

	u.Add(day)
	for _, t := range tasks {
		u.Add(t)
	}
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return day, nil
}

// PreviewDay materializes the tasks scheduling would produce, without
// writing anything.
func (s *DayService) PreviewDay(ctx context.Context, userID uuid.UUID, rawDate string, templateID *uuid.UUID) ([]*domain.Task, error) {
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return nil, NewValidationError("date", err.Error())
	}
	user, err := s.store.User(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	var day *domain.Day
	if d, err := s.store.DayByDate(ctx, userID, date); err == nil {
		day = d
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	tmpl, err := s.resolveTemplate(ctx, user, day, templateID, date)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, NewValidationError("template", "Day template is required to schedule")
	}
	return s.materializeTasks(ctx, user, tmpl, date)
}

// StartDay moves a scheduled day into IN_PROGRESS.
func (s *DayService) StartDay(ctx context.Context, userID uuid.UUID, rawDate string) (*domain.Day, error) {
	return s.transitionDay(ctx, userID, rawDate, (*domain.Day).Start)
}

// CompleteDay moves the day to its terminal state.
func (s *DayService) CompleteDay(ctx context.Context, userID uuid.UUID, rawDate string) (*domain.Day, error) {
	return s.transitionDay(ctx, userID, rawDate, (*domain.Day).Complete)
}

// UnscheduleDay reverts the day to UNSCHEDULED, dropping the template copy.
// Routine tasks of the date are removed; adhoc tasks stay.
func (s *DayService) UnscheduleDay(ctx context.Context, userID uuid.UUID, rawDate string) (*domain.Day, error) {
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return nil, NewValidationError("date", err.Error())
	}
	day, err := s.store.DayByDate(ctx, userID, date)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	u, ctx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	if err := day.Unschedule(); err != nil {
		return nil, err
	}
	routineTasks, err := s.store.RoutineTasksForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	for _, t := range routineTasks {
		u.Remove(t)
	}
	u.Add(day)
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return day, nil
}

func (s *DayService) transitionDay(ctx context.Context, userID uuid.UUID, rawDate string, transition func(*domain.Day) error) (*domain.Day, error) {
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return nil, NewValidationError("date", err.Error())
	}
	day, err := s.store.DayByDate(ctx, userID, date)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	u, ctx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	if err := transition(day); err != nil {
		return nil, err
	}
	u.Add(day)
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return day, nil
}

// loadOrCreateDay returns the persisted day or a new one with the
// deterministic identity. Days exist lazily.
func (s *DayService) loadOrCreateDay(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.Day, error) {
	day, err := s.store.DayByDate(ctx, userID, date)
	if err == nil {
		return day, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return domain.NewDay(userID, date), nil
	}
	return nil, err
}

// resolveTemplate applies the three-step resolution. A nil return with a
// nil error means no template could be resolved.
func (s *DayService) resolveTemplate(ctx context.Context, user *domain.User, day *domain.Day, templateID *uuid.UUID, date domain.Date) (*domain.DayTemplate, error) {
	if templateID != nil {
		tmpl, err := s.store.TemplateByID(ctx, user.ID, *templateID)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		return tmpl, nil
	}
	if day != nil && day.TemplateID != nil {
		tmpl, err := s.store.TemplateByID(ctx, user.ID, *day.TemplateID)
		if err == nil {
			return tmpl, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	slug := user.Settings.TemplateSlugFor(date)
	if slug == "" {
		return nil, nil
	}
	tmpl, err := s.store.TemplateBySlug(ctx, user.ID, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return tmpl, nil
}

// materializeTasks builds one task per routine_task of every routine active
// on the date. When the template names routines it restricts to those,
// preserving the template's ordering; otherwise every user routine applies.
func (s *DayService) materializeTasks(ctx context.Context, user *domain.User, tmpl *domain.DayTemplate, date domain.Date) ([]*domain.Task, error) {
	var routines []*domain.Routine
	var err error
	if len(tmpl.RoutineDefinitionIDs) > 0 {
		routines, err = s.store.RoutinesByIDs(ctx, user.ID, tmpl.RoutineDefinitionIDs)
	} else {
		routines, err = s.store.Routines(ctx, user.ID)
	}
	if err != nil {
		return nil, err
	}

	var tasks []*domain.Task
	for _, r := range routines {
		if !r.ActiveOn(date) {
			continue
		}
		for _, rt := range r.Tasks {
			tasks = append(tasks, domain.MaterializeRoutineTask(user.ID, r, rt, date))
		}
	}
	sortTasksForDay(tasks)
	return tasks, nil
}

// sortTasksForDay orders tasks with a start time first, by start time;
// unscheduled tasks follow in insertion order.
func sortTasksForDay(tasks []*domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		si, sj := taskStartTime(tasks[i]), taskStartTime(tasks[j])
		if si == "" {
			return false
		}
		if sj == "" {
			return true
		}
		return si < sj
	})
}

func taskStartTime(t *domain.Task) string {
	if t.Schedule == nil {
		return ""
	}
	return t.Schedule.StartTime
}

// mapStoreErr translates store misses into the service sentinel.
func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
