package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// Risk weights and thresholds for the skip-risk heuristic.
const (
	riskWeightAvoidant    = 30
	riskWeightForgettable = 25
	riskWeightUrgent      = 20
	riskWeightLowRate     = 40 // completion rate below 40%
	riskWeightMidRate     = 20 // completion rate below 60%
	riskWeightNonDaily    = 15
	riskThreshold         = 30
)

// TaskService owns task mutation and the risk query.
type TaskService struct {
	uow   *uow.Factory
	store *store.Store
}

// NewTaskService creates a TaskService.
func NewTaskService(uowf *uow.Factory, st *store.Store) *TaskService {
	return &TaskService{uow: uowf, store: st}
}

// RecordTaskAction appends one action to the task's append-only log and
// applies the status transition it implies.
func (s *TaskService) RecordTaskAction(ctx context.Context, req models.RecordTaskActionRequest) (*domain.Task, error) {
	if req.Action == "" {
		return nil, NewValidationError("action", "required")
	}
	task, err := s.store.TaskByID(ctx, req.UserID, req.TaskID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	u, ctx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	if err := task.RecordAction(req.Action, req.Note, time.Now()); err != nil {
		return nil, err
	}
	u.Add(task)
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return task, nil
}

// CreateAdhocTask creates a user-authored task for a date. Adhoc tasks
// survive day re-scheduling.
func (s *TaskService) CreateAdhocTask(ctx context.Context, req models.CreateAdhocTaskRequest) (*domain.Task, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, NewValidationError("date", err.Error())
	}

	task := domain.NewAdhocTask(req.UserID, req.Name, date)
	task.Category = req.Category
	task.Type = req.Type
	task.Tags = req.Tags
	if req.Schedule != nil {
		sched := *req.Schedule
		task.Schedule = &sched
	}

	u, ctx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	u.Add(task)
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return task, nil
}

// TaskRisk scores the date's tasks for skip risk. DAILY-frequency and
// completed tasks are excluded; only tasks at or above the threshold are
// returned. Completion rates come from the routine's completed-vs-punted
// action history in the audit stream over the lookback window.
func (s *TaskService) TaskRisk(ctx context.Context, userID uuid.UUID, date domain.Date, lookbackDays int) ([]models.TaskRisk, error) {
	if lookbackDays <= 0 {
		lookbackDays = 30
	}
	tasks, err := s.store.TasksForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	since := date.AddDays(-lookbackDays).Time(time.UTC)
	stats, err := s.store.RoutineActionStats(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	var out []models.TaskRisk
	for _, t := range tasks {
		if t.Frequency == domain.FrequencyDaily || t.Status == domain.TaskComplete {
			continue
		}
		risk := scoreTask(t, completionRate(t, stats))
		if risk.Score >= riskThreshold {
			out = append(out, risk)
		}
	}
	return out, nil
}

// completionRate returns the percent of the routine's recorded actions
// that completed rather than punted, or -1 when the task has no action
// history. Materialized tasks the user never acted on do not count.
func completionRate(t *domain.Task, stats map[uuid.UUID]store.RoutineActionTally) int {
	if t.RoutineDefinitionID == nil {
		return -1
	}
	tally := stats[*t.RoutineDefinitionID]
	total := tally.Completed + tally.Punted
	if total == 0 {
		return -1
	}
	return tally.Completed * 100 / total
}

func scoreTask(t *domain.Task, completionRate int) models.TaskRisk {
	score := 0
	var reasons []string

	for _, tag := range t.Tags {
		switch strings.ToUpper(tag) {
		case "AVOIDANT":
			score += riskWeightAvoidant
			reasons = append(reasons, "tagged AVOIDANT")
		case "FORGETTABLE":
			score += riskWeightForgettable
			reasons = append(reasons, "tagged FORGETTABLE")
		case "URGENT":
			score += riskWeightUrgent
			reasons = append(reasons, "tagged URGENT")
		}
	}
	if completionRate >= 0 {
		switch {
		case completionRate < 40:
			score += riskWeightLowRate
			reasons = append(reasons, fmt.Sprintf("completion rate %d%%", completionRate))
		case completionRate < 60:
			score += riskWeightMidRate
			reasons = append(reasons, fmt.Sprintf("completion rate %d%%", completionRate))
		}
	}
	if t.Frequency != domain.FrequencyDaily && t.Frequency != "" {
		score += riskWeightNonDaily
		reasons = append(reasons, fmt.Sprintf("%s frequency", t.Frequency))
	}
	return models.TaskRisk{
		TaskID:         t.ID,
		Name:           t.Name,
		Score:          score,
		CompletionRate: completionRate,
		Reasons:        reasons,
	}
}
