package store

import (
	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/pkg/domain"
)

// Converters from Ent rows back to domain aggregates. Loaded aggregates
// start with a clean event buffer and are not "new": committing them
// unchanged audits as an update, not a creation.

func userFromEnt(row *ent.User) *domain.User {
	return &domain.User{
		ID:          row.ID,
		Name:        row.Name,
		PhoneNumber: row.PhoneNumber,
		Settings:    row.Settings,
	}
}

func dayFromEnt(row *ent.Day) *domain.Day {
	return &domain.Day{
		ID:           row.ID,
		UserID:       row.UserID,
		Date:         domain.Date(row.Date),
		Status:       domain.DayStatus(row.Status),
		TemplateID:   row.TemplateID,
		TemplateSlug: row.TemplateSlug,
		TimeBlocks:   row.TimeBlocks,
		Plan:         row.HighLevelPlan,
		Alarms:       row.Alarms,
		Tags:         row.Tags,
		ScheduledAt:  row.ScheduledAt,
	}
}

func taskFromEnt(row *ent.Task) *domain.Task {
	return &domain.Task{
		ID:                  row.ID,
		UserID:              row.UserID,
		Name:                row.Name,
		Status:              domain.TaskStatus(row.Status),
		Category:            row.Category,
		Type:                row.Type,
		Frequency:           domain.Frequency(row.Frequency),
		Schedule:            row.Schedule,
		ScheduledDate:       domain.Date(row.ScheduledDate),
		RoutineDefinitionID: row.RoutineDefinitionID,
		Tags:                row.Tags,
		Actions:             row.Actions,
		CompletedAt:         row.CompletedAt,
		LLMRunResult:        row.LlmRunResult,
		CreatedAt:           row.CreatedAt,
	}
}

func routineFromEnt(row *ent.Routine) *domain.Routine {
	return &domain.Routine{
		ID:       row.ID,
		UserID:   row.UserID,
		Name:     row.Name,
		Schedule: row.Schedule,
		Tasks:    row.RoutineTasks,
		Tags:     row.Tags,
	}
}

func templateFromEnt(row *ent.DayTemplate) *domain.DayTemplate {
	return &domain.DayTemplate{
		ID:                   row.ID,
		UserID:               row.UserID,
		Slug:                 row.Slug,
		StartTime:            row.StartTime,
		EndTime:              row.EndTime,
		RoutineDefinitionIDs: row.RoutineDefinitionIds,
		TimeBlocks:           row.TimeBlocks,
		Plan:                 row.HighLevelPlan,
	}
}

func entryFromEnt(row *ent.CalendarEntry) *domain.CalendarEntry {
	return &domain.CalendarEntry{
		ID:               row.ID,
		UserID:           row.UserID,
		Platform:         row.Platform,
		PlatformID:       row.PlatformID,
		SeriesID:         row.CalendarEntrySeriesID,
		Name:             row.Name,
		StartsAt:         row.StartsAt,
		EndsAt:           row.EndsAt,
		Frequency:        domain.Frequency(row.Frequency),
		Category:         row.EventCategory,
		AttendanceStatus: domain.AttendanceStatus(row.AttendanceStatus),
	}
}

func seriesFromEnt(row *ent.CalendarEntrySeries) *domain.CalendarEntrySeries {
	return &domain.CalendarEntrySeries{
		ID:         row.ID,
		UserID:     row.UserID,
		Platform:   row.Platform,
		PlatformID: row.PlatformID,
		Name:       row.Name,
		Frequency:  domain.Frequency(row.Frequency),
		Category:   row.EventCategory,
		Recurrence: row.Recurrence,
		StartsAt:   row.StartsAt,
		EndsAt:     row.EndsAt,
	}
}

func messageFromEnt(row *ent.Message) *domain.Message {
	return &domain.Message{
		ID:           row.ID,
		UserID:       row.UserID,
		Role:         domain.MessageRole(row.Role),
		Content:      row.Content,
		Meta:         row.Meta,
		TriggeredBy:  row.TriggeredBy,
		LLMRunResult: row.LlmRunResult,
		CreatedAt:    row.CreatedAt,
	}
}

func subscriptionFromEnt(row *ent.PushSubscription) *domain.PushSubscription {
	return &domain.PushSubscription{
		ID:        row.ID,
		UserID:    row.UserID,
		Endpoint:  row.Endpoint,
		Keys:      row.Keys,
		CreatedAt: row.CreatedAt,
	}
}

func notificationFromEnt(row *ent.PushNotification) *domain.PushNotification {
	return &domain.PushNotification{
		ID:                  row.ID,
		UserID:              row.UserID,
		PushSubscriptionIDs: row.PushSubscriptionIds,
		Content:             row.Content,
		Status:              domain.PushStatus(row.Status),
		ErrorMessage:        row.ErrorMessage,
		SentAt:              row.SentAt,
		TriggeredBy:         row.TriggeredBy,
		LLMSnapshot:         row.LlmSnapshot,
	}
}

func brainDumpFromEnt(row *ent.BrainDump) *domain.BrainDump {
	return &domain.BrainDump{
		ID:     row.ID,
		UserID: row.UserID,
		Date:   domain.Date(row.Date),
		Items:  row.Items,
	}
}
