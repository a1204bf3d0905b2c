// Package models contains request/response models for the service layer.
package models

import (
	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

// ScheduleDayRequest contains fields for scheduling a user's day.
type ScheduleDayRequest struct {
	UserID     uuid.UUID  `json:"user_id"`
	Date       string     `json:"date"` // "YYYY-MM-DD"
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
}

// RecordTaskActionRequest appends one action to a task's log.
type RecordTaskActionRequest struct {
	UserID uuid.UUID `json:"user_id"`
	TaskID uuid.UUID `json:"task_id"`
	Action string    `json:"action"`
	Note   string    `json:"note,omitempty"`
}

// CreateAdhocTaskRequest creates a user-authored task for a date.
type CreateAdhocTaskRequest struct {
	UserID   uuid.UUID          `json:"user_id"`
	Name     string             `json:"name"`
	Date     string             `json:"date"`
	Category string             `json:"category,omitempty"`
	Type     string             `json:"type,omitempty"`
	Tags     []string           `json:"tags,omitempty"`
	Schedule *domain.TimeWindow `json:"schedule,omitempty"`
}

// CaptureBrainDumpRequest appends raw items to the date's capture list.
type CaptureBrainDumpRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Date   string    `json:"date"`
	Items  []string  `json:"items"`
}

// ReceiveSMSRequest is an inbound text from the SMS webhook.
type ReceiveSMSRequest struct {
	FromNumber string `json:"from_number"`
	ToNumber   string `json:"to_number"`
	Body       string `json:"body"`
	Provider   string `json:"provider,omitempty"`
}

// SendPushNotificationRequest delivers one payload to the user's stored
// subscriptions and records the attempt.
type SendPushNotificationRequest struct {
	UserID          uuid.UUID            `json:"user_id"`
	Content         string               `json:"content"`
	TriggeredBy     string               `json:"triggered_by"`
	SubscriptionIDs []uuid.UUID          `json:"subscription_ids,omitempty"` // empty = all
	LLMSnapshot     *domain.LLMRunResult `json:"llm_snapshot,omitempty"`
}
