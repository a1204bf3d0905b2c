package domain

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is a stored web-push endpoint for one user device.
type PushSubscription struct {
	AggregateBase
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Endpoint  string            `json:"endpoint"`
	Keys      map[string]string `json:"keys,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewPushSubscription registers a device endpoint.
func NewPushSubscription(userID uuid.UUID, endpoint string, keys map[string]string) *PushSubscription {
	s := &PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  endpoint,
		Keys:      keys,
		CreatedAt: time.Now().UTC(),
	}
	s.markNew()
	return s
}

func (s *PushSubscription) AggregateID() uuid.UUID    { return s.ID }
func (s *PushSubscription) AggregateType() string     { return "push_subscription" }
func (s *PushSubscription) AggregateOwner() uuid.UUID { return s.UserID }

// PushNotification is the audit record of one notification attempt.
// Skipped attempts are persisted too — the triggered_by key is the dedup
// source for re-entrant evaluators.
type PushNotification struct {
	AggregateBase
	ID                  uuid.UUID     `json:"id"`
	UserID              uuid.UUID     `json:"user_id"`
	PushSubscriptionIDs []uuid.UUID   `json:"push_subscription_ids,omitempty"`
	Content             string        `json:"content"`
	Status              PushStatus    `json:"status"`
	ErrorMessage        string        `json:"error_message,omitempty"`
	SentAt              time.Time     `json:"sent_at"`
	TriggeredBy         string        `json:"triggered_by"`
	LLMSnapshot         *LLMRunResult `json:"llm_snapshot,omitempty"`
}

// NewPushNotification records a notification attempt.
func NewPushNotification(userID uuid.UUID, content, triggeredBy string, status PushStatus) *PushNotification {
	n := &PushNotification{
		ID:          uuid.New(),
		UserID:      userID,
		Content:     content,
		Status:      status,
		SentAt:      time.Now().UTC(),
		TriggeredBy: triggeredBy,
	}
	n.markNew()
	return n
}

func (n *PushNotification) AggregateID() uuid.UUID    { return n.ID }
func (n *PushNotification) AggregateType() string     { return "push_notification" }
func (n *PushNotification) AggregateOwner() uuid.UUID { return n.UserID }
