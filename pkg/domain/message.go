package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is an inbound or outbound communication (SMS, in-app).
type Message struct {
	AggregateBase
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	Role         MessageRole    `json:"role"`
	Content      string         `json:"content"`
	Meta         map[string]any `json:"meta,omitempty"`
	TriggeredBy  string         `json:"triggered_by,omitempty"`
	LLMRunResult *LLMRunResult  `json:"llm_run_result,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// NewMessage creates a message. Meta keys the transports care about:
// from_number, to_number, in_reply_to_message_id, payload, provider.
func NewMessage(userID uuid.UUID, role MessageRole, content string) *Message {
	m := &Message{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		Meta:      map[string]any{},
		CreatedAt: time.Now().UTC(),
	}
	m.markNew()
	m.Emit(&MessageReceivedEvent{eventBase: newEventBase(userID), MessageID: m.ID})
	return m
}

// NewOutboundMessage creates an assistant-authored message without the
// inbound-received event.
func NewOutboundMessage(userID uuid.UUID, content, triggeredBy string) *Message {
	m := &Message{
		ID:          uuid.New(),
		UserID:      userID,
		Role:        RoleAssistant,
		Content:     content,
		Meta:        map[string]any{},
		TriggeredBy: triggeredBy,
		CreatedAt:   time.Now().UTC(),
	}
	m.markNew()
	return m
}

func (m *Message) AggregateID() uuid.UUID    { return m.ID }
func (m *Message) AggregateType() string     { return "message" }
func (m *Message) AggregateOwner() uuid.UUID { return m.UserID }
