package domain

import (
	"time"

	"github.com/google/uuid"
)

// BrainDumpItem is one captured thought awaiting background processing.
type BrainDumpItem struct {
	ID          uuid.UUID  `json:"id"`
	Text        string     `json:"text"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	Outcome     string     `json:"outcome,omitempty"` // "task", "message", "discarded"
}

// BrainDump is the per-date capture list for one user.
type BrainDump struct {
	AggregateBase
	ID     uuid.UUID       `json:"id"`
	UserID uuid.UUID       `json:"user_id"`
	Date   Date            `json:"date"`
	Items  []BrainDumpItem `json:"items"`
}

// NewBrainDump creates the capture list for a date with a deterministic
// identity, so concurrent captures converge on one row.
func NewBrainDump(userID uuid.UUID, date Date) *BrainDump {
	b := &BrainDump{
		ID:     deterministicID("brain-dump:" + userID.String() + ":" + string(date)),
		UserID: userID,
		Date:   date,
	}
	b.markNew()
	return b
}

func (b *BrainDump) AggregateID() uuid.UUID    { return b.ID }
func (b *BrainDump) AggregateType() string     { return "brain_dump" }
func (b *BrainDump) AggregateOwner() uuid.UUID { return b.UserID }

// AddItem appends a captured thought and returns its id.
func (b *BrainDump) AddItem(text string) uuid.UUID {
	item := BrainDumpItem{ID: uuid.New(), Text: text}
	b.Items = append(b.Items, item)
	return item.ID
}

// MarkItemProcessed records the background-processing outcome for an item.
/// Idempotent: re-processing an already processed item is a no-op.
func (b *BrainDump) MarkItemProcessed(itemID uuid.UUID, outcome string, now time.Time) bool {
	for i := range b.Items {
		if b.Items[i].ID != itemID {
			continue
		}
		if b.Items[i].ProcessedAt != nil {
			return false
		}
		at := now.UTC()
		b.Items[i].ProcessedAt = &at
		b.Items[i].Outcome = outcome
		return true
	}
	return false
}
