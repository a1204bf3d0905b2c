// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/pushnotification"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// PushNotification is the model entity for the PushNotification schema.
type PushNotification struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// PushSubscriptionIds holds the value of the "push_subscription_ids" field.
	PushSubscriptionIds []uuid.UUID `json:"push_subscription_ids,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Status holds the value of the "status" field.
	Status pushnotification.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt time.Time `json:"sent_at,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy string `json:"triggered_by,omitempty"`
	// LlmSnapshot holds the value of the "llm_snapshot" field.
	LlmSnapshot *domain.LLMRunResult `json:"llm_snapshot,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PushNotificationQuery when eager-loading is set.
	Edges        PushNotificationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PushNotificationEdges holds the relations/edges for other nodes in the graph.
type PushNotificationEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PushNotificationEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PushNotification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pushnotification.FieldPushSubscriptionIds, pushnotification.FieldLlmSnapshot:
			values[i] = new([]byte)
		case pushnotification.FieldContent, pushnotification.FieldStatus, pushnotification.FieldErrorMessage, pushnotification.FieldTriggeredBy:
			values[i] = new(sql.NullString)
		case pushnotification.FieldSentAt:
			values[i] = new(sql.NullTime)
		case pushnotification.FieldID, pushnotification.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PushNotification fields.
func (_m *PushNotification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pushnotification.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pushnotification.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case pushnotification.FieldPushSubscriptionIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field push_subscription_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PushSubscriptionIds); err != nil {
					return fmt.Errorf("unmarshal field push_subscription_ids: %w", err)
				}
			}
		case pushnotification.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case pushnotification.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pushnotification.Status(value.String)
			}
		case pushnotification.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case pushnotification.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = value.Time
			}
		case pushnotification.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = value.String
			}
		case pushnotification.FieldLlmSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LlmSnapshot); err != nil {
					return fmt.Errorf("unmarshal field llm_snapshot: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PushNotification.
// This includes values selected through modifiers, order, etc.
func (_m *PushNotification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the PushNotification entity.
func (_m *PushNotification) QueryUser() *UserQuery {
	return NewPushNotificationClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this PushNotification.
// Note that you need to call PushNotification.Unwrap() before calling this method if this PushNotification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PushNotification) Update() *PushNotificationUpdateOne {
	return NewPushNotificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PushNotification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PushNotification) Unwrap() *PushNotification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PushNotification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PushNotification) String() string {
	var builder strings.Builder
	builder.WriteString("PushNotification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("push_subscription_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushSubscriptionIds))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("sent_at=")
	builder.WriteString(_m.SentAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(_m.TriggeredBy)
	builder.WriteString(", ")
	builder.WriteString("llm_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmSnapshot))
	builder.WriteByte(')')
	return builder.String()
}

// PushNotifications is a parsable slice of PushNotification.
type PushNotifications []*PushNotification
