// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/pushsubscription"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/google/uuid"
)

// PushSubscription is the model entity for the PushSubscription schema.
type PushSubscription struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Endpoint holds the value of the "endpoint" field.
	Endpoint string `json:"endpoint,omitempty"`
	// Keys holds the value of the "keys" field.
	Keys map[string]string `json:"keys,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PushSubscriptionQuery when eager-loading is set.
	Edges        PushSubscriptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PushSubscriptionEdges holds the relations/edges for other nodes in the graph.
type PushSubscriptionEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PushSubscriptionEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PushSubscription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pushsubscription.FieldKeys:
			values[i] = new([]byte)
		case pushsubscription.FieldEndpoint:
			values[i] = new(sql.NullString)
		case pushsubscription.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case pushsubscription.FieldID, pushsubscription.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PushSubscription fields.
func (_m *PushSubscription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pushsubscription.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pushsubscription.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case pushsubscription.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case pushsubscription.FieldKeys:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field keys", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Keys); err != nil {
					return fmt.Errorf("unmarshal field keys: %w", err)
				}
			}
		case pushsubscription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PushSubscription.
// This includes values selected through modifiers, order, etc.
func (_m *PushSubscription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the PushSubscription entity.
func (_m *PushSubscription) QueryUser() *UserQuery {
	return NewPushSubscriptionClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this PushSubscription.
// Note that you need to call PushSubscription.Unwrap() before calling this method if this PushSubscription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PushSubscription) Update() *PushSubscriptionUpdateOne {
	return NewPushSubscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PushSubscription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PushSubscription) Unwrap() *PushSubscription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PushSubscription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PushSubscription) String() string {
	var builder strings.Builder
	builder.WriteString("PushSubscription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("keys=")
	builder.WriteString(fmt.Sprintf("%v", _m.Keys))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PushSubscriptions is a parsable slice of PushSubscription.
type PushSubscriptions []*PushSubscription
