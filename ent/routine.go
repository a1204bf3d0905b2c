// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/routine"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// Routine is the model entity for the Routine schema.
type Routine struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Schedule holds the value of the "schedule" field.
	Schedule domain.RecurrenceSchedule `json:"schedule,omitempty"`
	// RoutineTasks holds the value of the "routine_tasks" field.
	RoutineTasks []domain.RoutineTask `json:"routine_tasks,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoutineQuery when eager-loading is set.
	Edges        RoutineEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoutineEdges holds the relations/edges for other nodes in the graph.
type RoutineEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoutineEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Routine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case routine.FieldSchedule, routine.FieldRoutineTasks, routine.FieldTags:
			values[i] = new([]byte)
		case routine.FieldName:
			values[i] = new(sql.NullString)
		case routine.FieldID, routine.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Routine fields.
func (_m *Routine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case routine.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case routine.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case routine.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case routine.FieldSchedule:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field schedule", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Schedule); err != nil {
					return fmt.Errorf("unmarshal field schedule: %w", err)
				}
			}
		case routine.FieldRoutineTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field routine_tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RoutineTasks); err != nil {
					return fmt.Errorf("unmarshal field routine_tasks: %w", err)
				}
			}
		case routine.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Routine.
// This includes values selected through modifiers, order, etc.
func (_m *Routine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Routine entity.
func (_m *Routine) QueryUser() *UserQuery {
	return NewRoutineClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this Routine.
// Note that you need to call Routine.Unwrap() before calling this method if this Routine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Routine) Update() *RoutineUpdateOne {
	return NewRoutineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Routine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Routine) Unwrap() *Routine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Routine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Routine) String() string {
	var builder strings.Builder
	builder.WriteString("Routine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("schedule=")
	builder.WriteString(fmt.Sprintf("%v", _m.Schedule))
	builder.WriteString(", ")
	builder.WriteString("routine_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoutineTasks))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteByte(')')
	return builder.String()
}

// Routines is a parsable slice of Routine.
type Routines []*Routine
