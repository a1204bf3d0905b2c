// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/day"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// Day is the model entity for the Day schema.
type Day struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// ISO calendar date, user-local
	Date string `json:"date,omitempty"`
	// Status holds the value of the "status" field.
	Status day.Status `json:"status,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
	// TemplateSlug holds the value of the "template_slug" field.
	TemplateSlug string `json:"template_slug,omitempty"`
	// TimeBlocks holds the value of the "time_blocks" field.
	TimeBlocks []domain.TimeBlock `json:"time_blocks,omitempty"`
	// HighLevelPlan holds the value of the "high_level_plan" field.
	HighLevelPlan domain.HighLevelPlan `json:"high_level_plan,omitempty"`
	// Alarms holds the value of the "alarms" field.
	Alarms []domain.Alarm `json:"alarms,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// ScheduledAt holds the value of the "scheduled_at" field.
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DayQuery when eager-loading is set.
	Edges        DayEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DayEdges holds the relations/edges for other nodes in the graph.
type DayEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DayEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Day) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case day.FieldTemplateID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case day.FieldTimeBlocks, day.FieldHighLevelPlan, day.FieldAlarms, day.FieldTags:
			values[i] = new([]byte)
		case day.FieldDate, day.FieldStatus, day.FieldTemplateSlug:
			values[i] = new(sql.NullString)
		case day.FieldScheduledAt:
			values[i] = new(sql.NullTime)
		case day.FieldID, day.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Day fields.
func (_m *Day) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case day.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case day.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case day.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case day.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = day.Status(value.String)
			}
		case day.FieldTemplateID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = new(uuid.UUID)
				*_m.TemplateID = *value.S.(*uuid.UUID)
			}
		case day.FieldTemplateSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_slug", values[i])
			} else if value.Valid {
				_m.TemplateSlug = value.String
			}
		case day.FieldTimeBlocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field time_blocks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TimeBlocks); err != nil {
					return fmt.Errorf("unmarshal field time_blocks: %w", err)
				}
			}
		case day.FieldHighLevelPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field high_level_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HighLevelPlan); err != nil {
					return fmt.Errorf("unmarshal field high_level_plan: %w", err)
				}
			}
		case day.FieldAlarms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alarms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Alarms); err != nil {
					return fmt.Errorf("unmarshal field alarms: %w", err)
				}
			}
		case day.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case day.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = new(time.Time)
				*_m.ScheduledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Day.
// This includes values selected through modifiers, order, etc.
func (_m *Day) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Day entity.
func (_m *Day) QueryUser() *UserQuery {
	return NewDayClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this Day.
// Note that you need to call Day.Unwrap() before calling this method if this Day
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Day) Update() *DayUpdateOne {
	return NewDayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Day entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Day) Unwrap() *Day {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Day is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Day) String() string {
	var builder strings.Builder
	builder.WriteString("Day(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.TemplateID; v != nil {
		builder.WriteString("template_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("template_slug=")
	builder.WriteString(_m.TemplateSlug)
	builder.WriteString(", ")
	builder.WriteString("time_blocks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeBlocks))
	builder.WriteString(", ")
	builder.WriteString("high_level_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighLevelPlan))
	builder.WriteString(", ")
	builder.WriteString("alarms=")
	builder.WriteString(fmt.Sprintf("%v", _m.Alarms))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	if v := _m.ScheduledAt; v != nil {
		builder.WriteString("scheduled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Days is a parsable slice of Day.
type Days []*Day
