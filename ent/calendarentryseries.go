// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/calendarentryseries"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/google/uuid"
)

// CalendarEntrySeries is the model entity for the CalendarEntrySeries schema.
type CalendarEntrySeries struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// PlatformID holds the value of the "platform_id" field.
	PlatformID string `json:"platform_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Frequency holds the value of the "frequency" field.
	Frequency string `json:"frequency,omitempty"`
	// EventCategory holds the value of the "event_category" field.
	EventCategory string `json:"event_category,omitempty"`
	// Upstream recurrence rule, verbatim
	Recurrence string `json:"recurrence,omitempty"`
	// StartsAt holds the value of the "starts_at" field.
	StartsAt time.Time `json:"starts_at,omitempty"`
	// EndsAt holds the value of the "ends_at" field.
	EndsAt *time.Time `json:"ends_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CalendarEntrySeriesQuery when eager-loading is set.
	Edges        CalendarEntrySeriesEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CalendarEntrySeriesEdges holds the relations/edges for other nodes in the graph.
type CalendarEntrySeriesEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CalendarEntrySeriesEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarEntrySeries) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarentryseries.FieldPlatform, calendarentryseries.FieldPlatformID, calendarentryseries.FieldName, calendarentryseries.FieldFrequency, calendarentryseries.FieldEventCategory, calendarentryseries.FieldRecurrence:
			values[i] = new(sql.NullString)
		case calendarentryseries.FieldStartsAt, calendarentryseries.FieldEndsAt:
			values[i] = new(sql.NullTime)
		case calendarentryseries.FieldID, calendarentryseries.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarEntrySeries fields.
func (_m *CalendarEntrySeries) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarentryseries.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case calendarentryseries.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case calendarentryseries.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case calendarentryseries.FieldPlatformID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform_id", values[i])
			} else if value.Valid {
				_m.PlatformID = value.String
			}
		case calendarentryseries.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case calendarentryseries.FieldFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = value.String
			}
		case calendarentryseries.FieldEventCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_category", values[i])
			} else if value.Valid {
				_m.EventCategory = value.String
			}
		case calendarentryseries.FieldRecurrence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence", values[i])
			} else if value.Valid {
				_m.Recurrence = value.String
			}
		case calendarentryseries.FieldStartsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field starts_at", values[i])
			} else if value.Valid {
				_m.StartsAt = value.Time
			}
		case calendarentryseries.FieldEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_at", values[i])
			} else if value.Valid {
				_m.EndsAt = new(time.Time)
				*_m.EndsAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarEntrySeries.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarEntrySeries) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the CalendarEntrySeries entity.
func (_m *CalendarEntrySeries) QueryUser() *UserQuery {
	return NewCalendarEntrySeriesClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this CalendarEntrySeries.
// Note that you need to call CalendarEntrySeries.Unwrap() before calling this method if this CalendarEntrySeries
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarEntrySeries) Update() *CalendarEntrySeriesUpdateOne {
	return NewCalendarEntrySeriesClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarEntrySeries entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarEntrySeries) Unwrap() *CalendarEntrySeries {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalendarEntrySeries is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarEntrySeries) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarEntrySeries(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("platform_id=")
	builder.WriteString(_m.PlatformID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("frequency=")
	builder.WriteString(_m.Frequency)
	builder.WriteString(", ")
	builder.WriteString("event_category=")
	builder.WriteString(_m.EventCategory)
	builder.WriteString(", ")
	builder.WriteString("recurrence=")
	builder.WriteString(_m.Recurrence)
	builder.WriteString(", ")
	builder.WriteString("starts_at=")
	builder.WriteString(_m.StartsAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndsAt; v != nil {
		builder.WriteString("ends_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CalendarEntrySeriesSlice is a parsable slice of CalendarEntrySeries.
type CalendarEntrySeriesSlice []*CalendarEntrySeries
