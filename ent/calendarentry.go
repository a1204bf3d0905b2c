// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/calendarentry"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/google/uuid"
)

// CalendarEntry is the model entity for the CalendarEntry schema.
type CalendarEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// PlatformID holds the value of the "platform_id" field.
	PlatformID string `json:"platform_id,omitempty"`
	// CalendarEntrySeriesID holds the value of the "calendar_entry_series_id" field.
	CalendarEntrySeriesID *uuid.UUID `json:"calendar_entry_series_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// StartsAt holds the value of the "starts_at" field.
	StartsAt time.Time `json:"starts_at,omitempty"`
	// EndsAt holds the value of the "ends_at" field.
	EndsAt time.Time `json:"ends_at,omitempty"`
	// Inherited from the series
	Frequency string `json:"frequency,omitempty"`
	// EventCategory holds the value of the "event_category" field.
	EventCategory string `json:"event_category,omitempty"`
	// AttendanceStatus holds the value of the "attendance_status" field.
	AttendanceStatus string `json:"attendance_status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CalendarEntryQuery when eager-loading is set.
	Edges        CalendarEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CalendarEntryEdges holds the relations/edges for other nodes in the graph.
type CalendarEntryEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CalendarEntryEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarentry.FieldCalendarEntrySeriesID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case calendarentry.FieldPlatform, calendarentry.FieldPlatformID, calendarentry.FieldName, calendarentry.FieldFrequency, calendarentry.FieldEventCategory, calendarentry.FieldAttendanceStatus:
			values[i] = new(sql.NullString)
		case calendarentry.FieldStartsAt, calendarentry.FieldEndsAt:
			values[i] = new(sql.NullTime)
		case calendarentry.FieldID, calendarentry.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarEntry fields.
func (_m *CalendarEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case calendarentry.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case calendarentry.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case calendarentry.FieldPlatformID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform_id", values[i])
			} else if value.Valid {
				_m.PlatformID = value.String
			}
		case calendarentry.FieldCalendarEntrySeriesID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_entry_series_id", values[i])
			} else if value.Valid {
				_m.CalendarEntrySeriesID = new(uuid.UUID)
				*_m.CalendarEntrySeriesID = *value.S.(*uuid.UUID)
			}
		case calendarentry.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case calendarentry.FieldStartsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field starts_at", values[i])
			} else if value.Valid {
				_m.StartsAt = value.Time
			}
		case calendarentry.FieldEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_at", values[i])
			} else if value.Valid {
				_m.EndsAt = value.Time
			}
		case calendarentry.FieldFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = value.String
			}
		case calendarentry.FieldEventCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_category", values[i])
			} else if value.Valid {
				_m.EventCategory = value.String
			}
		case calendarentry.FieldAttendanceStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attendance_status", values[i])
			} else if value.Valid {
				_m.AttendanceStatus = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the CalendarEntry entity.
func (_m *CalendarEntry) QueryUser() *UserQuery {
	return NewCalendarEntryClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this CalendarEntry.
// Note that you need to call CalendarEntry.Unwrap() before calling this method if this CalendarEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarEntry) Update() *CalendarEntryUpdateOne {
	return NewCalendarEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarEntry) Unwrap() *CalendarEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalendarEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarEntry(")
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
	if v := _m.CalendarEntrySeriesID; v != nil {
		builder.WriteString("calendar_entry_series_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("starts_at=")
	builder.WriteString(_m.StartsAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ends_at=")
	builder.WriteString(_m.EndsAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("frequency=")
	builder.WriteString(_m.Frequency)
	builder.WriteString(", ")
	builder.WriteString("event_category=")
	builder.WriteString(_m.EventCategory)
	builder.WriteString(", ")
	builder.WriteString("attendance_status=")
	builder.WriteString(_m.AttendanceStatus)
	builder.WriteByte(')')
	return builder.String()
}

// CalendarEntries is a parsable slice of CalendarEntry.
type CalendarEntries []*CalendarEntry
