// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// PhoneNumber holds the value of the "phone_number" field.
	PhoneNumber string `json:"phone_number,omitempty"`
	// Timezone, LLM provider, reminder rules, template defaults
	Settings domain.UserSettings `json:"settings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Days holds the value of the days edge.
	Days []*Day `json:"days,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Routines holds the value of the routines edge.
	Routines []*Routine `json:"routines,omitempty"`
	// DayTemplates holds the value of the day_templates edge.
	DayTemplates []*DayTemplate `json:"day_templates,omitempty"`
	// CalendarEntries holds the value of the calendar_entries edge.
	CalendarEntries []*CalendarEntry `json:"calendar_entries,omitempty"`
	// CalendarEntrySeries holds the value of the calendar_entry_series edge.
	CalendarEntrySeries []*CalendarEntrySeries `json:"calendar_entry_series,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// PushSubscriptions holds the value of the push_subscriptions edge.
	PushSubscriptions []*PushSubscription `json:"push_subscriptions,omitempty"`
	// PushNotifications holds the value of the push_notifications edge.
	PushNotifications []*PushNotification `json:"push_notifications,omitempty"`
	// BrainDumps holds the value of the brain_dumps edge.
	BrainDumps []*BrainDump `json:"brain_dumps,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [11]bool
}

// DaysOrErr returns the Days value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) DaysOrErr() ([]*Day, error) {
	if e.loadedTypes[0] {
		return e.Days, nil
	}
	return nil, &NotLoadedError{edge: "days"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[1] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// RoutinesOrErr returns the Routines value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) RoutinesOrErr() ([]*Routine, error) {
	if e.loadedTypes[2] {
		return e.Routines, nil
	}
	return nil, &NotLoadedError{edge: "routines"}
}

// DayTemplatesOrErr returns the DayTemplates value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) DayTemplatesOrErr() ([]*DayTemplate, error) {
	if e.loadedTypes[3] {
		return e.DayTemplates, nil
	}
	return nil, &NotLoadedError{edge: "day_templates"}
}

// CalendarEntriesOrErr returns the CalendarEntries value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) CalendarEntriesOrErr() ([]*CalendarEntry, error) {
	if e.loadedTypes[4] {
		return e.CalendarEntries, nil
	}
	return nil, &NotLoadedError{edge: "calendar_entries"}
}

// CalendarEntrySeriesOrErr returns the CalendarEntrySeries value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) CalendarEntrySeriesOrErr() ([]*CalendarEntrySeries, error) {
	if e.loadedTypes[5] {
		return e.CalendarEntrySeries, nil
	}
	return nil, &NotLoadedError{edge: "calendar_entry_series"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[6] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// PushSubscriptionsOrErr returns the PushSubscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) PushSubscriptionsOrErr() ([]*PushSubscription, error) {
	if e.loadedTypes[7] {
		return e.PushSubscriptions, nil
	}
	return nil, &NotLoadedError{edge: "push_subscriptions"}
}

// PushNotificationsOrErr returns the PushNotifications value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) PushNotificationsOrErr() ([]*PushNotification, error) {
	if e.loadedTypes[8] {
		return e.PushNotifications, nil
	}
	return nil, &NotLoadedError{edge: "push_notifications"}
}

// BrainDumpsOrErr returns the BrainDumps value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) BrainDumpsOrErr() ([]*BrainDump, error) {
	if e.loadedTypes[9] {
		return e.BrainDumps, nil
	}
	return nil, &NotLoadedError{edge: "brain_dumps"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[10] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldSettings:
			values[i] = new([]byte)
		case user.FieldName, user.FieldPhoneNumber:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case user.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case user.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case user.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				_m.PhoneNumber = value.String
			}
		case user.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case user.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDays queries the "days" edge of the User entity.
func (_m *User) QueryDays() *DayQuery {
	return NewUserClient(_m.config).QueryDays(_m)
}

// QueryTasks queries the "tasks" edge of the User entity.
func (_m *User) QueryTasks() *TaskQuery {
	return NewUserClient(_m.config).QueryTasks(_m)
}

// QueryRoutines queries the "routines" edge of the User entity.
func (_m *User) QueryRoutines() *RoutineQuery {
	return NewUserClient(_m.config).QueryRoutines(_m)
}

// QueryDayTemplates queries the "day_templates" edge of the User entity.
func (_m *User) QueryDayTemplates() *DayTemplateQuery {
	return NewUserClient(_m.config).QueryDayTemplates(_m)
}

// QueryCalendarEntries queries the "calendar_entries" edge of the User entity.
func (_m *User) QueryCalendarEntries() *CalendarEntryQuery {
	return NewUserClient(_m.config).QueryCalendarEntries(_m)
}

// QueryCalendarEntrySeries queries the "calendar_entry_series" edge of the User entity.
func (_m *User) QueryCalendarEntrySeries() *CalendarEntrySeriesQuery {
	return NewUserClient(_m.config).QueryCalendarEntrySeries(_m)
}

// QueryMessages queries the "messages" edge of the User entity.
func (_m *User) QueryMessages() *MessageQuery {
	return NewUserClient(_m.config).QueryMessages(_m)
}

// QueryPushSubscriptions queries the "push_subscriptions" edge of the User entity.
func (_m *User) QueryPushSubscriptions() *PushSubscriptionQuery {
	return NewUserClient(_m.config).QueryPushSubscriptions(_m)
}

// QueryPushNotifications queries the "push_notifications" edge of the User entity.
func (_m *User) QueryPushNotifications() *PushNotificationQuery {
	return NewUserClient(_m.config).QueryPushNotifications(_m)
}

// QueryBrainDumps queries the "brain_dumps" edge of the User entity.
func (_m *User) QueryBrainDumps() *BrainDumpQuery {
	return NewUserClient(_m.config).QueryBrainDumps(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the User entity.
func (_m *User) QueryAuditLogs() *AuditLogQuery {
	return NewUserClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("phone_number=")
	builder.WriteString(_m.PhoneNumber)
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
