// Code generated by ent, DO NOT EDIT.

package calendarentry

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the calendarentry type in the database.
	Label = "calendar_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "calendar_entry_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldPlatformID holds the string denoting the platform_id field in the database.
	FieldPlatformID = "platform_id"
	// FieldCalendarEntrySeriesID holds the string denoting the calendar_entry_series_id field in the database.
	FieldCalendarEntrySeriesID = "calendar_entry_series_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStartsAt holds the string denoting the starts_at field in the database.
	FieldStartsAt = "starts_at"
	// FieldEndsAt holds the string denoting the ends_at field in the database.
	FieldEndsAt = "ends_at"
	// FieldFrequency holds the string denoting the frequency field in the database.
	FieldFrequency = "frequency"
	// FieldEventCategory holds the string denoting the event_category field in the database.
	FieldEventCategory = "event_category"
	// FieldAttendanceStatus holds the string denoting the attendance_status field in the database.
	FieldAttendanceStatus = "attendance_status"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// Table holds the table name of the calendarentry in the database.
	Table = "calendar_entries"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "calendar_entries"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for calendarentry fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPlatform,
	FieldPlatformID,
	FieldCalendarEntrySeriesID,
	FieldName,
	FieldStartsAt,
	FieldEndsAt,
	FieldFrequency,
	FieldEventCategory,
	FieldAttendanceStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the CalendarEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByPlatformID orders the results by the platform_id field.
func ByPlatformID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformID, opts...).ToFunc()
}

// ByCalendarEntrySeriesID orders the results by the calendar_entry_series_id field.
func ByCalendarEntrySeriesID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalendarEntrySeriesID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStartsAt orders the results by the starts_at field.
func ByStartsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartsAt, opts...).ToFunc()
}

// ByEndsAt orders the results by the ends_at field.
func ByEndsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndsAt, opts...).ToFunc()
}

// ByFrequency orders the results by the frequency field.
func ByFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequency, opts...).ToFunc()
}

// ByEventCategory orders the results by the event_category field.
func ByEventCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventCategory, opts...).ToFunc()
}

// ByAttendanceStatus orders the results by the attendance_status field.
func ByAttendanceStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttendanceStatus, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
