// Code generated by ent, DO NOT EDIT.

package day

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the day type in the database.
	Label = "day"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "day_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldTemplateSlug holds the string denoting the template_slug field in the database.
	FieldTemplateSlug = "template_slug"
	// FieldTimeBlocks holds the string denoting the time_blocks field in the database.
	FieldTimeBlocks = "time_blocks"
	// FieldHighLevelPlan holds the string denoting the high_level_plan field in the database.
	FieldHighLevelPlan = "high_level_plan"
	// FieldAlarms holds the string denoting the alarms field in the database.
	FieldAlarms = "alarms"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// Table holds the table name of the day in the database.
	Table = "days"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "days"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for day fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDate,
	FieldStatus,
	FieldTemplateID,
	FieldTemplateSlug,
	FieldTimeBlocks,
	FieldHighLevelPlan,
	FieldAlarms,
	FieldTags,
	FieldScheduledAt,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusUNSCHEDULED is the default value of the Status enum.
const DefaultStatus = StatusUNSCHEDULED

// Status values.
const (
	StatusUNSCHEDULED Status = "UNSCHEDULED"
	StatusSCHEDULED   Status = "SCHEDULED"
	StatusIN_PROGRESS Status = "IN_PROGRESS"
	StatusCOMPLETE    Status = "COMPLETE"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusUNSCHEDULED, StatusSCHEDULED, StatusIN_PROGRESS, StatusCOMPLETE:
		return nil
	default:
		return fmt.Errorf("day: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Day queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByTemplateSlug orders the results by the template_slug field.
func ByTemplateSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateSlug, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
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
