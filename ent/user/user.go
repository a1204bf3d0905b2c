// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// FieldSettings holds the string denoting the settings field in the database.
	FieldSettings = "settings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDays holds the string denoting the days edge name in mutations.
	EdgeDays = "days"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeRoutines holds the string denoting the routines edge name in mutations.
	EdgeRoutines = "routines"
	// EdgeDayTemplates holds the string denoting the day_templates edge name in mutations.
	EdgeDayTemplates = "day_templates"
	// EdgeCalendarEntries holds the string denoting the calendar_entries edge name in mutations.
	EdgeCalendarEntries = "calendar_entries"
	// EdgeCalendarEntrySeries holds the string denoting the calendar_entry_series edge name in mutations.
	EdgeCalendarEntrySeries = "calendar_entry_series"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgePushSubscriptions holds the string denoting the push_subscriptions edge name in mutations.
	EdgePushSubscriptions = "push_subscriptions"
	// EdgePushNotifications holds the string denoting the push_notifications edge name in mutations.
	EdgePushNotifications = "push_notifications"
	// EdgeBrainDumps holds the string denoting the brain_dumps edge name in mutations.
	EdgeBrainDumps = "brain_dumps"
	// EdgeAuditLogs holds the string denoting the audit_logs edge name in mutations.
	EdgeAuditLogs = "audit_logs"
	// DayFieldID holds the string denoting the ID field of the Day.
	DayFieldID = "day_id"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// RoutineFieldID holds the string denoting the ID field of the Routine.
	RoutineFieldID = "routine_id"
	// DayTemplateFieldID holds the string denoting the ID field of the DayTemplate.
	DayTemplateFieldID = "day_template_id"
	// CalendarEntryFieldID holds the string denoting the ID field of the CalendarEntry.
	CalendarEntryFieldID = "calendar_entry_id"
	// CalendarEntrySeriesFieldID holds the string denoting the ID field of the CalendarEntrySeries.
	CalendarEntrySeriesFieldID = "calendar_entry_series_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// PushSubscriptionFieldID holds the string denoting the ID field of the PushSubscription.
	PushSubscriptionFieldID = "push_subscription_id"
	// PushNotificationFieldID holds the string denoting the ID field of the PushNotification.
	PushNotificationFieldID = "push_notification_id"
	// BrainDumpFieldID holds the string denoting the ID field of the BrainDump.
	BrainDumpFieldID = "brain_dump_id"
	// AuditLogFieldID holds the string denoting the ID field of the AuditLog.
	AuditLogFieldID = "audit_log_id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// DaysTable is the table that holds the days relation/edge.
	DaysTable = "days"
	// DaysInverseTable is the table name for the Day entity.
	// It exists in this package in order to avoid circular dependency with the "day" package.
	DaysInverseTable = "days"
	// DaysColumn is the table column denoting the days relation/edge.
	DaysColumn = "user_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "user_id"
	// RoutinesTable is the table that holds the routines relation/edge.
	RoutinesTable = "routines"
	// RoutinesInverseTable is the table name for the Routine entity.
	// It exists in this package in order to avoid circular dependency with the "routine" package.
	RoutinesInverseTable = "routines"
	// RoutinesColumn is the table column denoting the routines relation/edge.
	RoutinesColumn = "user_id"
	// DayTemplatesTable is the table that holds the day_templates relation/edge.
	DayTemplatesTable = "day_templates"
	// DayTemplatesInverseTable is the table name for the DayTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "daytemplate" package.
	DayTemplatesInverseTable = "day_templates"
	// DayTemplatesColumn is the table column denoting the day_templates relation/edge.
	DayTemplatesColumn = "user_id"
	// CalendarEntriesTable is the table that holds the calendar_entries relation/edge.
	CalendarEntriesTable = "calendar_entries"
	// CalendarEntriesInverseTable is the table name for the CalendarEntry entity.
	// It exists in this package in order to avoid circular dependency with the "calendarentry" package.
	CalendarEntriesInverseTable = "calendar_entries"
	// CalendarEntriesColumn is the table column denoting the calendar_entries relation/edge.
	CalendarEntriesColumn = "user_id"
	// CalendarEntrySeriesTable is the table that holds the calendar_entry_series relation/edge.
	CalendarEntrySeriesTable = "calendar_entry_series"
	// CalendarEntrySeriesInverseTable is the table name for the CalendarEntrySeries entity.
	// It exists in this package in order to avoid circular dependency with the "calendarentryseries" package.
	CalendarEntrySeriesInverseTable = "calendar_entry_series"
	// CalendarEntrySeriesColumn is the table column denoting the calendar_entry_series relation/edge.
	CalendarEntrySeriesColumn = "user_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "user_id"
	// PushSubscriptionsTable is the table that holds the push_subscriptions relation/edge.
	PushSubscriptionsTable = "push_subscriptions"
	// PushSubscriptionsInverseTable is the table name for the PushSubscription entity.
	// It exists in this package in order to avoid circular dependency with the "pushsubscription" package.
	PushSubscriptionsInverseTable = "push_subscriptions"
	// PushSubscriptionsColumn is the table column denoting the push_subscriptions relation/edge.
	PushSubscriptionsColumn = "user_id"
	// PushNotificationsTable is the table that holds the push_notifications relation/edge.
	PushNotificationsTable = "push_notifications"
	// PushNotificationsInverseTable is the table name for the PushNotification entity.
	// It exists in this package in order to avoid circular dependency with the "pushnotification" package.
	PushNotificationsInverseTable = "push_notifications"
	// PushNotificationsColumn is the table column denoting the push_notifications relation/edge.
	PushNotificationsColumn = "user_id"
	// BrainDumpsTable is the table that holds the brain_dumps relation/edge.
	BrainDumpsTable = "brain_dumps"
	// BrainDumpsInverseTable is the table name for the BrainDump entity.
	// It exists in this package in order to avoid circular dependency with the "braindump" package.
	BrainDumpsInverseTable = "brain_dumps"
	// BrainDumpsColumn is the table column denoting the brain_dumps relation/edge.
	BrainDumpsColumn = "user_id"
	// AuditLogsTable is the table that holds the audit_logs relation/edge.
	AuditLogsTable = "audit_logs"
	// AuditLogsInverseTable is the table name for the AuditLog entity.
	// It exists in this package in order to avoid circular dependency with the "auditlog" package.
	AuditLogsInverseTable = "audit_logs"
	// AuditLogsColumn is the table column denoting the audit_logs relation/edge.
	AuditLogsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPhoneNumber,
	FieldSettings,
	FieldCreatedAt,
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

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPhoneNumber orders the results by the phone_number field.
func ByPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDaysCount orders the results by days count.
func ByDaysCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDaysStep(), opts...)
	}
}

// ByDays orders the results by days terms.
func ByDays(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDaysStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRoutinesCount orders the results by routines count.
func ByRoutinesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRoutinesStep(), opts...)
	}
}

// ByRoutines orders the results by routines terms.
func ByRoutines(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoutinesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDayTemplatesCount orders the results by day_templates count.
func ByDayTemplatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDayTemplatesStep(), opts...)
	}
}

// ByDayTemplates orders the results by day_templates terms.
func ByDayTemplates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDayTemplatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCalendarEntriesCount orders the results by calendar_entries count.
func ByCalendarEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCalendarEntriesStep(), opts...)
	}
}

// ByCalendarEntries orders the results by calendar_entries terms.
func ByCalendarEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCalendarEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCalendarEntrySeriesCount orders the results by calendar_entry_series count.
func ByCalendarEntrySeriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCalendarEntrySeriesStep(), opts...)
	}
}

// ByCalendarEntrySeries orders the results by calendar_entry_series terms.
func ByCalendarEntrySeries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCalendarEntrySeriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPushSubscriptionsCount orders the results by push_subscriptions count.
func ByPushSubscriptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPushSubscriptionsStep(), opts...)
	}
}

// ByPushSubscriptions orders the results by push_subscriptions terms.
func ByPushSubscriptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPushSubscriptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPushNotificationsCount orders the results by push_notifications count.
func ByPushNotificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPushNotificationsStep(), opts...)
	}
}

// ByPushNotifications orders the results by push_notifications terms.
func ByPushNotifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPushNotificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBrainDumpsCount orders the results by brain_dumps count.
func ByBrainDumpsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBrainDumpsStep(), opts...)
	}
}

// ByBrainDumps orders the results by brain_dumps terms.
func ByBrainDumps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBrainDumpsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditLogsCount orders the results by audit_logs count.
func ByAuditLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditLogsStep(), opts...)
	}
}

// ByAuditLogs orders the results by audit_logs terms.
func ByAuditLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDaysStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DaysInverseTable, DayFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DaysTable, DaysColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newRoutinesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoutinesInverseTable, RoutineFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RoutinesTable, RoutinesColumn),
	)
}
func newDayTemplatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DayTemplatesInverseTable, DayTemplateFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DayTemplatesTable, DayTemplatesColumn),
	)
}
func newCalendarEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CalendarEntriesInverseTable, CalendarEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CalendarEntriesTable, CalendarEntriesColumn),
	)
}
func newCalendarEntrySeriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CalendarEntrySeriesInverseTable, CalendarEntrySeriesFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CalendarEntrySeriesTable, CalendarEntrySeriesColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newPushSubscriptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PushSubscriptionsInverseTable, PushSubscriptionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PushSubscriptionsTable, PushSubscriptionsColumn),
	)
}
func newPushNotificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PushNotificationsInverseTable, PushNotificationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PushNotificationsTable, PushNotificationsColumn),
	)
}
func newBrainDumpsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BrainDumpsInverseTable, BrainDumpFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BrainDumpsTable, BrainDumpsColumn),
	)
}
func newAuditLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditLogsInverseTable, AuditLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
	)
}
