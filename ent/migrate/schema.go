// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_log_id", Type: field.TypeUUID, Unique: true},
		{Name: "activity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeUUID},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_users_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_user_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[2]},
			},
		},
	}
	// BrainDumpsColumns holds the columns for the "brain_dumps" table.
	BrainDumpsColumns = []*schema.Column{
		{Name: "brain_dump_id", Type: field.TypeUUID, Unique: true},
		{Name: "date", Type: field.TypeString},
		{Name: "items", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// BrainDumpsTable holds the schema information for the "brain_dumps" table.
	BrainDumpsTable = &schema.Table{
		Name:       "brain_dumps",
		Columns:    BrainDumpsColumns,
		PrimaryKey: []*schema.Column{BrainDumpsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "brain_dumps_users_brain_dumps",
				Columns:    []*schema.Column{BrainDumpsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "braindump_user_id_date",
				Unique:  true,
				Columns: []*schema.Column{BrainDumpsColumns[3], BrainDumpsColumns[1]},
			},
		},
	}
	// CalendarEntriesColumns holds the columns for the "calendar_entries" table.
	CalendarEntriesColumns = []*schema.Column{
		{Name: "calendar_entry_id", Type: field.TypeUUID, Unique: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "platform_id", Type: field.TypeString},
		{Name: "calendar_entry_series_id", Type: field.TypeUUID, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "ends_at", Type: field.TypeTime},
		{Name: "frequency", Type: field.TypeString, Nullable: true},
		{Name: "event_category", Type: field.TypeString, Nullable: true},
		{Name: "attendance_status", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// CalendarEntriesTable holds the schema information for the "calendar_entries" table.
	CalendarEntriesTable = &schema.Table{
		Name:       "calendar_entries",
		Columns:    CalendarEntriesColumns,
		PrimaryKey: []*schema.Column{CalendarEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "calendar_entries_users_calendar_entries",
				Columns:    []*schema.Column{CalendarEntriesColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "calendarentry_platform_platform_id",
				Unique:  true,
				Columns: []*schema.Column{CalendarEntriesColumns[1], CalendarEntriesColumns[2]},
			},
			{
				Name:    "calendarentry_user_id_starts_at",
				Unique:  false,
				Columns: []*schema.Column{CalendarEntriesColumns[10], CalendarEntriesColumns[5]},
			},
			{
				Name:    "calendarentry_calendar_entry_series_id",
				Unique:  false,
				Columns: []*schema.Column{CalendarEntriesColumns[3]},
			},
		},
	}
	// CalendarEntrySeriesColumns holds the columns for the "calendar_entry_series" table.
	CalendarEntrySeriesColumns = []*schema.Column{
		{Name: "calendar_entry_series_id", Type: field.TypeUUID, Unique: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "platform_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "frequency", Type: field.TypeString, Nullable: true},
		{Name: "event_category", Type: field.TypeString, Nullable: true},
		{Name: "recurrence", Type: field.TypeString, Nullable: true},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// CalendarEntrySeriesTable holds the schema information for the "calendar_entry_series" table.
	CalendarEntrySeriesTable = &schema.Table{
		Name:       "calendar_entry_series",
		Columns:    CalendarEntrySeriesColumns,
		PrimaryKey: []*schema.Column{CalendarEntrySeriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "calendar_entry_series_users_calendar_entry_series",
				Columns:    []*schema.Column{CalendarEntrySeriesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "calendarentryseries_platform_platform_id",
				Unique:  true,
				Columns: []*schema.Column{CalendarEntrySeriesColumns[1], CalendarEntrySeriesColumns[2]},
			},
			{
				Name:    "calendarentryseries_user_id",
				Unique:  false,
				Columns: []*schema.Column{CalendarEntrySeriesColumns[9]},
			},
		},
	}
	// DaysColumns holds the columns for the "days" table.
	DaysColumns = []*schema.Column{
		{Name: "day_id", Type: field.TypeUUID, Unique: true},
		{Name: "date", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"UNSCHEDULED", "SCHEDULED", "IN_PROGRESS", "COMPLETE"}, Default: "UNSCHEDULED"},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
		{Name: "template_slug", Type: field.TypeString, Nullable: true},
		{Name: "time_blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "high_level_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "alarms", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// DaysTable holds the schema information for the "days" table.
	DaysTable = &schema.Table{
		Name:       "days",
		Columns:    DaysColumns,
		PrimaryKey: []*schema.Column{DaysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "days_users_days",
				Columns:    []*schema.Column{DaysColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "day_user_id_date",
				Unique:  true,
				Columns: []*schema.Column{DaysColumns[10], DaysColumns[1]},
			},
			{
				Name:    "day_status",
				Unique:  false,
				Columns: []*schema.Column{DaysColumns[2]},
			},
		},
	}
	// DayTemplatesColumns holds the columns for the "day_templates" table.
	DayTemplatesColumns = []*schema.Column{
		{Name: "day_template_id", Type: field.TypeUUID, Unique: true},
		{Name: "slug", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeString, Nullable: true},
		{Name: "end_time", Type: field.TypeString, Nullable: true},
		{Name: "routine_definition_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "time_blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "high_level_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// DayTemplatesTable holds the schema information for the "day_templates" table.
	DayTemplatesTable = &schema.Table{
		Name:       "day_templates",
		Columns:    DayTemplatesColumns,
		PrimaryKey: []*schema.Column{DayTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "day_templates_users_day_templates",
				Columns:    []*schema.Column{DayTemplatesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "daytemplate_user_id_slug",
				Unique:  true,
				Columns: []*schema.Column{DayTemplatesColumns[7], DayTemplatesColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[5]},
			},
			{
				Name:    "job_user_id_kind",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[2]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeUUID, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"USER", "ASSISTANT", "SYSTEM"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "triggered_by", Type: field.TypeString, Nullable: true},
		{Name: "llm_run_result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_users_messages",
				Columns:    []*schema.Column{MessagesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[7], MessagesColumns[6]},
			},
		},
	}
	// PushNotificationsColumns holds the columns for the "push_notifications" table.
	PushNotificationsColumns = []*schema.Column{
		{Name: "push_notification_id", Type: field.TypeUUID, Unique: true},
		{Name: "push_subscription_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "skipped", "error"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "triggered_by", Type: field.TypeString},
		{Name: "llm_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PushNotificationsTable holds the schema information for the "push_notifications" table.
	PushNotificationsTable = &schema.Table{
		Name:       "push_notifications",
		Columns:    PushNotificationsColumns,
		PrimaryKey: []*schema.Column{PushNotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "push_notifications_users_push_notifications",
				Columns:    []*schema.Column{PushNotificationsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pushnotification_user_id_triggered_by",
				Unique:  false,
				Columns: []*schema.Column{PushNotificationsColumns[8], PushNotificationsColumns[6]},
			},
			{
				Name:    "pushnotification_user_id_sent_at",
				Unique:  false,
				Columns: []*schema.Column{PushNotificationsColumns[8], PushNotificationsColumns[5]},
			},
		},
	}
	// PushSubscriptionsColumns holds the columns for the "push_subscriptions" table.
	PushSubscriptionsColumns = []*schema.Column{
		{Name: "push_subscription_id", Type: field.TypeUUID, Unique: true},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "keys", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PushSubscriptionsTable holds the schema information for the "push_subscriptions" table.
	PushSubscriptionsTable = &schema.Table{
		Name:       "push_subscriptions",
		Columns:    PushSubscriptionsColumns,
		PrimaryKey: []*schema.Column{PushSubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "push_subscriptions_users_push_subscriptions",
				Columns:    []*schema.Column{PushSubscriptionsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pushsubscription_user_id",
				Unique:  false,
				Columns: []*schema.Column{PushSubscriptionsColumns[4]},
			},
		},
	}
	// RoutinesColumns holds the columns for the "routines" table.
	RoutinesColumns = []*schema.Column{
		{Name: "routine_id", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "schedule", Type: field.TypeJSON},
		{Name: "routine_tasks", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// RoutinesTable holds the schema information for the "routines" table.
	RoutinesTable = &schema.Table{
		Name:       "routines",
		Columns:    RoutinesColumns,
		PrimaryKey: []*schema.Column{RoutinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "routines_users_routines",
				Columns:    []*schema.Column{RoutinesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "routine_user_id",
				Unique:  false,
				Columns: []*schema.Column{RoutinesColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"NOT_STARTED", "READY", "NOT_READY", "PENDING", "PUNTED", "COMPLETE"}, Default: "NOT_STARTED"},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeString, Nullable: true},
		{Name: "frequency", Type: field.TypeString, Nullable: true},
		{Name: "schedule", Type: field.TypeJSON, Nullable: true},
		{Name: "scheduled_date", Type: field.TypeString},
		{Name: "routine_definition_id", Type: field.TypeUUID, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "actions", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "llm_run_result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_users_tasks",
				Columns:    []*schema.Column{TasksColumns[14]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_user_id_scheduled_date",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[14], TasksColumns[7]},
			},
			{
				Name:    "task_user_id_scheduled_date_routine_definition_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[14], TasksColumns[7], TasksColumns[8]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "phone_number", Type: field.TypeString, Nullable: true},
		{Name: "settings", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		BrainDumpsTable,
		CalendarEntriesTable,
		CalendarEntrySeriesTable,
		DaysTable,
		DayTemplatesTable,
		EventsTable,
		JobsTable,
		MessagesTable,
		PushNotificationsTable,
		PushSubscriptionsTable,
		RoutinesTable,
		TasksTable,
		UsersTable,
	}
)

func init() {
	AuditLogsTable.ForeignKeys[0].RefTable = UsersTable
	BrainDumpsTable.ForeignKeys[0].RefTable = UsersTable
	CalendarEntriesTable.ForeignKeys[0].RefTable = UsersTable
	CalendarEntrySeriesTable.ForeignKeys[0].RefTable = UsersTable
	DaysTable.ForeignKeys[0].RefTable = UsersTable
	DayTemplatesTable.ForeignKeys[0].RefTable = UsersTable
	MessagesTable.ForeignKeys[0].RefTable = UsersTable
	PushNotificationsTable.ForeignKeys[0].RefTable = UsersTable
	PushSubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
	RoutinesTable.ForeignKeys[0].RefTable = UsersTable
	TasksTable.ForeignKeys[0].RefTable = UsersTable
}
