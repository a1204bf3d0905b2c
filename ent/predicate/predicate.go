// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// BrainDump is the predicate function for braindump builders.
type BrainDump func(*sql.Selector)

// CalendarEntry is the predicate function for calendarentry builders.
type CalendarEntry func(*sql.Selector)

// CalendarEntrySeries is the predicate function for calendarentryseries builders.
type CalendarEntrySeries func(*sql.Selector)

// Day is the predicate function for day builders.
type Day func(*sql.Selector)

// DayTemplate is the predicate function for daytemplate builders.
type DayTemplate func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PushNotification is the predicate function for pushnotification builders.
type PushNotification func(*sql.Selector)

// PushSubscription is the predicate function for pushsubscription builders.
type PushSubscription func(*sql.Selector)

// Routine is the predicate function for routine builders.
type Routine func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
