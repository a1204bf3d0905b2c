package domain

// DayStatus is the lifecycle state of a Day aggregate.
// Transitions: UNSCHEDULED → SCHEDULED → IN_PROGRESS → COMPLETE.
type DayStatus string

// Day status constants.
const (
	DayUnscheduled DayStatus = "UNSCHEDULED"
	DayScheduled   DayStatus = "SCHEDULED"
	DayInProgress  DayStatus = "IN_PROGRESS"
	DayComplete    DayStatus = "COMPLETE"
)

// TaskStatus is the lifecycle state of a Task.
type TaskStatus string

// Task status constants.
const (
	TaskNotStarted TaskStatus = "NOT_STARTED"
	TaskReady      TaskStatus = "READY"
	TaskNotReady   TaskStatus = "NOT_READY"
	TaskPending    TaskStatus = "PENDING"
	TaskPunted     TaskStatus = "PUNTED"
	TaskComplete   TaskStatus = "COMPLETE"
)

// TimingType classifies how a task's schedule window binds it to the day.
type TimingType string

// Timing type constants.
const (
	TimingDeadline   TimingType = "DEADLINE"
	TimingFixedTime  TimingType = "FIXED_TIME"
	TimingTimeWindow TimingType = "TIME_WINDOW"
	TimingFlexible   TimingType = "FLEXIBLE"
)

// AlarmType selects the transport/intensity for a triggered alarm.
type AlarmType string

// Alarm type constants.
const (
	AlarmGentle AlarmType = "GENTLE"
	AlarmFirm   AlarmType = "FIRM"
	AlarmLoud   AlarmType = "LOUD"
	AlarmSiren  AlarmType = "SIREN"
	AlarmKiosk  AlarmType = "KIOSK"
	AlarmURL    AlarmType = "URL"
)

// Frequency describes how often a routine or calendar series recurs.
type Frequency string

// Frequency constants.
const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyOnce    Frequency = "ONCE"
)

// MessageRole is the conversational role of a Message.
type MessageRole string

// Message role constants.
const (
	RoleUser      MessageRole = "USER"
	RoleAssistant MessageRole = "ASSISTANT"
	RoleSystem    MessageRole = "SYSTEM"
)

// NotificationChannel is a delivery channel for calendar-entry reminders.
type NotificationChannel string

// Notification channel constants.
const (
	ChannelPush       NotificationChannel = "PUSH"
	ChannelText       NotificationChannel = "TEXT"
	ChannelKioskAlarm NotificationChannel = "KIOSK_ALARM"
)

// PushStatus records the outcome of a push notification attempt.
type PushStatus string

// Push status constants.
const (
	PushSuccess PushStatus = "success"
	PushSkipped PushStatus = "skipped"
	PushError   PushStatus = "error"
)

// AttendanceStatus is the user's RSVP state for a calendar entry.
type AttendanceStatus string

// Attendance status constants.
const (
	AttendanceGoing    AttendanceStatus = "GOING"
	AttendanceNotGoing AttendanceStatus = "NOT_GOING"
	AttendanceMaybe    AttendanceStatus = "MAYBE"
)

// ChangeKind classifies an entity mutation for incremental sync.
type ChangeKind string

// Change kind constants.
const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)
