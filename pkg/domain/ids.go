package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Namespace for all deterministic (UUID5) identities. External systems can
// precompute an entity id from natural keys as long as they share this
// namespace; it must never change.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8") // uuid.NameSpaceDNS

func deterministicID(name string) uuid.UUID {
	return uuid.NewSHA1(idNamespace, []byte(name))
}

// DayID derives the identity of a Day from its owner and date.
// Two processes computing this agree bitwise.
func DayID(userID uuid.UUID, date Date) uuid.UUID {
	return deterministicID(fmt.Sprintf("day:%s:%s", userID, date))
}

// TemplateID derives the identity of a DayTemplate from its owner and slug.
func TemplateID(userID uuid.UUID, slug string) uuid.UUID {
	return deterministicID(fmt.Sprintf("day-template:%s:%s", userID, slug))
}

// SeriesID derives the identity of a CalendarEntrySeries from the calendar
// platform and the series' platform-native id.
func SeriesID(platform, platformID string) uuid.UUID {
	return deterministicID(fmt.Sprintf("calendar-entry-series:%s:%s", platform, platformID))
}

// EntryID derives the identity of a CalendarEntry from the calendar
// platform and the occurrence's platform-native id.
func EntryID(platform, platformID string) uuid.UUID {
	return deterministicID(fmt.Sprintf("calendar-entry:%s:%s", platform, platformID))
}

// ReminderAlarmID derives the synthetic alarm identity used for
// KIOSK_ALARM calendar-entry reminders. The alarm is never persisted on the
// Day; the deterministic id makes re-entrant evaluations emit the same alarm.
func ReminderAlarmID(entryID uuid.UUID, startsAt string, minutesBefore int) uuid.UUID {
	return deterministicID(fmt.Sprintf("reminder-alarm:%s:%s:%d:KIOSK_ALARM", entryID, startsAt, minutesBefore))
}
