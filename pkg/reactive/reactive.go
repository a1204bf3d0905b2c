// Package reactive holds the cron-driven per-user evaluators: day alarms,
// calendar-entry reminders, smart and kiosk notifications, the morning
// overview and the new-day emitter. Every evaluator follows the same
// shape: inspect current state, deduplicate against recent records, then
// write through the unit of work or a command service.
package reactive

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

// userToday resolves "today" in the user's timezone.
func userToday(user *domain.User, now time.Time) (domain.Date, *time.Location) {
	loc := user.Settings.Location()
	return domain.DateOf(now, loc), loc
}

// parseClock parses an "HH:MM" string into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return h*60 + m, nil
}
