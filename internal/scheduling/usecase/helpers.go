package usecase

import (
	"strings"
	"time"

	"meeting-scheduler/pkg/gcalendar"
	"meeting-scheduler/pkg/slotfinder"
)

// renderTemplate substitutes {name} in a meeting template.
func renderTemplate(template, name string) string {
	return strings.ReplaceAll(template, "{name}", name)
}

// busyFromEvents converts fetched calendar events into busy intervals for
// the slot finder. All-day events stay marked so the finder ignores them.
func busyFromEvents(events []gcalendar.Event) []slotfinder.Busy {
	busy := make([]slotfinder.Busy, 0, len(events))
	for _, ev := range events {
		busy = append(busy, slotfinder.Busy{
			Start:  ev.StartTime,
			End:    ev.EndTime,
			AllDay: ev.AllDay,
		})
	}
	return busy
}

// primaryCalendarID picks the primary calendar from the account's list,
// falling back to the "primary" alias when the list does not mark one.
func primaryCalendarID(calendars []gcalendar.Calendar) string {
	for _, cal := range calendars {
		if cal.Primary {
			return cal.ID
		}
	}
	return "primary"
}

// horizonAnchor resolves the reference date the search horizon hangs off.
func horizonAnchor(preferred *time.Time) time.Time {
	if preferred != nil {
		return *preferred
	}
	return time.Now()
}
