package slotfinder

import "time"

// Availability describes the business rules a candidate slot must satisfy.
type Availability struct {
	DurationMinutes int
	BufferMinutes   int
	WindowStart     string // "HH:MM", inclusive
	WindowEnd       string // "HH:MM", exclusive
	AllowedWeekdays map[time.Weekday]bool
}

// Slot is a candidate meeting interval [Start, End).
type Slot struct {
	Start time.Time
	End   time.Time
}

// Horizon is the forward-looking date range searched for availability.
type Horizon struct {
	From time.Time
	To   time.Time
}

// Busy is an existing calendar commitment inside the horizon. All-day
// entries carry AllDay=true and are never treated as conflicts.
type Busy struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}
