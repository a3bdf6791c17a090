package slotfinder

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultStepMinutes is the spacing between candidate start times. The step
// stays fixed regardless of meeting duration unless overridden in New.
const DefaultStepMinutes = 15

// DefaultHorizonDays is the length of the default search horizon.
const DefaultHorizonDays = 7

// Finder enumerates conflict-free candidate slots inside a horizon.
type Finder struct {
	location    *time.Location
	stepMinutes int
}

// New creates a Finder for the given IANA timezone. stepMinutes <= 0 falls
// back to DefaultStepMinutes.
func New(timezone string, stepMinutes int) (*Finder, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	return &Finder{location: loc, stepMinutes: stepMinutes}, nil
}

// Location returns the finder's timezone.
func (f *Finder) Location() *time.Location {
	return f.location
}

// DefaultHorizon returns the standard search horizon: the day after `after`
// at 00:00 local through DefaultHorizonDays later. The horizon always starts
// tomorrow relative to the reference date, never on the reference date itself.
func (f *Finder) DefaultHorizon(after time.Time) Horizon {
	local := after.In(f.location)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, f.location).
		AddDate(0, 0, 1)
	return Horizon{From: from, To: from.AddDate(0, 0, DefaultHorizonDays)}
}

// FindFirst returns the earliest conflict-free slot in the horizon, or
// ErrNoAvailability when the horizon is exhausted.
func (f *Finder) FindFirst(avail Availability, horizon Horizon, busy []Busy) (Slot, error) {
	slots, err := f.find(avail, horizon, busy, 1)
	if err != nil {
		return Slot{}, err
	}
	if len(slots) == 0 {
		return Slot{}, ErrNoAvailability
	}
	return slots[0], nil
}

// FindN collects up to n conflict-free slots scanning the horizon forward.
// n <= 0 yields an empty result without error.
func (f *Finder) FindN(avail Availability, horizon Horizon, busy []Busy, n int) ([]Slot, error) {
	if n <= 0 {
		return []Slot{}, nil
	}
	return f.find(avail, horizon, busy, n)
}

func (f *Finder) find(avail Availability, horizon Horizon, busy []Busy, limit int) ([]Slot, error) {
	startHour, startMin, err := parseClock(avail.WindowStart)
	if err != nil {
		return nil, err
	}
	endHour, endMin, err := parseClock(avail.WindowEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(avail.DurationMinutes) * time.Minute
	buffer := time.Duration(avail.BufferMinutes) * time.Minute
	step := time.Duration(f.stepMinutes) * time.Minute

	from := horizon.From.In(f.location)
	to := horizon.To.In(f.location)

	slots := make([]Slot, 0, limit)

	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, f.location)
	for ; day.Before(to); day = day.AddDate(0, 0, 1) {
		if len(avail.AllowedWeekdays) > 0 && !avail.AllowedWeekdays[day.Weekday()] {
			continue
		}

		windowStart := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, f.location)
		windowEnd := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, f.location)

		for candidate := windowStart; ; candidate = candidate.Add(step) {
			candidateEnd := candidate.Add(duration)
			if candidateEnd.After(windowEnd) {
				break
			}
			if candidate.Before(from) {
				continue
			}
			if conflicts(candidate, candidateEnd, busy, buffer) {
				continue
			}

			slots = append(slots, Slot{Start: candidate, End: candidateEnd})
			if len(slots) == limit {
				return slots, nil
			}
		}
	}

	return slots, nil
}

// conflicts reports whether [start, end) intersects any timed busy interval
// expanded by buffer on both sides. All-day entries never conflict.
func conflicts(start, end time.Time, busy []Busy, buffer time.Duration) bool {
	for _, b := range busy {
		if b.AllDay {
			continue
		}
		if start.Before(b.End.Add(buffer)) && end.After(b.Start.Add(-buffer)) {
			return true
		}
	}
	return false
}

// parseClock parses "HH:MM" into hour and minute components.
func parseClock(clock string) (int, int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWindow, clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWindow, clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWindow, clock)
	}
	return hour, minute, nil
}
