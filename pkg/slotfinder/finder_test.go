package slotfinder_test

import (
	"errors"
	"testing"
	"time"

	"meeting-scheduler/pkg/slotfinder"
)

func mustFinder(t *testing.T, tz string, step int) *slotfinder.Finder {
	t.Helper()
	f, err := slotfinder.New(tz, step)
	if err != nil {
		t.Fatalf("unexpected error creating finder: %v", err)
	}
	return f
}

func weekdays(days ...time.Weekday) map[time.Weekday]bool {
	m := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		m[d] = true
	}
	return m
}

func TestNew(t *testing.T) {
	if _, err := slotfinder.New("Europe/Berlin", 0); err != nil {
		t.Fatalf("unexpected error for valid timezone: %v", err)
	}
	if _, err := slotfinder.New("Invalid/Timezone", 15); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestDefaultHorizon(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	// Monday 2024-06-03 14:45 UTC. The horizon must start the next day at
	// midnight, never on the reference day itself.
	ref := time.Date(2024, 6, 3, 14, 45, 0, 0, time.UTC)
	h := f.DefaultHorizon(ref)

	wantFrom := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	if !h.From.Equal(wantFrom) {
		t.Errorf("horizon from = %v, want %v", h.From, wantFrom)
	}
	if !h.To.Equal(wantFrom.AddDate(0, 0, slotfinder.DefaultHorizonDays)) {
		t.Errorf("horizon to = %v, want %v", h.To, wantFrom.AddDate(0, 0, slotfinder.DefaultHorizonDays))
	}
}

func TestFindFirstEmptyCalendar(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 30,
		WindowStart:     "09:00",
		WindowEnd:       "17:00",
		AllowedWeekdays: weekdays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
	}
	// Tuesday through the following Tuesday.
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	}

	slot, err := f.FindFirst(avail, horizon, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC)
	if !slot.Start.Equal(wantStart) {
		t.Errorf("slot start = %v, want %v", slot.Start, wantStart)
	}
	if !slot.End.Equal(wantStart.Add(30 * time.Minute)) {
		t.Errorf("slot end = %v, want %v", slot.End, wantStart.Add(30*time.Minute))
	}
}

func TestFindFirstSkipsBusyWithBuffer(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 30,
		BufferMinutes:   15,
		WindowStart:     "09:00",
		WindowEnd:       "12:00",
		AllowedWeekdays: weekdays(time.Tuesday),
	}
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	busy := []slotfinder.Busy{
		{
			Start: time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC),
		},
	}

	slot, err := f.FindFirst(avail, horizon, busy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10:00 is still inside the 15 minute buffer after the busy block, so the
	// first clean candidate is 10:15.
	wantStart := time.Date(2024, 6, 4, 10, 15, 0, 0, time.UTC)
	if !slot.Start.Equal(wantStart) {
		t.Errorf("slot start = %v, want %v", slot.Start, wantStart)
	}
}

func TestFindFirstBufferBeforeBusyBlock(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 30,
		BufferMinutes:   15,
		WindowStart:     "09:00",
		WindowEnd:       "12:00",
		AllowedWeekdays: weekdays(time.Tuesday),
	}
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	// Busy mid-window so candidates exist on both sides of it.
	busy := []slotfinder.Busy{
		{
			Start: time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC),
		},
	}

	slot, err := f.FindFirst(avail, horizon, busy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slot.Start.Equal(time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("first slot start = %v, want 09:00", slot.Start)
	}

	slots, err := f.FindN(avail, horizon, busy, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	// 09:15 ends exactly at the buffered event start (09:45) and is still
	// clean. 09:30 through 10:30 collide once the buffer is applied on both
	// sides, so the next clean candidate after the event is 10:45.
	wantStarts := []time.Time{
		time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 4, 9, 15, 0, 0, time.UTC),
		time.Date(2024, 6, 4, 10, 45, 0, 0, time.UTC),
	}
	for i, want := range wantStarts {
		if !slots[i].Start.Equal(want) {
			t.Errorf("slot[%d] start = %v, want %v", i, slots[i].Start, want)
		}
	}
}

func TestFindFirstIgnoresAllDayEvents(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 60,
		WindowStart:     "09:00",
		WindowEnd:       "17:00",
		AllowedWeekdays: weekdays(time.Tuesday),
	}
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	busy := []slotfinder.Busy{
		{
			Start:  time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
			AllDay: true,
		},
	}

	slot, err := f.FindFirst(avail, horizon, busy)
	if err != nil {
		t.Fatalf("unexpected error, all-day entries must not block: %v", err)
	}
	wantStart := time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC)
	if !slot.Start.Equal(wantStart) {
		t.Errorf("slot start = %v, want %v", slot.Start, wantStart)
	}
}

func TestFindFirstSkipsDisallowedWeekdays(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 30,
		WindowStart:     "09:00",
		WindowEnd:       "17:00",
		AllowedWeekdays: weekdays(time.Thursday),
	}
	// Horizon starts Tuesday; the first allowed day is Thursday.
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	}

	slot, err := f.FindFirst(avail, horizon, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot.Start.Weekday() != time.Thursday {
		t.Errorf("slot weekday = %v, want Thursday", slot.Start.Weekday())
	}
	wantStart := time.Date(2024, 6, 6, 9, 0, 0, 0, time.UTC)
	if !slot.Start.Equal(wantStart) {
		t.Errorf("slot start = %v, want %v", slot.Start, wantStart)
	}
}

func TestFindFirstNoAllowedDaysInHorizon(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 30,
		WindowStart:     "09:00",
		WindowEnd:       "17:00",
		AllowedWeekdays: weekdays(time.Saturday, time.Sunday),
	}
	// Tuesday through Friday, so every day in the horizon is disallowed.
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC),
	}

	_, err := f.FindFirst(avail, horizon, nil)
	if !errors.Is(err, slotfinder.ErrNoAvailability) {
		t.Fatalf("expected ErrNoAvailability, got %v", err)
	}
}

func TestFindFirstRespectsWindowEnd(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	// 60 minute meetings in a window that only fits one: the last candidate
	// that still ends inside the window is 16:00 for a 17:00 close.
	avail := slotfinder.Availability{
		DurationMinutes: 60,
		WindowStart:     "16:00",
		WindowEnd:       "17:00",
		AllowedWeekdays: weekdays(time.Tuesday),
	}
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}

	slot, err := f.FindFirst(avail, horizon, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slot.End.Equal(time.Date(2024, 6, 4, 17, 0, 0, 0, time.UTC)) {
		t.Errorf("slot end = %v, want 17:00", slot.End)
	}

	// Shrink the window below the duration and the day yields nothing.
	avail.WindowEnd = "16:45"
	if _, err := f.FindFirst(avail, horizon, nil); !errors.Is(err, slotfinder.ErrNoAvailability) {
		t.Fatalf("expected ErrNoAvailability, got %v", err)
	}
}

func TestFindFirstFullyBookedHorizon(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 30,
		WindowStart:     "09:00",
		WindowEnd:       "11:00",
		AllowedWeekdays: weekdays(time.Tuesday),
	}
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	busy := []slotfinder.Busy{
		{
			Start: time.Date(2024, 6, 4, 8, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 6, 4, 12, 0, 0, 0, time.UTC),
		},
	}

	_, err := f.FindFirst(avail, horizon, busy)
	if !errors.Is(err, slotfinder.ErrNoAvailability) {
		t.Fatalf("expected ErrNoAvailability, got %v", err)
	}
}

func TestFindFirstInvalidWindow(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}

	for _, clock := range []string{"9am", "25:00", "09:75", ""} {
		avail := slotfinder.Availability{
			DurationMinutes: 30,
			WindowStart:     clock,
			WindowEnd:       "17:00",
		}
		if _, err := f.FindFirst(avail, horizon, nil); !errors.Is(err, slotfinder.ErrInvalidWindow) {
			t.Errorf("window %q: expected ErrInvalidWindow, got %v", clock, err)
		}
	}
}

func TestFindFirstMidDayHorizonStart(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 30,
		WindowStart:     "09:00",
		WindowEnd:       "17:00",
		AllowedWeekdays: weekdays(time.Tuesday),
	}
	// Horizon opens mid-window; candidates before 10:30 must be skipped.
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}

	slot, err := f.FindFirst(avail, horizon, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC)
	if !slot.Start.Equal(wantStart) {
		t.Errorf("slot start = %v, want %v", slot.Start, wantStart)
	}
}

func TestFindN(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 30,
		WindowStart:     "09:00",
		WindowEnd:       "10:00",
		AllowedWeekdays: weekdays(time.Tuesday, time.Wednesday),
	}
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
	}

	slots, err := f.FindN(avail, horizon, nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 09:00, 09:15, 09:30 each day across two allowed days.
	if len(slots) != 6 {
		t.Fatalf("got %d slots, want 6", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].Start.After(slots[i-1].Start) {
			t.Errorf("slots out of order at index %d: %v then %v", i, slots[i-1].Start, slots[i].Start)
		}
	}

	slots, err = f.FindN(avail, horizon, nil, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
}

func TestFindNZero(t *testing.T) {
	f := mustFinder(t, "UTC", 15)

	slots, err := f.FindN(slotfinder.Availability{}, slotfinder.Horizon{}, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %d slots, want 0", len(slots))
	}
}

func TestFinderTimezone(t *testing.T) {
	f := mustFinder(t, "America/New_York", 15)

	avail := slotfinder.Availability{
		DurationMinutes: 30,
		WindowStart:     "09:00",
		WindowEnd:       "17:00",
		AllowedWeekdays: weekdays(time.Tuesday),
	}
	loc := f.Location()
	horizon := slotfinder.Horizon{
		From: time.Date(2024, 6, 4, 0, 0, 0, 0, loc),
		To:   time.Date(2024, 6, 5, 0, 0, 0, 0, loc),
	}

	slot, err := f.FindFirst(avail, horizon, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := slot.Start.In(loc).Hour(); got != 9 {
		t.Errorf("local start hour = %d, want 9", got)
	}
}
