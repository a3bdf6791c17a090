package model

import "time"

// Booking is the result of booking a meeting slot. Immutable once created;
// the calendar provider owns the underlying event from here on.
type Booking struct {
	ID            string // uuid
	SlotStart     time.Time
	SlotEnd       time.Time
	EventID       string // provider event id
	HtmlLink      string // shareable event link
	AttendeeName  string
	AttendeeEmail string
	CreatedAt     time.Time
}
