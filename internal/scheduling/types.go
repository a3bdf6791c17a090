package scheduling

import (
	"time"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/pkg/slotfinder"
)

// CreateMeetingInput describes a booking request for a lead.
type CreateMeetingInput struct {
	LeadName     string
	LeadEmail    string
	Availability slotfinder.Availability

	// PreferredDate anchors the search horizon. The horizon starts the day
	// AFTER this date, never on it; nil anchors at now.
	PreferredDate *time.Time
}

// CreateMeetingOutput carries the booking produced by a successful booking.
type CreateMeetingOutput struct {
	Booking model.Booking
}

// AvailableSlotsInput describes a slot listing request.
type AvailableSlotsInput struct {
	Availability slotfinder.Availability
	Count        int
}

// AvailableSlotsOutput carries the collected slots, earliest first.
type AvailableSlotsOutput struct {
	Slots []slotfinder.Slot
}
