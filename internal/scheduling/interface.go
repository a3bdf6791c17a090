package scheduling

import (
	"context"

	"meeting-scheduler/internal/model"
)

// UseCase composes the calendar gateway and the slot finder to book
// end-to-end meetings.
type UseCase interface {
	// CreateMeetingForLead finds the first conflict-free slot in the search
	// horizon and books it on the user's primary calendar with the lead as
	// attendee.
	CreateMeetingForLead(ctx context.Context, sc model.Scope, input CreateMeetingInput) (CreateMeetingOutput, error)

	// GetAvailableSlots collects up to Count conflict-free slots. Count == 0
	// yields an empty result without error.
	GetAvailableSlots(ctx context.Context, sc model.Scope, input AvailableSlotsInput) (AvailableSlotsOutput, error)
}
