package http

import (
	"time"

	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/pkg/slotfinder"
)

// --- Request DTOs ---

type connectReq struct {
	UserID string `form:"user_id" binding:"required"`
}

type callbackReq struct {
	Code  string `form:"code"  binding:"required"`
	State string `form:"state" binding:"required"`
}

type availabilityReq struct {
	DurationMinutes int      `json:"duration_minutes" binding:"required,min=5,max=480"`
	BufferMinutes   int      `json:"buffer_minutes"   binding:"min=0,max=120"`
	WindowStart     string   `json:"window_start"     binding:"required"`
	WindowEnd       string   `json:"window_end"       binding:"required"`
	AllowedWeekdays []string `json:"allowed_weekdays" binding:"required,min=1"`
}

type createMeetingReq struct {
	UserID        string          `json:"user_id"        binding:"required"`
	LeadName      string          `json:"lead_name"      binding:"required,max=255"`
	LeadEmail     string          `json:"lead_email"     binding:"required,email"`
	Availability  availabilityReq `json:"availability"   binding:"required"`
	PreferredDate string          `json:"preferred_date" binding:"omitempty"`
}

func (r createMeetingReq) validate() error { return nil }

func (r createMeetingReq) toInput() (scheduling.CreateMeetingInput, error) {
	avail, err := r.Availability.toAvailability()
	if err != nil {
		return scheduling.CreateMeetingInput{}, err
	}

	input := scheduling.CreateMeetingInput{
		LeadName:     r.LeadName,
		LeadEmail:    r.LeadEmail,
		Availability: avail,
	}

	if r.PreferredDate != "" {
		preferred, err := time.Parse(time.RFC3339, r.PreferredDate)
		if err != nil {
			return scheduling.CreateMeetingInput{}, err
		}
		input.PreferredDate = &preferred
	}

	return input, nil
}

type slotsReq struct {
	UserID       string          `json:"user_id"      binding:"required"`
	Availability availabilityReq `json:"availability" binding:"required"`
	Count        int             `json:"count"        binding:"min=0,max=50"`
}

func (r slotsReq) validate() error { return nil }

func (r slotsReq) toInput() (scheduling.AvailableSlotsInput, error) {
	avail, err := r.Availability.toAvailability()
	if err != nil {
		return scheduling.AvailableSlotsInput{}, err
	}
	return scheduling.AvailableSlotsInput{Availability: avail, Count: r.Count}, nil
}

// --- Response DTOs ---

type connectResp struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}

type callbackResp struct {
	UserID    string `json:"user_id"`
	Connected bool   `json:"connected"`
}

type slotResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func newSlotResp(s slotfinder.Slot) slotResp {
	return slotResp{Start: s.Start, End: s.End}
}

type bookingResp struct {
	ID            string    `json:"id"`
	Slot          slotResp  `json:"slot"`
	EventID       string    `json:"event_id"`
	HtmlLink      string    `json:"html_link"`
	AttendeeName  string    `json:"attendee_name"`
	AttendeeEmail string    `json:"attendee_email"`
	CreatedAt     time.Time `json:"created_at"`
}

func (h *handler) newBookingResp(out scheduling.CreateMeetingOutput) bookingResp {
	b := out.Booking
	return bookingResp{
		ID:            b.ID,
		Slot:          slotResp{Start: b.SlotStart, End: b.SlotEnd},
		EventID:       b.EventID,
		HtmlLink:      b.HtmlLink,
		AttendeeName:  b.AttendeeName,
		AttendeeEmail: b.AttendeeEmail,
		CreatedAt:     b.CreatedAt,
	}
}

type slotsResp struct {
	Slots []slotResp `json:"slots"`
	Count int        `json:"count"`
}

func (h *handler) newSlotsResp(out scheduling.AvailableSlotsOutput) slotsResp {
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = newSlotResp(s)
	}
	return slotsResp{Slots: slots, Count: len(slots)}
}
