package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/pkg/gcalendar"
	"meeting-scheduler/pkg/slotfinder"
)

// CreateMeetingForLead books the first conflict-free slot on the user's
// primary calendar. The search horizon always starts the day after the
// preferred date (or today), never on the preferred date itself.
func (uc *implUseCase) CreateMeetingForLead(ctx context.Context, sc model.Scope, input scheduling.CreateMeetingInput) (scheduling.CreateMeetingOutput, error) {
	uc.l.Infof(ctx, "CreateMeetingForLead: user=%s lead=%s", sc.UserID, input.LeadEmail)

	// Step 1: resolve the primary calendar.
	calendars, err := uc.listCalendars(ctx, sc)
	if err != nil {
		return scheduling.CreateMeetingOutput{}, err
	}
	calendarID := primaryCalendarID(calendars)

	// Step 2: fetch existing events over the search horizon.
	horizon := uc.finder.DefaultHorizon(horizonAnchor(input.PreferredDate))
	events, err := uc.listEvents(ctx, sc, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    horizon.From,
		TimeMax:    horizon.To,
	})
	if err != nil {
		return scheduling.CreateMeetingOutput{}, err
	}

	// Step 3: find the first surviving slot.
	slot, err := uc.finder.FindFirst(input.Availability, horizon, busyFromEvents(events))
	if err != nil {
		if errors.Is(err, slotfinder.ErrNoAvailability) {
			return scheduling.CreateMeetingOutput{}, scheduling.ErrNoAvailability
		}
		return scheduling.CreateMeetingOutput{}, fmt.Errorf("slot search failed: %w", err)
	}

	// Step 4: book it.
	created, err := uc.createEvent(ctx, sc, gcalendar.CreateEventRequest{
		CalendarID:     calendarID,
		Summary:        renderTemplate(uc.cfg.SummaryTemplate, input.LeadName),
		Description:    renderTemplate(uc.cfg.DescriptionTemplate, input.LeadName),
		StartTime:      slot.Start,
		EndTime:        slot.End,
		Timezone:       uc.finder.Location().String(),
		AttendeeEmails: []string{input.LeadEmail},
	})
	if err != nil {
		return scheduling.CreateMeetingOutput{}, err
	}

	booking := model.Booking{
		ID:            uuid.NewString(),
		SlotStart:     slot.Start,
		SlotEnd:       slot.End,
		EventID:       created.ID,
		HtmlLink:      created.HtmlLink,
		AttendeeName:  input.LeadName,
		AttendeeEmail: input.LeadEmail,
		CreatedAt:     time.Now(),
	}

	uc.l.Infof(ctx, "CreateMeetingForLead: booked event=%s slot=%s", created.ID,
		slot.Start.Format(time.RFC3339))

	return scheduling.CreateMeetingOutput{Booking: booking}, nil
}
