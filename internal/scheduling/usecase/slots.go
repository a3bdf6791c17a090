package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/pkg/gcalendar"
	"meeting-scheduler/pkg/slotfinder"
)

// GetAvailableSlots collects up to Count conflict-free slots by repeatedly
// running the single-slot search and advancing the horizon start past each
// found slot, capped at MaxSlotAttempts iterations.
func (uc *implUseCase) GetAvailableSlots(ctx context.Context, sc model.Scope, input scheduling.AvailableSlotsInput) (scheduling.AvailableSlotsOutput, error) {
	if input.Count <= 0 {
		return scheduling.AvailableSlotsOutput{Slots: []slotfinder.Slot{}}, nil
	}

	calendars, err := uc.listCalendars(ctx, sc)
	if err != nil {
		return scheduling.AvailableSlotsOutput{}, err
	}
	calendarID := primaryCalendarID(calendars)

	horizon := uc.finder.DefaultHorizon(time.Now())
	events, err := uc.listEvents(ctx, sc, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    horizon.From,
		TimeMax:    horizon.To,
	})
	if err != nil {
		return scheduling.AvailableSlotsOutput{}, err
	}
	busy := busyFromEvents(events)

	slots := make([]slotfinder.Slot, 0, input.Count)
	for attempts := 0; attempts < uc.cfg.MaxSlotAttempts && len(slots) < input.Count; attempts++ {
		slot, err := uc.finder.FindFirst(input.Availability, horizon, busy)
		if err != nil {
			if errors.Is(err, slotfinder.ErrNoAvailability) {
				break // horizon exhausted, return what we have
			}
			return scheduling.AvailableSlotsOutput{}, fmt.Errorf("slot search failed: %w", err)
		}

		slots = append(slots, slot)
		horizon.From = slot.End
	}

	uc.l.Debugf(ctx, "GetAvailableSlots: user=%s collected=%d requested=%d",
		sc.UserID, len(slots), input.Count)

	return scheduling.AvailableSlotsOutput{Slots: slots}, nil
}
