package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/pkg/slotfinder"
)

// processConnectReq binds and validates the OAuth connect query.
func (h *handler) processConnectReq(c *gin.Context) (connectReq, error) {
	var req connectReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCallbackReq binds the OAuth redirect callback query.
func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateMeetingReq binds and validates the booking request body.
func (h *handler) processCreateMeetingReq(c *gin.Context) (createMeetingReq, error) {
	var req createMeetingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSlotsReq binds and validates the slot listing request body.
func (h *handler) processSlotsReq(c *gin.Context) (slotsReq, error) {
	var req slotsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// parseWeekdays converts day names ("monday", "tue") to a weekday set.
func parseWeekdays(names []string) (map[time.Weekday]bool, error) {
	weekdays := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	set := make(map[time.Weekday]bool, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		matched := false
		for full, wd := range weekdays {
			if key == full || (len(key) >= 3 && strings.HasPrefix(full, key)) {
				set[wd] = true
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
	}
	return set, nil
}

// toAvailability converts the wire format into the slot finder's rules.
func (r availabilityReq) toAvailability() (slotfinder.Availability, error) {
	weekdays, err := parseWeekdays(r.AllowedWeekdays)
	if err != nil {
		return slotfinder.Availability{}, err
	}
	return slotfinder.Availability{
		DurationMinutes: r.DurationMinutes,
		BufferMinutes:   r.BufferMinutes,
		WindowStart:     r.WindowStart,
		WindowEnd:       r.WindowEnd,
		AllowedWeekdays: weekdays,
	}, nil
}
