package gcalendar

import "time"

// Calendar is a simplified entry from the authenticated account's calendar list.
type Calendar struct {
	ID       string
	Summary  string
	Primary  bool
	TimeZone string
}

// Event is a simplified representation of a Google Calendar event.
// All-day events carry date-only boundaries normalized to midnight and
// AllDay set.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Attendees   []string
}

// CreateEventRequest is the input for creating a timed calendar event.
type CreateEventRequest struct {
	CalendarID     string
	Summary        string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	Timezone       string // e.g. "Europe/Berlin"
	AttendeeEmails []string
}

// ListEventsRequest is the input for listing calendar events in a range.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
