package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// defaultMaxResults bounds listing to a single request. A single bounded
// page stands in for true pagination.
const defaultMaxResults = 250

// Client wraps the Google Calendar API. It holds no token of its own: every
// call takes the access token to use, so the caller decides token freshness
// per request.
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the Client.
type Option func(*Client)

// WithEndpoint overrides the Calendar API base URL (tests point this at a
// local server).
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient supplies a pre-configured HTTP client. Token injection is
// then the caller's responsibility.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit caps outgoing calls to the Calendar API to stay inside the
// per-user QPS quota.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// NewClient creates a Calendar client.
func NewClient(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// service builds a calendar.Service authenticated with the given token.
func (c *Client) service(ctx context.Context, accessToken string) (*calendar.Service, error) {
	opts := []option.ClientOption{}
	if c.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(c.httpClient))
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
		opts = append(opts, option.WithTokenSource(ts))
	}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// ListCalendars returns the calendars visible to the authenticated account.
func (c *Client) ListCalendars(ctx context.Context, accessToken string) ([]Calendar, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	list, err := svc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	calendars := make([]Calendar, 0, len(list.Items))
	for _, item := range list.Items {
		calendars = append(calendars, Calendar{
			ID:       item.Id,
			Summary:  item.Summary,
			Primary:  item.Primary,
			TimeZone: item.TimeZone,
		})
	}
	return calendars, nil
}

// ListEvents returns events in [TimeMin, TimeMax), normalizing both timed
// and all-day entries. Recurring events are expanded by the API
// (singleEvents=true) and come back in start-time order.
func (c *Client) ListEvents(ctx context.Context, accessToken string, req ListEventsRequest) ([]Event, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	list, err := svc.Events.List(calendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]Event, 0, len(list.Items))
	for _, item := range list.Items {
		ev, convErr := fromAPIEvent(item)
		if convErr != nil {
			continue // skip entries with unparseable times
		}
		events = append(events, ev)
	}
	return events, nil
}

// CreateEvent creates a timed event and returns it, including the shareable
// HtmlLink.
func (c *Client) CreateEvent(ctx context.Context, accessToken string, req CreateEventRequest) (*Event, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	attendees := make([]*calendar.EventAttendee, 0, len(req.AttendeeEmails))
	for _, email := range req.AttendeeEmails {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		Attendees: attendees,
		Reminders: &calendar.EventReminders{
			UseDefault:      true,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Attendees:   req.AttendeeEmails,
	}, nil
}

// fromAPIEvent converts an API event, handling the date-only ("date") and
// timed ("dateTime") start/end representations.
func fromAPIEvent(item *calendar.Event) (Event, error) {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
	}

	for _, a := range item.Attendees {
		ev.Attendees = append(ev.Attendees, a.Email)
	}

	if item.Start == nil || item.End == nil {
		return ev, fmt.Errorf("event %s has no start/end", item.Id)
	}

	switch {
	case item.Start.DateTime != "":
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return ev, fmt.Errorf("bad start time for event %s: %w", item.Id, err)
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return ev, fmt.Errorf("bad end time for event %s: %w", item.Id, err)
		}
		ev.StartTime = start
		ev.EndTime = end
	case item.Start.Date != "":
		start, err := time.Parse("2006-01-02", item.Start.Date)
		if err != nil {
			return ev, fmt.Errorf("bad start date for event %s: %w", item.Id, err)
		}
		end, err := time.Parse("2006-01-02", item.End.Date)
		if err != nil {
			return ev, fmt.Errorf("bad end date for event %s: %w", item.Id, err)
		}
		ev.StartTime = start
		ev.EndTime = end
		ev.AllDay = true
	default:
		return ev, fmt.Errorf("event %s has no usable start", item.Id)
	}

	return ev, nil
}
