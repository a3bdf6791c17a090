package usecase_test

import (
	"context"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockSession is a hand-rolled session.UseCase double. getFunc and
// forceFunc default to returning fixed tokens when nil.
type mockSession struct {
	getFunc      func() (string, error)
	forceFunc    func() (string, error)
	getCalls     int
	forceCalls   int
	revokedUsers []string
}

func (m *mockSession) InitiateAuthorization(ctx context.Context, sc model.Scope) (session.InitiateOutput, error) {
	return session.InitiateOutput{}, nil
}

func (m *mockSession) CompleteAuthorization(ctx context.Context, input session.CompleteInput) (session.CompleteOutput, error) {
	return session.CompleteOutput{}, nil
}

func (m *mockSession) GetValidAccessToken(ctx context.Context, sc model.Scope) (string, error) {
	m.getCalls++
	if m.getFunc != nil {
		return m.getFunc()
	}
	return "token-1", nil
}

func (m *mockSession) ForceRefresh(ctx context.Context, sc model.Scope) (string, error) {
	m.forceCalls++
	if m.forceFunc != nil {
		return m.forceFunc()
	}
	return "token-2", nil
}

func (m *mockSession) Revoke(ctx context.Context, sc model.Scope) error {
	m.revokedUsers = append(m.revokedUsers, sc.UserID)
	return nil
}

// mockCalendar is a hand-rolled CalendarAPI double.
type mockCalendar struct {
	listCalendarsFunc func(token string) ([]gcalendar.Calendar, error)
	listEventsFunc    func(token string, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	createEventFunc   func(token string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)

	createCalls int
}

func (m *mockCalendar) ListCalendars(ctx context.Context, accessToken string) ([]gcalendar.Calendar, error) {
	if m.listCalendarsFunc != nil {
		return m.listCalendarsFunc(accessToken)
	}
	return []gcalendar.Calendar{{ID: "cal-primary", Summary: "Work", Primary: true}}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, accessToken string, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listEventsFunc != nil {
		return m.listEventsFunc(accessToken, req)
	}
	return nil, nil
}

func (m *mockCalendar) CreateEvent(ctx context.Context, accessToken string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.createCalls++
	if m.createEventFunc != nil {
		return m.createEventFunc(accessToken, req)
	}
	return &gcalendar.Event{
		ID:        "event-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event?eid=abc",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}
