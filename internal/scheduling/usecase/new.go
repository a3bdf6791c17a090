package usecase

import (
	"context"

	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/gcalendar"
	pkgLog "meeting-scheduler/pkg/log"
	"meeting-scheduler/pkg/slotfinder"
)

// CalendarAPI abstracts the calendar client for mocking. Every call takes
// the access token to use; the use case fetches a fresh one from the
// session manager per call.
type CalendarAPI interface {
	ListCalendars(ctx context.Context, accessToken string) ([]gcalendar.Calendar, error)
	ListEvents(ctx context.Context, accessToken string, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, accessToken string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes the orchestrator.
type Config struct {
	// SummaryTemplate and DescriptionTemplate support {name} substitution.
	SummaryTemplate     string
	DescriptionTemplate string

	// MaxSlotAttempts caps the slot-collection loop in GetAvailableSlots.
	MaxSlotAttempts int
}

const defaultMaxSlotAttempts = 50

type implUseCase struct {
	l        pkgLog.Logger
	session  session.UseCase
	calendar CalendarAPI
	finder   *slotfinder.Finder
	cfg      Config
}

// New creates a new scheduling UseCase instance.
func New(l pkgLog.Logger, sessionUC session.UseCase, calendar CalendarAPI, finder *slotfinder.Finder, cfg Config) *implUseCase {
	if cfg.MaxSlotAttempts <= 0 {
		cfg.MaxSlotAttempts = defaultMaxSlotAttempts
	}
	if cfg.SummaryTemplate == "" {
		cfg.SummaryTemplate = "Intro call with {name}"
	}
	if cfg.DescriptionTemplate == "" {
		cfg.DescriptionTemplate = "Scheduled meeting with {name}."
	}
	return &implUseCase{
		l:        l,
		session:  sessionUC,
		calendar: calendar,
		finder:   finder,
		cfg:      cfg,
	}
}
