package repository

import (
	"context"
	"errors"

	"meeting-scheduler/internal/model"
)

// ErrIntegrationNotFound is returned when no record exists for the user.
var ErrIntegrationNotFound = errors.New("calendar integration not found")

// TokenRepository persists per-user calendar integration records. The
// default implementation is in-memory; hosts backed by a real store supply
// their own.
type TokenRepository interface {
	Get(ctx context.Context, userID string) (model.CalendarIntegration, error)
	Save(ctx context.Context, record model.CalendarIntegration) error
	UpdateStatus(ctx context.Context, userID string, status model.IntegrationStatus) error
}
