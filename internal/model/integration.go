package model

import "time"

// IntegrationStatus is the lifecycle state of a user's calendar connection.
type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
)

// CalendarIntegration is the persisted per-user calendar connection record.
// Only the session use case mutates it: token fields change on refresh or
// authorization completion, Status flips on disconnect.
type CalendarIntegration struct {
	UserID               string
	Status               IntegrationStatus
	ProviderToken        string
	ProviderRefreshToken string
	TokenExpiresAt       time.Time
	Scope                string
	UpdatedAt            time.Time
}
