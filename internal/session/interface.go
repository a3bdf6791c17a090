package session

import (
	"context"

	"meeting-scheduler/internal/model"
)

// UseCase owns the OAuth lifecycle of a user's calendar connection:
// authorization, token refresh, and revocation.
type UseCase interface {
	// InitiateAuthorization starts the Authorization-Code-with-PKCE flow and
	// returns the provider consent URL the user must visit.
	InitiateAuthorization(ctx context.Context, sc model.Scope) (InitiateOutput, error)

	// CompleteAuthorization handles the redirect callback: validates state,
	// exchanges the code for tokens, and persists the integration record.
	CompleteAuthorization(ctx context.Context, input CompleteInput) (CompleteOutput, error)

	// GetValidAccessToken returns an access token guaranteed to be outside
	// the expiry margin, refreshing first when needed.
	GetValidAccessToken(ctx context.Context, sc model.Scope) (string, error)

	// ForceRefresh refreshes immediately regardless of the stored expiry.
	// Used after the provider rejects a token the margin check considered
	// still valid.
	ForceRefresh(ctx context.Context, sc model.Scope) (string, error)

	// Revoke invalidates the provider tokens best-effort and marks the
	// connection disconnected. It never fails: local disconnection must
	// succeed even when remote revocation does not.
	Revoke(ctx context.Context, sc model.Scope) error
}
