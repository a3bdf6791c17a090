package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/internal/session/repository"
	"meeting-scheduler/pkg/googleauth"
)

// GetValidAccessToken returns an access token that is valid for at least
// the expiry margin, refreshing first when the stored one is about to
// expire. The whole read-then-conditionally-refresh runs under a per-user
// lock so concurrent callers share one refresh.
func (uc *implUseCase) GetValidAccessToken(ctx context.Context, sc model.Scope) (string, error) {
	mu := uc.userLock(sc.UserID)
	mu.Lock()
	defer mu.Unlock()

	record, err := uc.repo.Get(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return "", session.ErrNotConnected
		}
		return "", fmt.Errorf("failed to load integration record: %w", err)
	}
	if record.Status != model.IntegrationConnected {
		return "", session.ErrNotConnected
	}

	if time.Now().Before(record.TokenExpiresAt.Add(-expiryMargin)) {
		return record.ProviderToken, nil
	}

	refreshed, err := uc.refresh(ctx, record)
	if err != nil {
		return "", err
	}
	return refreshed.ProviderToken, nil
}

// refresh exchanges the stored refresh token for a new access token and
// persists the updated record. A provider rejection flips the record to
// disconnected and surfaces as ErrReauthRequired so the caller can prompt
// for a new consent.
func (uc *implUseCase) refresh(ctx context.Context, record model.CalendarIntegration) (model.CalendarIntegration, error) {
	if record.ProviderRefreshToken == "" {
		return model.CalendarIntegration{}, session.ErrTokenExpired
	}

	tok, err := uc.provider.Refresh(ctx, record.ProviderRefreshToken)
	if err != nil {
		if googleauth.IsInvalidGrant(err) {
			uc.l.Warnf(ctx, "refresh rejected for user=%s, marking disconnected: %v", record.UserID, err)
			if updErr := uc.repo.UpdateStatus(ctx, record.UserID, model.IntegrationDisconnected); updErr != nil {
				uc.l.Errorf(ctx, "failed to mark user=%s disconnected: %v", record.UserID, updErr)
			}
			return model.CalendarIntegration{}, session.ErrReauthRequired
		}
		return model.CalendarIntegration{}, fmt.Errorf("token refresh failed: %w", err)
	}

	record.ProviderToken = tok.AccessToken
	record.TokenExpiresAt = tok.Expiry
	if tok.RefreshToken != "" {
		// Rotation: the provider may issue a replacement refresh token.
		record.ProviderRefreshToken = tok.RefreshToken
	}

	if err := uc.repo.Save(ctx, record); err != nil {
		return model.CalendarIntegration{}, fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	uc.l.Infof(ctx, "refreshed access token for user=%s, expires %s",
		record.UserID, record.TokenExpiresAt.Format(time.RFC3339))

	return record, nil
}

// ForceRefresh discards the cached access token and refreshes immediately.
// The calendar gateway uses this after a 401 that slipped past the expiry
// margin (e.g. token revoked server-side).
func (uc *implUseCase) ForceRefresh(ctx context.Context, sc model.Scope) (string, error) {
	mu := uc.userLock(sc.UserID)
	mu.Lock()
	defer mu.Unlock()

	record, err := uc.repo.Get(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return "", session.ErrNotConnected
		}
		return "", fmt.Errorf("failed to load integration record: %w", err)
	}
	if record.Status != model.IntegrationConnected {
		return "", session.ErrNotConnected
	}

	refreshed, err := uc.refresh(ctx, record)
	if err != nil {
		return "", err
	}
	return refreshed.ProviderToken, nil
}
