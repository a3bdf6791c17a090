package usecase

import (
	"context"

	"meeting-scheduler/internal/model"
)

// Revoke best-effort invalidates the provider tokens and flips the local
// record to disconnected. Remote failures are logged, never returned: the
// user must end up disconnected locally no matter what the provider says.
func (uc *implUseCase) Revoke(ctx context.Context, sc model.Scope) error {
	record, err := uc.repo.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Debugf(ctx, "Revoke: no integration record for user=%s: %v", sc.UserID, err)
		return nil
	}

	if record.ProviderToken != "" {
		if err := uc.provider.Revoke(ctx, record.ProviderToken); err != nil {
			uc.l.Warnf(ctx, "Revoke: provider revocation failed for user=%s: %v", sc.UserID, err)
		}
	}

	if err := uc.repo.UpdateStatus(ctx, sc.UserID, model.IntegrationDisconnected); err != nil {
		uc.l.Errorf(ctx, "Revoke: failed to mark user=%s disconnected: %v", sc.UserID, err)
	}

	return nil
}
