package usecase

import (
	"context"
	"fmt"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/googleauth"
)

// InitiateAuthorization generates the CSRF state and PKCE verifier, parks
// them in the scratch store, and returns the provider consent URL.
func (uc *implUseCase) InitiateAuthorization(ctx context.Context, sc model.Scope) (session.InitiateOutput, error) {
	state, err := googleauth.GenerateState()
	if err != nil {
		return session.InitiateOutput{}, fmt.Errorf("failed to generate state: %w", err)
	}
	verifier := googleauth.GenerateVerifier()

	uc.pending.Add(state, pendingAuth{UserID: sc.UserID, Verifier: verifier})

	authURL := uc.provider.AuthCodeURL(state, verifier)
	uc.l.Infof(ctx, "InitiateAuthorization: user=%s state=%s", sc.UserID, state)

	return session.InitiateOutput{AuthURL: authURL, State: state}, nil
}

// CompleteAuthorization validates state, exchanges the code plus verifier
// for tokens, and persists the connected integration record. The scratch
// entry is single-use: it is removed whether or not the exchange succeeds.
func (uc *implUseCase) CompleteAuthorization(ctx context.Context, input session.CompleteInput) (session.CompleteOutput, error) {
	pa, ok := uc.pending.Get(input.State)
	if !ok {
		// Unknown or expired state. No token exchange is attempted.
		return session.CompleteOutput{}, session.ErrInvalidState
	}
	uc.pending.Remove(input.State)

	tok, err := uc.provider.Exchange(ctx, input.Code, pa.Verifier)
	if err != nil {
		return session.CompleteOutput{}, fmt.Errorf("authorization code exchange failed: %w", err)
	}

	scope, _ := tok.Extra("scope").(string)

	record := model.CalendarIntegration{
		UserID:               pa.UserID,
		Status:               model.IntegrationConnected,
		ProviderToken:        tok.AccessToken,
		ProviderRefreshToken: tok.RefreshToken,
		TokenExpiresAt:       tok.Expiry,
		Scope:                scope,
	}
	if err := uc.repo.Save(ctx, record); err != nil {
		return session.CompleteOutput{}, fmt.Errorf("failed to persist integration record: %w", err)
	}

	uc.l.Infof(ctx, "CompleteAuthorization: user=%s connected, token expires %s",
		pa.UserID, tok.Expiry.Format("2006-01-02 15:04:05"))

	return session.CompleteOutput{UserID: pa.UserID}, nil
}
