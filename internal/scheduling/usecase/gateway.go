package usecase

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/gcalendar"
)

// withAuthRetry runs one calendar call with a fresh access token. On a 401
// it forces exactly one refresh and retries the same call once; a second
// 401 surfaces as ErrReauthRequired. A 403 is never retried.
func withAuthRetry[T any](ctx context.Context, uc *implUseCase, sc model.Scope, fn func(token string) (T, error)) (T, error) {
	var zero T

	token, err := uc.session.GetValidAccessToken(ctx, sc)
	if err != nil {
		return zero, err
	}

	out, err := fn(token)
	if err == nil {
		return out, nil
	}

	status, ok := apiStatus(err)
	if !ok {
		return zero, err
	}

	switch status {
	case http.StatusUnauthorized:
		uc.l.Warnf(ctx, "calendar call got 401 for user=%s, forcing refresh", sc.UserID)

		token, err = uc.session.ForceRefresh(ctx, sc)
		if err != nil {
			return zero, err
		}

		out, err = fn(token)
		if err == nil {
			return out, nil
		}
		if status, ok := apiStatus(err); ok && status == http.StatusUnauthorized {
			return zero, session.ErrReauthRequired
		}
		return zero, mapAPIError(err)

	default:
		return zero, mapAPIError(err)
	}
}

// mapAPIError translates a googleapi error into the domain taxonomy.
func mapAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	if apiErr.Code == http.StatusForbidden {
		return scheduling.ErrInsufficientPermissions
	}
	return &scheduling.GatewayError{StatusCode: apiErr.Code, Message: apiErr.Message}
}

func apiStatus(err error) (int, bool) {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return 0, false
}

func (uc *implUseCase) listCalendars(ctx context.Context, sc model.Scope) ([]gcalendar.Calendar, error) {
	return withAuthRetry(ctx, uc, sc, func(token string) ([]gcalendar.Calendar, error) {
		return uc.calendar.ListCalendars(ctx, token)
	})
}

func (uc *implUseCase) listEvents(ctx context.Context, sc model.Scope, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return withAuthRetry(ctx, uc, sc, func(token string) ([]gcalendar.Event, error) {
		return uc.calendar.ListEvents(ctx, token, req)
	})
}

func (uc *implUseCase) createEvent(ctx context.Context, sc model.Scope, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	return withAuthRetry(ctx, uc, sc, func(token string) (*gcalendar.Event, error) {
		return uc.calendar.CreateEvent(ctx, token, req)
	})
}
