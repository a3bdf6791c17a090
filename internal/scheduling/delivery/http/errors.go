package http

import (
	"errors"

	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/session"
	pkgErrors "meeting-scheduler/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrInvalidState):
		return pkgErrors.NewHTTPError(400, "authorization state mismatch")
	case errors.Is(err, session.ErrNotConnected):
		return pkgErrors.NewHTTPError(409, "calendar is not connected")
	case errors.Is(err, session.ErrReauthRequired):
		return pkgErrors.NewHTTPError(401, "calendar authorization expired, reconnect required")
	case errors.Is(err, session.ErrTokenExpired):
		return pkgErrors.NewHTTPError(401, "calendar token expired, reconnect required")
	case errors.Is(err, scheduling.ErrInsufficientPermissions):
		return pkgErrors.NewHTTPError(403, "insufficient calendar permissions")
	case errors.Is(err, scheduling.ErrNoAvailability):
		return pkgErrors.NewHTTPError(409, "no available slot in the search horizon")
	}

	var gatewayErr *scheduling.GatewayError
	if errors.As(err, &gatewayErr) {
		return pkgErrors.NewHTTPError(502, gatewayErr.Message)
	}

	return pkgErrors.NewHTTPError(500, "internal server error")
}
