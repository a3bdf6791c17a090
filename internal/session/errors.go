package session

import "errors"

// Domain-specific errors for the session package.
var (
	ErrInvalidState   = errors.New("authorization state mismatch")
	ErrNotConnected   = errors.New("calendar is not connected")
	ErrReauthRequired = errors.New("provider rejected refresh token, re-authorization required")
	ErrTokenExpired   = errors.New("access token expired and no refresh token available")
)
