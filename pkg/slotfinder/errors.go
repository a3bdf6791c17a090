package slotfinder

import "errors"

var (
	ErrNoAvailability = errors.New("no available slot in horizon")
	ErrInvalidWindow  = errors.New("invalid availability window")
)
