package scheduling

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the scheduling package.
var (
	ErrNoAvailability          = errors.New("no available slot in the search horizon")
	ErrInsufficientPermissions = errors.New("insufficient calendar permissions")
)

// GatewayError is a calendar API failure that is neither an auth problem
// nor a permission problem. It carries the provider's message verbatim.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("calendar gateway error (%d): %s", e.StatusCode, e.Message)
}
