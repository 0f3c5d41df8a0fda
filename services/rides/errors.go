package rides

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("not authorized for this resource")

	ErrRequestNotFound = errors.New("ride request not found")
	ErrOfferNotFound   = errors.New("driver offer not found")
	ErrRideNotFound    = errors.New("ride not found")

	ErrDuplicateOffer      = errors.New("driver already has an active offer for this request")
	ErrRequestNotMatchable = errors.New("ride request is no longer accepting offers")
	ErrOfferExpired        = errors.New("driver offer is no longer available")
	ErrInvalidState        = errors.New("invalid ride state for this operation")
	ErrAlreadyRated        = errors.New("ride already rated")
)

// NewValidationError wraps ErrValidation with a field level message
func NewValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
