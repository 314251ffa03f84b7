package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("missing required field")
	ErrAINotConfigured   = errors.New("ai service not configured")
	ErrAICallFailed      = errors.New("ai service call failed")
	ErrInvalidAIOutput   = errors.New("invalid ai output")
	ErrPersistenceFailed = errors.New("persistence failed")
	ErrPaymentLinkFailed = errors.New("payment link creation failed")

	ErrTripNotFound = errors.New("trip not found")
	ErrUserNotFound = errors.New("user not found")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)

// The two extraction failures stay distinguishable in logs but both satisfy
// errors.Is(err, ErrInvalidAIOutput), so handlers map them the same way.
var (
	ErrNoFencedBlock    = fmt.Errorf("%w: no fenced json block", ErrInvalidAIOutput)
	ErrUnrepairableJSON = fmt.Errorf("%w: unrepairable json", ErrInvalidAIOutput)
)
