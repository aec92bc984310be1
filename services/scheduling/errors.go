package scheduling

import (
	"errors"
	"fmt"

	"barberbook/models"
)

// ValidationError reports malformed input rejected before any storage access:
// bad "HH:mm" strings, non-positive durations, inverted ranges.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError is raised by the booking path when a proposed interval is
// occupied at commit time. It carries the aggregated result so callers can
// surface the precise reason.
type ConflictError struct {
	Result models.ConflictResult
}

func (e *ConflictError) Error() string {
	return e.Result.Message
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
