package validate

import "errors"

// ValidationError is the aggregated outcome of a failed evaluation. It
// carries exactly one message: the validator's prefix followed by every
// collected violation, joined by ", " in step-declaration order. Nested
// failures appear as single parenthesized segments; a nil entity rejected by
// a not-nullable validator yields the configured nil-rejection text alone.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// IsValidationError reports whether err was produced by a Validator.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ExtractValidationError returns the *ValidationError wrapped in err, or nil
// when err carries none.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
