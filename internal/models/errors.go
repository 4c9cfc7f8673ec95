package models

// ValidationError reports a rejected create or update payload. Handlers map
// it to a 400 response with the reason as the error message.
type ValidationError struct {
	reason string
}

func (e *ValidationError) Error() string {
	return e.reason
}

// Validation failures returned by the product service.
var (
	ErrMissingRequiredFields = &ValidationError{"name and price are required fields"}
	ErrInvalidPrice          = &ValidationError{"price must be a valid number"}
	ErrNegativePrice         = &ValidationError{"price cannot be negative"}
	ErrNoUpdateData          = &ValidationError{"no data to update"}
	ErrInvalidBody           = &ValidationError{"invalid request body"}
)
