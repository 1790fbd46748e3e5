package validators

import "errors"

// Validation errors surfaced to the form before any network call is made.
var (
	ErrNameRequired        = errors.New("project name is required")
	ErrDescriptionRequired = errors.New("project description is required")
	ErrInvalidDeadline     = errors.New("deadline must be a date in YYYY-MM-DD format")
	ErrInvalidStatus       = errors.New("status must be one of: active, pending, completed, on hold")
)
