package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports an input field that failed a category invariant.
// It carries the field name and constraint separately so a UI can render a
// specific, actionable message without re-deriving it.
type ValidationError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Constraint)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConfigurationError reports a rules table that failed its coverage or
// ordering invariant. It is fatal: an engine must not serve calculations
// from a broken bracket table.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid tax rules: " + e.Reason
}
