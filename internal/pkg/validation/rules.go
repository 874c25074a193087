package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

// Column limits of the schema
var (
	NameMaxLength           = 100
	DocumentNumberMaxLength = 100
)

// StringValidation describes the checks for one text field
type StringValidation struct {
	Field    string
	Value    string
	MaxLen   int
	Required bool
}

// NewStringValidation creates a required string validation for field
func NewStringValidation(field, value string) *StringValidation {
	return &StringValidation{
		Field:    field,
		Value:    value,
		Required: true,
	}
}

// WithMaxLength sets maximum length in characters
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate returns an apperrors validation error describing the first failed check
func (v *StringValidation) Validate() error {
	trimmed := strings.TrimSpace(v.Value)
	if v.Required && trimmed == "" {
		return apperrors.NewValidationError(v.Field, fmt.Sprintf("%s cannot be empty", v.Field))
	}
	if v.MaxLen > 0 && utf8.RuneCountInString(trimmed) > v.MaxLen {
		return apperrors.NewValidationError(v.Field, fmt.Sprintf("%s must be at most %d characters", v.Field, v.MaxLen))
	}
	return nil
}

// Name validates a required display name column
func Name(field, value string) error {
	return NewStringValidation(field, value).WithMaxLength(NameMaxLength).Validate()
}

// PositiveID validates that an identifier is > 0
func PositiveID(field string, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be a positive integer", field))
	}
	return nil
}

// OptionalPositiveID validates an optional reference
func OptionalPositiveID(field string, id *int64) error {
	if id == nil {
		return nil
	}
	return PositiveID(field, *id)
}
