package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Names are used as lookup keys and URL path segments
	NamePattern = `^[^/\s](?:[^/]*[^/\s])?$`

	// Student identifiers: letters, digits and dashes
	IdentifierPattern = `^[0-9A-Za-z-]{1,20}$`

	// Offering dates are calendar days
	DateLayout  = "2006-01-02"
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	NameMaxLength        = 100
	DescriptionMaxLength = 500
	RoomMaxLength        = 50
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Name       *regexp.Regexp
	Identifier *regexp.Regexp
	Date       *regexp.Regexp
}{
	Name:       regexp.MustCompile(NamePattern),
	Identifier: regexp.MustCompile(IdentifierPattern),
	Date:       regexp.MustCompile(DatePattern),
}

// StringValidation validates a single string field
type StringValidation struct {
	Field    string
	Value    string
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new required string validation
func NewStringValidation(field, value string) *StringValidation {
	return &StringValidation{
		Field:    field,
		Value:    value,
		Required: true,
	}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate returns an ErrValidationFailed error describing the first failed rule
func (v *StringValidation) Validate() error {
	if v.Value == "" {
		if v.Required {
			return fmt.Errorf("%w: %s is required", apperrors.ErrValidationFailed, v.Field)
		}
		return nil
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return fmt.Errorf("%w: %s must be at most %d characters", apperrors.ErrValidationFailed, v.Field, v.MaxLen)
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return fmt.Errorf("%w: %s has an invalid format", apperrors.ErrValidationFailed, v.Field)
	}
	return nil
}

// NumericValidation validates an integer field against an inclusive range
type NumericValidation struct {
	Field string
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a validation with no upper bound and a lower bound of zero
func NewNumericValidation(field string, value int) *NumericValidation {
	return &NumericValidation{Field: field, Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value; zero means unbounded
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() error {
	if v.Value < v.Min {
		return fmt.Errorf("%w: %s must be at least %d", apperrors.ErrValidationFailed, v.Field, v.Min)
	}
	if v.Max != 0 && v.Value > v.Max {
		return fmt.Errorf("%w: %s must be at most %d", apperrors.ErrValidationFailed, v.Field, v.Max)
	}
	return nil
}

// ValidDate reports whether s is a real calendar day in YYYY-MM-DD form
func ValidDate(s string) bool {
	if !CompiledPatterns.Date.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidateDate returns an ErrValidationFailed error for malformed dates
func ValidateDate(field, value string) error {
	if !ValidDate(value) {
		return fmt.Errorf("%w: %s must be a date in YYYY-MM-DD form", apperrors.ErrValidationFailed, field)
	}
	return nil
}

// All returns the first error among the given validations
func All(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
