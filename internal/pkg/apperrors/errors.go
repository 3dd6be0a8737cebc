package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Registration errors
var (
	// ErrCapacityExceeded is returned when a bounded list is full. The list is left unchanged.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrPrerequisiteNotMet marks a refused enrollment at the API boundary.
	ErrPrerequisiteNotMet = errors.New("prerequisites not met")

	// ErrReferenceConsistency is only ever carried by a panic. Shared state is corrupt
	// once it is raised.
	ErrReferenceConsistency = errors.New("reference consistency violation")

	// ErrRegistrarClosed is returned by every registrar call after Close.
	ErrRegistrarClosed = errors.New("registrar is closed")
)

// Lookup errors, all of which match ErrResourceNotFound.
var (
	ErrCourseNotFound   = fmt.Errorf("course %w", ErrResourceNotFound)
	ErrStudentNotFound  = fmt.Errorf("student %w", ErrResourceNotFound)
	ErrOfferingNotFound = fmt.Errorf("offering %w", ErrResourceNotFound)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for an already existing resource
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrResourceAlreadyExists,
		Message: message,
	}
}

// NewCapacityError creates a capacity error naming the list that is full.
func NewCapacityError(list string, capacity int) error {
	return &CustomError{
		Err:     ErrCapacityExceeded,
		Message: fmt.Sprintf("%s is full (capacity %d)", list, capacity),
		Details: map[string]interface{}{"list": list, "capacity": capacity},
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
