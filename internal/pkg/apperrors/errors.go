package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Credit program errors
var (
	ErrCreditProgramNotFound = NewCustomError(ErrResourceNotFound, "credit program not found")
	ErrCreditProgramInUse    = NewCustomError(ErrConflict, "credit program has students or subjects and cannot be deleted")
	ErrCreditProgramRef      = NewCustomError(ErrBadRequest, "referenced credit program does not exist")
)

// Student errors
var (
	ErrStudentNotFound      = NewCustomError(ErrResourceNotFound, "student not found")
	ErrDocumentNumberExists = NewCustomError(ErrResourceAlreadyExists, "a student with this document number already exists")
	ErrStudentIDMismatch    = NewCustomError(ErrBadRequest, "path id does not match body id")
)

// Subject errors
var (
	ErrSubjectNotFound = NewCustomError(ErrResourceNotFound, "subject not found")
	ErrSubjectInUse    = NewCustomError(ErrConflict, "subject has enrollments or teacher assignments and cannot be deleted")
)

// Teacher errors
var (
	ErrTeacherNotFound = NewCustomError(ErrResourceNotFound, "teacher not found")
	ErrTeacherInUse    = NewCustomError(ErrConflict, "teacher has subject assignments and cannot be deleted")
)

// Association errors
var (
	ErrEnrollmentNotFound        = NewCustomError(ErrResourceNotFound, "enrollment not found")
	ErrEnrollmentExists          = NewCustomError(ErrResourceAlreadyExists, "subject is already assigned to the student")
	ErrEnrollmentReference       = NewCustomError(ErrBadRequest, "student or subject does not exist")
	ErrTeacherAssignmentNotFound = NewCustomError(ErrResourceNotFound, "teacher assignment not found")
	ErrTeacherAssignmentExists   = NewCustomError(ErrResourceAlreadyExists, "teacher is already assigned to this subject")
	ErrTeacherAssignmentRef      = NewCustomError(ErrBadRequest, "teacher or subject does not exist")
)

// ErrConcurrentModification is returned when the store aborts a write because of a concurrent one
var ErrConcurrentModification = NewCustomError(ErrConflict, "the resource was modified concurrently, retry the request")

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a validation failure carrying the offending field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
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
	Code    string
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

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
