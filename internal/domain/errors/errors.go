// Package errors defines the application error taxonomy. Every error that
// crosses the delivery boundary implements AppError so the HTTP layer can map
// it to a status code and a stable business error code.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Missing or invalid authentication token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Authentication token has expired",
		"",
	)

	ErrVerifierUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"AUTH_UNAVAILABLE",
		"Authentication service is temporarily unavailable",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No customer profile exists for this account",
		"",
	)

	ErrProfileExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_EXISTS",
		"A customer profile already exists for this account",
		"",
	)

	// Linking-related errors
	ErrSerialNotFound = NewBaseError(
		http.StatusNotFound,
		"SERIAL_NOT_FOUND",
		"Device not found or invalid serial number",
		"",
	)

	ErrAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"ALREADY_LINKED",
		"This device is already linked to an account",
		"",
	)

	ErrDuplicateSerial = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SERIAL",
		"A device with this serial number is already registered",
		"",
	)

	// Report-related errors
	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"No report found for the requested date",
		"",
	)

	ErrNoReports = NewBaseError(
		http.StatusNotFound,
		"NO_REPORTS",
		"No reports found for this user",
		"",
	)

	// Clinician-related errors
	ErrClinicianNotFound = NewBaseError(
		http.StatusNotFound,
		"CLINICIAN_NOT_FOUND",
		"No clinician record exists for this account",
		"",
	)

	ErrPatientNotAssigned = NewBaseError(
		http.StatusForbidden,
		"PATIENT_NOT_ASSIGNED",
		"This patient is not assigned to you",
		"",
	)

	// LINE login errors
	ErrLineCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"LINE_CODE_INVALID",
		"Failed to exchange LINE authorization code",
		"",
	)

	ErrLineTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"LINE_TOKEN_INVALID",
		"Invalid ID token from LINE",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request body failed validation",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"UNAVAILABLE",
		"A downstream dependency is temporarily unavailable",
		"",
	)
)

// DatastoreError represents a document-database failure, implementing the
// AppError interface. The underlying error is preserved for logging but never
// exposed in the client-facing message.
type DatastoreError struct {
	err     error
	details string
}

// NewDatastoreError creates a datastore-related error
func NewDatastoreError(err error, details string) AppError {
	return &DatastoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatastoreError) Error() string {
	return errors.Wrap(e.err, "datastore operation failed").Error()
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *DatastoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatastoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatastoreError) ErrorCode() string {
	return "DATASTORE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatastoreError) Message() string {
	return "A database error occurred"
}

// Details returns detailed error information
func (e *DatastoreError) Details() string {
	return e.details
}
