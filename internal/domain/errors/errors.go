package errors

import (
	"net/http"

	"foodlink/internal/errors"
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
	// Donation-related errors
	ErrDonationNotFound = NewBaseError(
		http.StatusNotFound,
		"DONATION_NOT_FOUND",
		"donation not found",
		"",
	)

	ErrDonationConflict = NewBaseError(
		http.StatusConflict,
		"DONATION_CONFLICT",
		"donation is no longer available for this action",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"unknown donation status",
		"",
	)

	ErrInvalidPickupWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PICKUP_WINDOW",
		"pickup window is invalid",
		"",
	)

	ErrDonationCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"DONATION_CREATION_FAILED",
		"failed to create donation",
		"",
	)

	ErrDonationNotClaimed = NewBaseError(
		http.StatusConflict,
		"DONATION_NOT_CLAIMED",
		"donation has not been claimed yet",
		"",
	)

	// Organization-related errors
	ErrOrganizationNotFound = NewBaseError(
		http.StatusNotFound,
		"ORGANIZATION_NOT_FOUND",
		"organization not found",
		"",
	)

	ErrOrganizationAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ORGANIZATION_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	ErrOrganizationUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORGANIZATION_UPDATE_FAILED",
		"failed to update organization",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Oracle-related errors
	ErrOracleContract = NewBaseError(
		http.StatusBadGateway,
		"ORACLE_CONTRACT_VIOLATION",
		"ranking oracle returned an invalid recommendation",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
