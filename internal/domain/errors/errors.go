// Package errors defines the application error contract and the predefined
// error values every flow in the system fails with.
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

// Predefined error types
var (
	// Account lookup errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Admin account not found",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrAccountLocked = NewBaseError(
		http.StatusTooManyRequests,
		"ACCOUNT_LOCKED",
		"Account is temporarily locked after repeated failed logins",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusUnauthorized,
		"EMAIL_NOT_VERIFIED",
		"Email address has not been verified",
		"",
	)

	ErrEmailAlreadyVerified = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_VERIFIED",
		"Email address is already verified",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"Account is disabled",
		"",
	)

	// Password errors
	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrPasswordReuse = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_REUSE",
		"New password must be different from the current password",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet strength requirements",
		"",
	)

	// One-time code errors
	ErrOtpNotFound = NewBaseError(
		http.StatusNotFound,
		"OTP_NOT_FOUND",
		"No pending verification code for this email",
		"",
	)

	ErrOtpAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"OTP_ALREADY_USED",
		"Verification code has already been used",
		"",
	)

	ErrOtpExpired = NewBaseError(
		http.StatusGone,
		"OTP_EXPIRED",
		"Verification code has expired",
		"",
	)

	ErrOtpAttemptsExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_ATTEMPTS_EXCEEDED",
		"Too many verification attempts",
		"",
	)

	ErrInvalidOtp = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"Invalid verification code",
		"",
	)

	// Reset token errors
	ErrInvalidResetToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESET_TOKEN",
		"Invalid or expired reset token",
		"",
	)

	// Authorization errors
	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"You are not allowed to perform this action",
		"",
	)

	ErrNoOpRoleChange = NewBaseError(
		http.StatusBadRequest,
		"NO_OP_ROLE_CHANGE",
		"Target admin already has this role",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "ACCOUNT_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
