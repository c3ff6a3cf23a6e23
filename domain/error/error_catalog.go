package error

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode represents a unique error code
type ErrorCode string

// Error codes for different categories
const (
	// Authentication Errors (1xxx)
	ErrCodeInvalidCredentials ErrorCode = "AUTH_1001"
	ErrCodeUserNotFound       ErrorCode = "AUTH_1002"
	ErrCodeInvalidToken       ErrorCode = "AUTH_1003"
	ErrCodeTokenExpired       ErrorCode = "AUTH_1004"
	ErrCodeMissingToken       ErrorCode = "AUTH_1005"
	ErrCodeMalformedHeader    ErrorCode = "AUTH_1006"

	// Validation Errors (2xxx)
	ErrCodeInvalidEmail    ErrorCode = "VALID_2001"
	ErrCodeInvalidPassword ErrorCode = "VALID_2002"
	ErrCodeMissingField    ErrorCode = "VALID_2003"
	ErrCodeInvalidValue    ErrorCode = "VALID_2004"
	ErrCodeInvalidRequest  ErrorCode = "VALID_2005"
	ErrCodeInvalidRUT      ErrorCode = "VALID_2006"
	ErrCodeBannedContent   ErrorCode = "VALID_2007"
	ErrCodeOutOfRange      ErrorCode = "VALID_2008"

	// Rate Limiting Errors (3xxx)
	ErrCodeRateLimitExceeded ErrorCode = "RATE_3001"
	ErrCodeIPBlocked         ErrorCode = "RATE_3002"

	// Lookup Errors (4xxx)
	ErrCodeResourceNotFound ErrorCode = "NOTFOUND_4001"

	// Database Errors (5xxx)
	ErrCodeDatabaseError      ErrorCode = "DB_5001"
	ErrCodeDuplicateResource  ErrorCode = "DB_5002"
	ErrCodeReferenceViolation ErrorCode = "DB_5003"
	ErrCodeEmailAlreadyExists ErrorCode = "DB_5004"

	// Server Errors (6xxx)
	ErrCodeInternalServerError ErrorCode = "SERVER_6001"
	ErrCodeServiceUnavailable  ErrorCode = "SERVER_6002"
)

// AppError represents a structured application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string, details string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// Authentication errors
func ErrInvalidCredentials(details string) *AppError {
	return NewAppError(ErrCodeInvalidCredentials, "Invalid credentials", details, nil)
}

func ErrInvalidToken(details string) *AppError {
	return NewAppError(ErrCodeInvalidToken, "Invalid token", details, nil)
}

func ErrTokenExpired(details string) *AppError {
	return NewAppError(ErrCodeTokenExpired, "Token has expired", details, nil)
}

// Validation errors
func ErrInvalidEmail(email string) *AppError {
	return NewAppError(ErrCodeInvalidEmail, "Invalid email format", fmt.Sprintf("Email: %s", email), nil)
}

func ErrInvalidPassword(details string) *AppError {
	return NewAppError(ErrCodeInvalidPassword, "Password must be at least 8 characters", details, nil)
}

func ErrMissingField(fields ...string) *AppError {
	return NewAppError(ErrCodeMissingField, fmt.Sprintf("%s required", joinFields(fields)), "", nil)
}

func ErrInvalidValue(field, value string) *AppError {
	return NewAppError(ErrCodeInvalidValue, fmt.Sprintf("Invalid value for %s", field), fmt.Sprintf("Value: %s", value), nil)
}

func ErrInvalidRequest(details string) *AppError {
	return NewAppError(ErrCodeInvalidRequest, "Invalid request body", details, nil)
}

func ErrInvalidRUT(rut string) *AppError {
	return NewAppError(ErrCodeInvalidRUT, "Invalid RUT", fmt.Sprintf("RUT: %s", rut), nil)
}

func ErrBannedContent(field string) *AppError {
	return NewAppError(ErrCodeBannedContent, fmt.Sprintf("%s contains inappropriate language", field), "", nil)
}

func ErrOutOfRange(field string, min, max float64) *AppError {
	var msg string
	switch {
	case max > min:
		msg = fmt.Sprintf("%s must be between %g and %g", field, min, max)
	default:
		msg = fmt.Sprintf("%s cannot be lower than %g", field, min)
	}
	return NewAppError(ErrCodeOutOfRange, msg, "", nil)
}

// Rate limiting errors
func ErrRateLimitExceeded(attempts int, window string) *AppError {
	return NewAppError(ErrCodeRateLimitExceeded, "Too many requests", fmt.Sprintf("Attempts: %d, Window: %s", attempts, window), nil)
}

// Lookup errors
func ErrResourceNotFound(kind, id string) *AppError {
	return NewAppError(ErrCodeResourceNotFound, fmt.Sprintf("%s not found", kind), fmt.Sprintf("ID: %s", id), nil)
}

// Database errors
func ErrDatabaseError(operation string, cause error) *AppError {
	return NewAppError(ErrCodeDatabaseError, "Database operation failed", fmt.Sprintf("Operation: %s", operation), cause)
}

func ErrDuplicateResource(kind string, cause error) *AppError {
	return NewAppError(ErrCodeDuplicateResource, fmt.Sprintf("%s already exists", kind), "", cause)
}

func ErrReferenceViolation(kind string, cause error) *AppError {
	return NewAppError(ErrCodeReferenceViolation, fmt.Sprintf("%s references a record that does not exist or is still in use", kind), "", cause)
}

func ErrEmailAlreadyExists(email string) *AppError {
	return NewAppError(ErrCodeEmailAlreadyExists, "Email already exists", fmt.Sprintf("Email: %s", email), nil)
}

// Server errors
func ErrInternalServerError(details string, cause error) *AppError {
	return NewAppError(ErrCodeInternalServerError, "Internal server error", details, cause)
}

// GetHTTPStatusCode maps an error to the HTTP status the API answers with.
func GetHTTPStatusCode(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Code {
	case ErrCodeDuplicateResource, ErrCodeReferenceViolation, ErrCodeEmailAlreadyExists:
		return http.StatusConflict
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	}

	code := string(appErr.Code)
	switch {
	case strings.HasPrefix(code, "AUTH_"):
		return http.StatusUnauthorized
	case strings.HasPrefix(code, "VALID_"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "RATE_"):
		return http.StatusTooManyRequests
	case strings.HasPrefix(code, "NOTFOUND_"):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return "field is"
	case 1:
		return fields[0] + " is"
	}
	return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1] + " are"
}
