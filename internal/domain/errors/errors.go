// Package errors defines the application error taxonomy rendered to visitors.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// GenericMessage is shown whenever a failure has no more specific message.
const GenericMessage = "Wystąpił błąd. Spróbuj ponownie później."

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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by business code so detailed copies compare equal to the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Form errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Nieprawidłowe dane formularza.",
		"",
	)

	ErrFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"FIELDS_REQUIRED",
		"Wszystkie pola są wymagane.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Wprowadź poprawny adres e-mail.",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Hasła się nie zgadzają.",
		"",
	)

	ErrReviewIncomplete = NewBaseError(
		http.StatusBadRequest,
		"REVIEW_INCOMPLETE",
		"Wypełnij wszystkie pola",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Nieznana rola użytkownika.",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Błąd podczas logowania.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Sesja wygasła. Zaloguj się ponownie.",
		"",
	)

	ErrProfileFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_FETCH_FAILED",
		"Nie udało się pobrać danych użytkownika.",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusBadRequest,
		"REGISTRATION_FAILED",
		"Błąd podczas rejestracji.",
		"",
	)

	// API errors
	ErrAPIUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"API_UNAVAILABLE",
		"Błąd połączenia z serwerem.",
		"",
	)

	ErrUpstreamFailure = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FAILURE",
		GenericMessage,
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		GenericMessage,
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Brak uprawnień do tej operacji.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Nie znaleziono zasobu.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Zasób już istnieje.",
		"",
	)
)

// MessageOf returns the user-facing message carried by err, or GenericMessage.
func MessageOf(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return GenericMessage
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
