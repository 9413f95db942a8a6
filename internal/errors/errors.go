// Package errors provides custom error types for the GBCE API.
// All service-layer errors should use AppError to ensure consistent
// error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Instrument errors.
var (
	ErrUnknownInstrument = &AppError{Code: "UNKNOWN_INSTRUMENT", Message: "Instrument is not listed on this exchange", StatusCode: http.StatusNotFound}
	ErrDuplicateListing  = &AppError{Code: "DUPLICATE_LISTING", Message: "An instrument with this symbol is already listed", StatusCode: http.StatusConflict}
)

// Trade errors.
var (
	ErrInvalidTrade = &AppError{Code: "INVALID_TRADE", Message: "Trade quantity must be positive and price non-negative", StatusCode: http.StatusBadRequest}
)

// Valuation errors.
var (
	// ErrUndefinedRatio is returned when a yield calculation would divide by
	// zero. The division is surfaced explicitly rather than propagated as a
	// NaN or Inf value the caller cannot detect.
	ErrUndefinedRatio = &AppError{Code: "UNDEFINED_RATIO", Message: "Ratio is undefined for a non-positive price", StatusCode: http.StatusUnprocessableEntity}
)
