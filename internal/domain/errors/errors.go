package errors

import (
	"net/http"

	"nexus/internal/errors"
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

// WithDetails returns a copy carrying details. The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Order assembly errors
var (
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"your cart is empty",
		"",
	)

	ErrUnavailable = NewBaseError(
		http.StatusConflict,
		"UNAVAILABLE",
		"an item in your cart is no longer available",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"not enough stock for an item in your cart",
		"",
	)

	ErrInvalidAddress = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ADDRESS",
		"the selected address is missing or invalid",
		"",
	)

	ErrMethodNotEligible = NewBaseError(
		http.StatusBadRequest,
		"METHOD_NOT_ELIGIBLE",
		"this payment method is not available for the order",
		"",
	)
)

// Payment errors
var (
	ErrGatewayUnavailable = NewBaseError(
		http.StatusBadGateway,
		"GATEWAY_UNAVAILABLE",
		"the payment gateway is unavailable, please try again",
		"",
	)

	ErrAmountMismatch = NewBaseError(
		http.StatusUnprocessableEntity,
		"AMOUNT_MISMATCH",
		"the paid amount does not match the order total",
		"",
	)

	ErrCurrencyMismatch = NewBaseError(
		http.StatusUnprocessableEntity,
		"CURRENCY_MISMATCH",
		"the paid currency does not match the order currency",
		"",
	)

	ErrUnknownReference = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_REFERENCE",
		"unknown payment reference",
		"",
	)

	ErrAlreadyProcessed = NewBaseError(
		http.StatusOK,
		"ALREADY_PROCESSED",
		"payment already processed",
		"",
	)

	ErrPaymentNotSuccessful = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_NOT_SUCCESSFUL",
		"the payment was not successful",
		"",
	)
)

// Rider and dispatch errors
var (
	ErrNotApproved = NewBaseError(
		http.StatusForbidden,
		"NOT_APPROVED",
		"your rider profile is not approved",
		"",
	)

	ErrNotAvailable = NewBaseError(
		http.StatusConflict,
		"NOT_AVAILABLE",
		"you must be available to take delivery tasks",
		"",
	)

	ErrTaskAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"TASK_ALREADY_CLAIMED",
		"this task was already claimed by another rider",
		"",
	)

	ErrApplicationExists = NewBaseError(
		http.StatusConflict,
		"APPLICATION_EXISTS",
		"you already have a rider application under review",
		"",
	)

	ErrInvalidHandoffCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_HANDOFF_CODE",
		"the hand-off code is invalid",
		"",
	)
)

// Payout and ledger errors
var (
	ErrNoPendingBalance = NewBaseError(
		http.StatusBadRequest,
		"NO_PENDING_BALANCE",
		"you have no balance available for payout",
		"",
	)

	ErrExistingPendingRequest = NewBaseError(
		http.StatusConflict,
		"EXISTING_PENDING_REQUEST",
		"you already have a pending payout request",
		"",
	)

	ErrAmountExceedsBalance = NewBaseError(
		http.StatusBadRequest,
		"AMOUNT_EXCEEDS_BALANCE",
		"the requested amount is outside the allowed range",
		"",
	)

	ErrLedgerImmutable = NewBaseError(
		http.StatusConflict,
		"LEDGER_IMMUTABLE",
		"completed transactions cannot be modified",
		"",
	)
)

// General errors
var (
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"this action is not allowed in the current state",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
