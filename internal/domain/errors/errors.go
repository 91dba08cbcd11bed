package errors

import (
	"geolead/internal/errors"
)

// Kind classifies a failure so the supervisor can decide what happens next.
type Kind string

const (
	KindNone              Kind = ""
	KindValidation        Kind = "validation"
	KindDuplicate         Kind = "duplicate"
	KindTokenInvalid      Kind = "token_invalid"
	KindNotFound          Kind = "not_found"
	KindTransientDelivery Kind = "transient_delivery"
	KindStore             Kind = "store"
	KindInProgress        Kind = "in_progress"
	KindInternal          Kind = "internal"
)

// EngineError defines the interface for classified engine errors
type EngineError interface {
	error
	Kind() Kind        // Failure class
	ErrorCode() string // Stable error code
	Message() string   // Human readable message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the EngineError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Kind returns the failure class
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the message
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
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Lead errors
	ErrLeadInvalid = NewBaseError(
		KindValidation,
		"LEAD_INVALID",
		"lead is missing required fields",
		"",
	)

	ErrLeadDuplicate = NewBaseError(
		KindDuplicate,
		"LEAD_DUPLICATE",
		"lead duplicates an earlier lead in the dedup window",
		"",
	)

	ErrLeadNotFound = NewBaseError(
		KindNotFound,
		"LEAD_NOT_FOUND",
		"lead not found",
		"",
	)

	// Location and event payload errors
	ErrLocationInvalid = NewBaseError(
		KindValidation,
		"LOCATION_INVALID",
		"customer location is missing latitude, longitude or mobile",
		"",
	)

	ErrEventInvalid = NewBaseError(
		KindValidation,
		"EVENT_INVALID",
		"event payload is malformed",
		"",
	)

	ErrEventTypeUnknown = NewBaseError(
		KindValidation,
		"EVENT_TYPE_UNKNOWN",
		"event type is not handled",
		"",
	)

	ErrEventDuplicate = NewBaseError(
		KindDuplicate,
		"EVENT_DUPLICATE",
		"event was already delivered",
		"",
	)

	ErrEventInProgress = NewBaseError(
		KindInProgress,
		"EVENT_IN_PROGRESS",
		"event is being handled by another delivery",
		"",
	)

	// Merchant errors
	ErrMerchantNotFound = NewBaseError(
		KindNotFound,
		"MERCHANT_NOT_FOUND",
		"merchant not found",
		"",
	)

	ErrMerchantNoToken = NewBaseError(
		KindNotFound,
		"MERCHANT_NO_TOKEN",
		"merchant has no push token",
		"",
	)

	// Offer errors
	ErrOfferInvalid = NewBaseError(
		KindValidation,
		"OFFER_INVALID",
		"offer has no location",
		"",
	)

	// Push errors
	ErrTokenUnregistered = NewBaseError(
		KindTokenInvalid,
		"TOKEN_UNREGISTERED",
		"push token is no longer registered",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		KindTokenInvalid,
		"TOKEN_INVALID",
		"push token is malformed",
		"",
	)

	ErrPushUnavailable = NewBaseError(
		KindTransientDelivery,
		"PUSH_UNAVAILABLE",
		"push provider failed to deliver",
		"",
	)

	// Worker endpoint errors
	ErrPushUnauthorized = NewBaseError(
		KindValidation,
		"PUSH_UNAUTHORIZED",
		"push request is not signed by Pub/Sub",
		"",
	)

	ErrPushMalformed = NewBaseError(
		KindValidation,
		"PUSH_MALFORMED",
		"push request body is not a Pub/Sub message",
		"",
	)

	ErrEventRetry = NewBaseError(
		KindStore,
		"EVENT_RETRY",
		"event could not be processed, redeliver later",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindStore,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the EngineError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) EngineError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the failure class
func (e *DatabaseExecuteError) Kind() Kind {
	return KindStore
}

// ErrorCode returns the error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the class of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	if engineErr, ok := errors.AsType[EngineError](err); ok {
		return engineErr.Kind()
	}

	return KindInternal
}

// CodeOf returns the error code carried by err, if any.
func CodeOf(err error) string {
	if engineErr, ok := errors.AsType[EngineError](err); ok {
		return engineErr.ErrorCode()
	}

	return ErrInternalError.ErrorCode()
}
