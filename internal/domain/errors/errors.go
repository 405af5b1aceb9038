package errors

import (
	"fmt"
	"net/http"

	"nudge/internal/errors"
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

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying detailed error information
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
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrUnknownDispatchType = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_DISPATCH_TYPE",
		"不支援的推播類型",
		"",
	)

	// Rules
	ErrRuleNotFound = NewBaseError(
		http.StatusNotFound,
		"RULE_NOT_FOUND",
		"找不到該提醒規則",
		"",
	)

	ErrRuleOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"RULE_OWNERSHIP_VIOLATION",
		"您沒有權限存取此提醒規則",
		"",
	)

	ErrRuleTargetNotClient = NewBaseError(
		http.StatusBadRequest,
		"RULE_TARGET_NOT_CLIENT",
		"指定的對象不是您的學員",
		"",
	)

	// Subscriptions
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"找不到該推播訂閱",
		"",
	)

	ErrNoSubscriptions = NewBaseError(
		http.StatusNotFound,
		"NO_SUBSCRIPTIONS",
		"此帳號尚未註冊任何推播裝置",
		"",
	)

	ErrPushNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"PUSH_NOT_CONFIGURED",
		"推播服務尚未設定",
		"",
	)

	// Event queue
	ErrEventPublishFailed = NewBaseError(
		http.StatusInternalServerError,
		"EVENT_PUBLISH_FAILED",
		"推播事件排程失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"尚未登入或憑證無效",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// DeliveryError is returned by a push transport when a single endpoint send fails.
// Permanent marks an endpoint the push service reports as gone; its subscription
// row must be removed. Anything else is transient and is only counted.
type DeliveryError struct {
	Permanent  bool
	StatusCode int
	Err        error
}

// NewPermanentDeliveryError marks the endpoint as dead
func NewPermanentDeliveryError(statusCode int, err error) *DeliveryError {
	return &DeliveryError{Permanent: true, StatusCode: statusCode, Err: err}
}

// NewTransientDeliveryError records a failure that a later sweep may recover from
func NewTransientDeliveryError(statusCode int, err error) *DeliveryError {
	return &DeliveryError{StatusCode: statusCode, Err: err}
}

func (e *DeliveryError) Error() string {
	kind := "transient"
	if e.Permanent {
		kind = "permanent"
	}

	if e.StatusCode != 0 {
		return fmt.Sprintf("%s delivery failure (status %d): %v", kind, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s delivery failure: %v", kind, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsPermanentDelivery reports whether err marks the endpoint as permanently gone
func IsPermanentDelivery(err error) bool {
	deliveryErr, ok := errors.AsType[*DeliveryError](err)

	return ok && deliveryErr.Permanent
}
