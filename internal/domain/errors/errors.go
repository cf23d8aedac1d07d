// Package errors defines domain-specific error types.
// Using typed errors (instead of strings) allows call sites to branch on the
// cases they care about: a validation failure is shown to the guest before any
// network call, a transport failure keeps the current screen state intact.
//
// Pattern: Sentinel Errors + Custom Error Types
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnauthorized - запрос к админским операциям без прав админа.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyCart - попытка оформить заказ с пустой корзиной.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotConfigured - на сервере не заданы обязательные секреты.
	ErrNotConfigured = errors.New("server configuration error")

	// ErrCodeMismatch - введённый промокод не совпал с действующим.
	ErrCodeMismatch = errors.New("promo code mismatch")
)

// ValidationError represents a failure caught before any network call.
// Surfaced to the guest as a transient notice; never retried automatically.
type ValidationError struct {
	Field   string // Field that failed validation
	Message string // Human-readable, user-visible message
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// TransportError wraps a failed outbound request: network unreachable or a
// non-2xx status. The caller's state (cart, promo input) is preserved so the
// guest can retry manually.
type TransportError struct {
	Op         string // Operation that failed (e.g., "send-order")
	StatusCode int    // HTTP status, 0 when the request never completed
	Err        error  // Underlying error (for error chains)
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport error for a failed request.
func NewTransportError(op string, statusCode int, err error) *TransportError {
	return &TransportError{Op: op, StatusCode: statusCode, Err: err}
}

// AuthorizationError - вызов админской операции не-админом.
// Клиент показывает серверное сообщение дословно.
type AuthorizationError struct {
	Message string
}

// Error implements the error interface.
func (e AuthorizationError) Error() string {
	return e.Message
}

// Unwrap ties AuthorizationError into the ErrUnauthorized chain.
func (e AuthorizationError) Unwrap() error {
	return ErrUnauthorized
}

// CodeMismatchError - введённый код гейта не совпал с действующим.
// Текст показывается гостю дословно.
type CodeMismatchError struct {
	Message string
}

// Error implements the error interface.
func (e CodeMismatchError) Error() string {
	return e.Message
}

// Unwrap ties CodeMismatchError into the ErrCodeMismatch chain.
func (e CodeMismatchError) Unwrap() error {
	return ErrCodeMismatch
}

// StorageError wraps a local cache read/write failure. It is fully swallowed
// by the image cache helper and exists only for logging.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

// Unwrap implements error unwrapping.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Helper functions for common error checking

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}

// IsUnauthorized checks if an error is an authorization error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotConfigured checks if an error is a server configuration error.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

// IsCodeMismatch checks if an error is a gate code mismatch.
func IsCodeMismatch(err error) bool {
	return errors.Is(err, ErrCodeMismatch)
}
