// Package domain holds the error kinds shared by every layer of the storefront.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every "missing catalog entry / record" error.
	ErrNotFound = errors.New("not found")

	// ErrGatewayNotConfigured is returned when no payment provider was wired.
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// ValidationError reports a missing or invalid amount, category or tier.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// GatewayErrorReason classifies why a payment provider call failed.
type GatewayErrorReason string

const (
	GatewayReasonTimeout       GatewayErrorReason = "timeout"
	GatewayReasonHTTPStatus    GatewayErrorReason = "http_status"
	GatewayReasonMalformed     GatewayErrorReason = "malformed_response"
	GatewayReasonNetwork       GatewayErrorReason = "network"
	GatewayReasonNotConfigured GatewayErrorReason = "not_configured"
)

// GatewayError is the only error a payment gateway returns to its callers.
type GatewayError struct {
	Provider   string
	Reason     GatewayErrorReason
	StatusCode int
	Err        error
}

func NewGatewayError(provider string, reason GatewayErrorReason, statusCode int, err error) *GatewayError {
	return &GatewayError{Provider: provider, Reason: reason, StatusCode: statusCode, Err: err}
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("payment gateway %s: %s", e.Provider, e.Reason)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// IsGatewayError reports whether err carries a GatewayError and returns it.
func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}

// TransportError wraps a failure to deliver something to a chat.
type TransportError struct {
	ChatID int64
	Op     string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("telegram %s chat_id=%d: %v", e.Op, e.ChatID, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
