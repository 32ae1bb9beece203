package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrSettingsInvalid covers malformed or inconsistent payment settings,
	// e.g. thresholds out of order. Rejected at update time so the router
	// never sees invalid values.
	ErrSettingsInvalid = errors.New("payment settings invalid")

	ErrDuplicateTransaction    = errors.New("transaction id already exists")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrInvalidTransactionState = errors.New("transaction is not awaiting verification")

	// ErrVersionConflict means the record changed between read and write.
	ErrVersionConflict = errors.New("transaction was modified concurrently")

	ErrDatabaseError = errors.New("database error")
)

// GatewayError reports a failure from an external payment processor during
// the automatic path. The transaction has already been moved to its failed
// terminal state when this is returned.
type GatewayError struct {
	Gateway string
	Reason  string
	Cause   error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gateway %s: %s: %v", e.Gateway, e.Reason, e.Cause)
	}
	return fmt.Sprintf("gateway %s: %s", e.Gateway, e.Reason)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

func NewGatewayError(gateway, reason string, cause error) *GatewayError {
	return &GatewayError{Gateway: gateway, Reason: reason, Cause: cause}
}
