package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure the CLI can encounter is classified into
// exactly one of these before it reaches the caller.
const (
	KindValidation = "VALIDATION" // Input malformed; never reached the network
	KindAPI        = "API"        // Exchange rejected the request
	KindNetwork    = "NETWORK"    // Transport failure: dial, timeout, DNS
	KindUnknown    = "UNKNOWN"    // Anything not classifiable
)

// OrderError is the single error type crossing the gateway boundary.
// Constructed at the point of failure and never mutated.
type OrderError struct {
	Kind    string
	Code    int64 // Exchange error code, 0 when not applicable
	Message string
	Err     error // Underlying cause, may be nil
}

func (e *OrderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (code=%d): %s", e.Kind, e.Code, e.Message)
	}
	return e.Kind + ": " + e.Message
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed caller input.
func NewValidationError(format string, args ...any) *OrderError {
	return &OrderError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewAPIError reports an exchange-side rejection with its error code.
func NewAPIError(code int64, msg string) *OrderError {
	return &OrderError{Kind: KindAPI, Code: code, Message: msg}
}

// NewNetworkError reports a transport failure during op.
func NewNetworkError(op string, err error) *OrderError {
	return &OrderError{Kind: KindNetwork, Message: op + ": " + err.Error(), Err: err}
}

// NewUnknownError wraps anything that resisted classification.
func NewUnknownError(err error) *OrderError {
	return &OrderError{Kind: KindUnknown, Message: err.Error(), Err: err}
}

// KindOf classifies an arbitrary error. Plain errors fold into UNKNOWN.
func KindOf(err error) string {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindUnknown
}

// AsOrderError extracts the *OrderError from err, wrapping plain errors
// as UNKNOWN so callers always get a classified value.
func AsOrderError(err error) *OrderError {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe
	}
	return NewUnknownError(err)
}
