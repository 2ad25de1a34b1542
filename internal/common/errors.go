package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy for the message-to-label flow. Every component converts
// its failures into one of these at its boundary; nothing else escapes.
var (
	// ErrIgnorableInput: the message lacks the order header marker. Not an
	// order, not an error — skipped without log noise.
	ErrIgnorableInput = errors.New("not an order message")

	// ErrMalformedOrder: header present but at least one required field
	// pattern did not match. Logged at warn, otherwise a silent no-op.
	ErrMalformedOrder = errors.New("order message malformed")

	// ErrDeliveryFailure: a gateway call (attach action, send document)
	// failed. The user retries by re-activating the print action.
	ErrDeliveryFailure = errors.New("gateway delivery failed")

	// ErrPayloadDecode: an activation payload did not decode into the
	// expected field set. Fatal for that activation only.
	ErrPayloadDecode = errors.New("print payload malformed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
