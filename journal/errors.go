package journal

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInstrument = errors.New("instrument is required")
	ErrInvalidDirection  = errors.New("direction must be long or short")
	ErrInvalidEntryPrice = errors.New("entry price must be non-zero")
	ErrNonFiniteValue    = errors.New("value is not a finite number")
	ErrExitBeforeEntry   = errors.New("exit time is before entry time")
	ErrTradeNotFound     = errors.New("trade not found")
)

// ValidationError ties a validation failure to the offending field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
