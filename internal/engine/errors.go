package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderRefunded marks orders that are excluded from processing
	// because they have been fully refunded. This is not a failure,
	// the order simply produces no breakdown.
	ErrOrderRefunded = errors.New("order is fully refunded and excluded from processing")

	ErrInvalidComponentType = errors.New("unsupported component type")
	ErrInvalidComponentKind = errors.New("unsupported component kind")
)

// MalformedOrderError is returned when a required numeric field of an
// order could not be parsed. It is local to a single order, callers can
// skip the order and keep processing the rest of a batch.
type MalformedOrderError struct {
	OrderID string
	Field   string
	Value   string
}

func (e MalformedOrderError) Error() string {
	return fmt.Sprintf("order %s: field %s has non-numeric value %q", e.OrderID, e.Field, e.Value)
}

// RuleError is returned by ValidateRules for rules with an invalid
// configuration. It is detected before any order is processed.
type RuleError struct {
	RuleID string
	Err    error
}

func (e RuleError) Error() string {
	return fmt.Sprintf("rule %s: %s", e.RuleID, e.Err.Error())
}

func (e RuleError) Unwrap() error {
	return e.Err
}
