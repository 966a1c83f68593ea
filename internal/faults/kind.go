package faults

import (
	"errors"
	"fmt"
)

// Kind categorizes a fault raised by classification.
//
// The taxonomy is a closed five-way variant. Exhaustive switches over
// Kind are the intended consumption pattern; there is deliberately no
// class hierarchy to subvert that.
type Kind string

const (
	// KindInvalidArgument indicates an input that violates a precondition.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"

	// KindCustomDomain indicates a domain rule violation specific to this
	// demo (the custom exception type of the exercise).
	KindCustomDomain Kind = "CUSTOM_DOMAIN"

	// KindOverflow indicates a value above the allowable range.
	KindOverflow Kind = "OVERFLOW"

	// KindAllocation simulates a resource allocation failure.
	// Allocation faults carry no message payload; they are a pure signal.
	KindAllocation Kind = "ALLOCATION_FAILURE"

	// KindUnclassified is the blanket category used by catch-all handling.
	// Classification never raises it directly.
	KindUnclassified Kind = "UNCLASSIFIED"
)

// Error is a classification fault.
type Error struct {
	// Kind identifies the fault category.
	Kind Kind

	// Message is the human-readable payload. Empty for kinds that are
	// pure signals (KindAllocation).
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason())
}

// Reason returns the message payload, falling back to a fixed default
// for kinds that carry none.
func (e *Error) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindAllocation:
		return "allocation failure"
	default:
		return "unspecified fault"
	}
}

// New creates a fault of the given kind with a message payload.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the Kind from an error.
// Returns KindUnclassified for nil-safe use with non-fault errors.
// Uses errors.As to handle wrapped errors.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnclassified
}

// IsKind reports whether err is a fault of the given kind.
// Uses errors.As to handle wrapped errors.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
