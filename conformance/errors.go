package conformance

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindConfig marks a programmer mistake in a scenario definition
	// (duplicate kind, validator bound to an unknown slot). Fatal at setup,
	// never tolerated at runtime.
	KindConfig Kind = "Config"
	// KindIngest marks a trace source that is missing or unreadable.
	KindIngest Kind = "Ingest"
	// KindValidation marks a captured value that failed a field validator.
	KindValidation Kind = "Validation"
	KindInternal   Kind = "Internal"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g., TRC-CFG-001, TRC-ING-002) naming the
// violated invariant.
//
// Message is intended for humans; do not match on it. It always carries the
// literal value that caused the rejection.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
