package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an Error by the stage of the engine that raised it.
// See spec.md §7: VALIDATION and PARSE are local (the setter or the parser
// refuses the change and leaves state untouched), CONFLICT and IO abort the
// current operation, FATAL is non-recoverable.
type ErrorKind int

const (
	// Validation marks a bad name, value, type, context, template or priority.
	Validation ErrorKind = iota
	// Parse marks a malformed status line, key, or unmatched component name.
	Parse
	// Conflict marks a merge refused by equal-priority disagreement.
	Conflict
	// IO marks an open/read/write/rename/mkdir failure.
	IO
	// Fatal marks an allocation failure; callers should treat it as non-recoverable.
	Fatal
)

func (k ErrorKind) String() string {
	switch k {
	case Validation:
		return "VALIDATION"
	case Parse:
		return "PARSE"
	case Conflict:
		return "CONFLICT"
	case IO:
		return "IO"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Error is the single error type returned by every core operation. It
// carries the classifying Kind plus free-form context (the resource or
// component name involved, say) so callers can format a diagnostic without
// re-deriving it, and wraps the underlying cause when there is one.
type Error struct {
	Kind    ErrorKind
	Context string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Context)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Context, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error of the given kind for context, wrapping err (which
// may be nil).
func NewError(kind ErrorKind, context string, err error) *Error {
	return &Error{Kind: kind, Context: context, Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
