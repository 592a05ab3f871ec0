// Package errs carries the structured error kinds used across the
// marketplace domain layer. Every rejected operation returns one of
// these instead of panicking, so callers can distinguish bad input
// from illegal state transitions.
package errs

import "fmt"

// Kind classifies a domain error.
type Kind int

const (
	// Validation means the input was rejected before any state changed.
	Validation Kind = iota + 1
	// State means the operation is not permitted in the aggregate's
	// current state.
	State
	// NotFound means the referenced entity does not exist.
	NotFound
	// Conflict means a uniqueness rule was violated.
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case State:
		return "state"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	}
	return "unknown"
}

// Error is a domain error with a kind and message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches kind-only sentinels, so errors.Is(err, errs.ErrValidation)
// works regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Msg == "" && t.Kind == e.Kind
}

// Kind-only sentinels for errors.Is checks.
var (
	ErrValidation = &Error{Kind: Validation}
	ErrState      = &Error{Kind: State}
	ErrNotFound   = &Error{Kind: NotFound}
	ErrConflict   = &Error{Kind: Conflict}
)

// Validationf builds a validation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

// Statef builds a state error.
func Statef(format string, args ...any) error {
	return &Error{Kind: State, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: NotFound, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: Conflict, Msg: fmt.Sprintf(format, args...)}
}
