// Package fault defines the tagged error taxonomy shared by the
// classifier, the operation library, and the dispatcher. Every failure
// that crosses a component boundary carries a Kind so the HTTP layer
// can map it to a status code without inspecting message text.
package fault

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of an agent error.
type Kind int

const (
	// None marks a successful outcome.
	None Kind = iota
	// OutOfSandbox is an attempted path escape; always a client error.
	OutOfSandbox
	// Unrecognized means no classifier rule matched the description.
	Unrecognized
	// InputMissing means a required file or table is absent.
	InputMissing
	// MalformedInput means an input exists but cannot be parsed or
	// cannot support the transform.
	MalformedInput
	// GeneratorFailure covers external generator spawn errors and
	// non-zero exits.
	GeneratorFailure
	// Internal is any unexpected failure during execution.
	Internal
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case OutOfSandbox:
		return "out_of_sandbox"
	case Unrecognized:
		return "unrecognized"
	case InputMissing:
		return "input_missing"
	case MalformedInput:
		return "malformed_input"
	case GeneratorFailure:
		return "generator_failure"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is a kinded agent error. Msg is user-visible; Err is the
// wrapped cause, if any.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a tagged error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error with a kind and a context message.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err, or Internal if err carries none.
// A nil error yields None.
func KindOf(err error) Kind {
	if err == nil {
		return None
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Internal
}
