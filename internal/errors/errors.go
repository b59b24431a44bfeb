// Package errors defines the closed set of failure kinds reported by the
// validator and the describer, so callers can branch on the kind instead of
// matching error text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ConnectionError indicates the store could not be opened or reached.
	ConnectionError Kind = "connection_error"
	// ParseError indicates the input file is missing or not in the expected shape.
	ParseError Kind = "parse_error"
	// ExecutionError indicates a store-level operational failure (bad SQL, missing table, ...).
	ExecutionError Kind = "execution_error"
	// ComparisonMismatch indicates the actual row count differs from the expectation.
	ComparisonMismatch Kind = "comparison_mismatch"
	// UnexpectedError covers every other failure while running a single query.
	UnexpectedError Kind = "unexpected_error"
	// OutputError indicates a report or description file could not be written.
	OutputError Kind = "output_error"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Detail returns the most specific text available: the wrapped error's text
// if there is one, the message otherwise.
func (e *E) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the first *E in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
