package setexpr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/runeclass"
)

// Errors returned by the evaluator, wrapped in an *Error.
var (
	ErrSyntax    = errors.New("syntax error")
	ErrUndefined = errors.New("undefined character set")
)

// Error is an evaluation error, located at a span of the input line.
type Error struct {
	Err  error
	Span runeclass.Span
}

func errorf(err error, span runeclass.Span, format string, args ...interface{}) *Error {
	return &Error{
		Err:  fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)),
		Span: span,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at %v", e.Err, e.Span)
}

func (e *Error) Unwrap() error {
	return e.Err
}
