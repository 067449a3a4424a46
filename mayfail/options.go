package mayfail

import (
	goerrors "github.com/go-errors/errors"
)

// Option configures a Failure during construction via NewFailure().
type Option func(*Failure)

// WithOperation records the name of the wrapped method.
func WithOperation(name string) Option { return func(e *Failure) { e.operation = name } }

// WithStack captures the call stack. skip 0 starts at the caller of WithStack.
// The stack is captured when WithStack is called, not when the option is applied.
func WithStack(skip int) Option {
	trace := goerrors.Wrap("failure site", skip+1)
	return func(e *Failure) { e.trace = trace }
}
