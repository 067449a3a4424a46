package mayfail

import (
	"errors"

	goerrors "github.com/go-errors/errors"

	"github.com/next-trace/scg-mayfail/contract"
)

// ErrOperationFailed matches every *Failure with errors.Is.
var ErrOperationFailed = errors.New("operation failed")

// Failure is returned when a wrapped operation reports failure.
//
// Fields:
//   - Message:   the error description written by the target, verbatim
//   - Operation: symbol name of the wrapped method (diagnostics only)
//   - Stack:     call stack captured where the failure was detected
type Failure struct {
	message   string
	operation string
	trace     *goerrors.Error
}

// compile-time guarantee that *Failure implements contract.Failure
var _ contract.Failure = (*Failure)(nil)

// ------ standard error interface

// Error returns the target's message unchanged.
func (e *Failure) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.message
}

func (e *Failure) Is(target error) bool { return target == ErrOperationFailed }

// ------ getters

func (e *Failure) Message() string   { return e.message }
func (e *Failure) Operation() string { return e.operation }

// Stack returns a formatted stack trace, or nil if none was captured.
func (e *Failure) Stack() []byte {
	if e == nil || e.trace == nil {
		return nil
	}

	return e.trace.Stack()
}

// StackFrames returns the captured frames, or nil if none was captured.
func (e *Failure) StackFrames() []goerrors.StackFrame {
	if e == nil || e.trace == nil {
		return nil
	}

	return e.trace.StackFrames()
}

// ------ constructor

// NewFailure creates a Failure carrying message. The message is stored as-is,
// including the empty string.
func NewFailure(message string, opts ...Option) *Failure {
	e := &Failure{message: message}
	for _, o := range opts {
		o(e)
	}

	return e
}
