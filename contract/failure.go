// Package contract exposes the minimal failure interface used by other packages.
//
// Callers that only need to inspect a converted failure should depend on this
// interface rather than on the concrete mayfail.Failure type.
package contract

// Failure is the stable surface of an operation that reported failure
// through the boolean/nil convention.
//
// Implementations must:
//   - Return the target's error description verbatim from Error() and Message().
//   - Never augment the message with wrapper-generated text.
type Failure interface {
	error
	// Message is the error description written by the target.
	Message() string
	// Operation names the wrapped method, or "" when unknown.
	Operation() string
}
