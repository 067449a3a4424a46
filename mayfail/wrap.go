package mayfail

import (
	"errors"
)

// Message extracts the target's error description from err.
//
// Behavior:
//   - nil input => "", false
//   - a *Failure anywhere in the chain => its message, true
//   - any other error => "", false
func Message(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var f *Failure
	if errors.As(err, &f) {
		return f.message, true
	}

	return "", false
}

// Must returns result when err is nil and panics with err otherwise.
// It suits harness code that prefers unwinding over checking each call:
//
//	node := mayfail.Must(mayfail.Get1(w, Params.FindNode, "/Audio/volume"))
func Must[R any](result R, err error) R {
	if err != nil {
		panic(err)
	}

	return result
}

// MustDo panics with err when it is not nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}
