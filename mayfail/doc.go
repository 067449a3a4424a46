// Package mayfail converts methods that report failure through a boolean
// result or a nil pointer, plus a trailing *string error description, into
// ordinary Go error returns.
//
// A Wrapper holds a non-owning reference to a target. Operations are passed
// as method expressions whose receiver parameter is the wrapper's capability
// type K:
//
//	w := mayfail.New[Params](plugin)
//	if err := mayfail.Do1(w, Params.SetValue, 42); err != nil {
//		return err
//	}
//	node, err := mayfail.Get1(w, Params.FindNode, "/Audio/volume")
//
// Key characteristics:
//   - The error description buffer is owned by the wrapper for one call and
//     appended after the forwarded arguments.
//   - The success test is chosen at compile time from the result shape
//     (Flag for bool, Ref for pointers, or any custom Outcome).
//   - Passing an operation declared on a capability the target does not
//     implement does not compile.
//   - Failures are *Failure values carrying the target's message verbatim and
//     match ErrOperationFailed with errors.Is.
package mayfail
