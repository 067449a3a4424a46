package mayfail

import (
	"reflect"
	"runtime"
)

// ------ general form, any result shape

// Call invokes op on the wrapped target with a fresh error description
// appended as the last argument. If shape reports the result as a failure,
// Call returns the zero R and a *Failure carrying the description verbatim.
// Otherwise the result is returned unchanged.
func Call[K, R any, S Outcome[R]](w *Wrapper[K], shape S, op func(K, *string) R) (R, error) {
	return invoke(w, shape, op, func(t K, desc *string) R { return op(t, desc) })
}

// Call1 is Call for operations taking one argument.
func Call1[K, A1, R any, S Outcome[R]](w *Wrapper[K], shape S, op func(K, A1, *string) R, a1 A1) (R, error) {
	return invoke(w, shape, op, func(t K, desc *string) R { return op(t, a1, desc) })
}

// Call2 is Call for operations taking two arguments.
func Call2[K, A1, A2, R any, S Outcome[R]](
	w *Wrapper[K], shape S, op func(K, A1, A2, *string) R, a1 A1, a2 A2,
) (R, error) {
	return invoke(w, shape, op, func(t K, desc *string) R { return op(t, a1, a2, desc) })
}

// Call3 is Call for operations taking three arguments.
func Call3[K, A1, A2, A3, R any, S Outcome[R]](
	w *Wrapper[K], shape S, op func(K, A1, A2, A3, *string) R, a1 A1, a2 A2, a3 A3,
) (R, error) {
	return invoke(w, shape, op, func(t K, desc *string) R { return op(t, a1, a2, a3, desc) })
}

// Call4 is Call for operations taking four arguments.
func Call4[K, A1, A2, A3, A4, R any, S Outcome[R]](
	w *Wrapper[K], shape S, op func(K, A1, A2, A3, A4, *string) R, a1 A1, a2 A2, a3 A3, a4 A4,
) (R, error) {
	return invoke(w, shape, op, func(t K, desc *string) R { return op(t, a1, a2, a3, a4, desc) })
}

// ------ boolean shape

// Do invokes an operation that reports failure by returning false.
func Do[K any](w *Wrapper[K], op func(K, *string) bool) error {
	_, err := invoke(w, Flag{}, op, func(t K, desc *string) bool { return op(t, desc) })
	return err
}

func Do1[K, A1 any](w *Wrapper[K], op func(K, A1, *string) bool, a1 A1) error {
	_, err := invoke(w, Flag{}, op, func(t K, desc *string) bool { return op(t, a1, desc) })
	return err
}

func Do2[K, A1, A2 any](w *Wrapper[K], op func(K, A1, A2, *string) bool, a1 A1, a2 A2) error {
	_, err := invoke(w, Flag{}, op, func(t K, desc *string) bool { return op(t, a1, a2, desc) })
	return err
}

func Do3[K, A1, A2, A3 any](w *Wrapper[K], op func(K, A1, A2, A3, *string) bool, a1 A1, a2 A2, a3 A3) error {
	_, err := invoke(w, Flag{}, op, func(t K, desc *string) bool { return op(t, a1, a2, a3, desc) })
	return err
}

func Do4[K, A1, A2, A3, A4 any](
	w *Wrapper[K], op func(K, A1, A2, A3, A4, *string) bool, a1 A1, a2 A2, a3 A3, a4 A4,
) error {
	_, err := invoke(w, Flag{}, op, func(t K, desc *string) bool { return op(t, a1, a2, a3, a4, desc) })
	return err
}

// ------ pointer shape

// Get invokes an operation that reports failure by returning a nil pointer.
// On success the pointer is returned as-is.
func Get[K, V any](w *Wrapper[K], op func(K, *string) *V) (*V, error) {
	return invoke(w, Ref[V]{}, op, func(t K, desc *string) *V { return op(t, desc) })
}

func Get1[K, A1, V any](w *Wrapper[K], op func(K, A1, *string) *V, a1 A1) (*V, error) {
	return invoke(w, Ref[V]{}, op, func(t K, desc *string) *V { return op(t, a1, desc) })
}

func Get2[K, A1, A2, V any](w *Wrapper[K], op func(K, A1, A2, *string) *V, a1 A1, a2 A2) (*V, error) {
	return invoke(w, Ref[V]{}, op, func(t K, desc *string) *V { return op(t, a1, a2, desc) })
}

func Get3[K, A1, A2, A3, V any](w *Wrapper[K], op func(K, A1, A2, A3, *string) *V, a1 A1, a2 A2, a3 A3) (*V, error) {
	return invoke(w, Ref[V]{}, op, func(t K, desc *string) *V { return op(t, a1, a2, a3, desc) })
}

func Get4[K, A1, A2, A3, A4, V any](
	w *Wrapper[K], op func(K, A1, A2, A3, A4, *string) *V, a1 A1, a2 A2, a3 A3, a4 A4,
) (*V, error) {
	return invoke(w, Ref[V]{}, op, func(t K, desc *string) *V { return op(t, a1, a2, a3, a4, desc) })
}

// invoke owns the error description for exactly one call. The description is
// only read on the failure path.
func invoke[K, R any, S Outcome[R]](w *Wrapper[K], shape S, op any, call func(K, *string) R) (R, error) {
	var desc string

	result := call(w.target, &desc)
	if shape.Succeeded(result) {
		return result, nil
	}

	var zero R

	return zero, NewFailure(desc, WithOperation(operationName(op)), WithStack(2))
}

func operationName(op any) string {
	fn := runtime.FuncForPC(reflect.ValueOf(op).Pointer())
	if fn == nil {
		return ""
	}

	return fn.Name()
}
