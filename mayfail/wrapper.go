package mayfail

import (
	"reflect"
)

// Wrapper invokes operations on a target of capability type K and converts
// boolean/nil failures into errors.
//
// The wrapper keeps the target reference for its lifetime and holds no other
// state. It is not safe for concurrent calls on the same target; callers
// serialize access themselves.
type Wrapper[K any] struct {
	target K
}

// New returns a Wrapper around target.
//
// K is usually an interface naming the capabilities the caller needs, so
// New[Params](plugin) only compiles when plugin implements Params.
// New panics if target is nil.
func New[K any](target K) *Wrapper[K] {
	if isNil(target) {
		panic("mayfail: New called with a nil target")
	}

	return &Wrapper[K]{target: target}
}

// Target returns the wrapped reference.
func (w *Wrapper[K]) Target() K { return w.target }

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
