package mayfail

// Outcome is implemented by result shapes. Succeeded reports whether a value
// returned by a wrapped operation signals success.
//
// New shapes are added by declaring a type that implements Outcome for the
// result type; existing call sites are unaffected.
type Outcome[R any] interface {
	Succeeded(result R) bool
}

// Flag is the shape of operations returning bool: true is success.
type Flag struct{}

func (Flag) Succeeded(ok bool) bool { return ok }

// Ref is the shape of operations returning *V: non-nil is success.
type Ref[V any] struct{}

func (Ref[V]) Succeeded(p *V) bool { return p != nil }

// compile-time guarantee that the built-in shapes satisfy Outcome
var (
	_ Outcome[bool]      = Flag{}
	_ Outcome[*struct{}] = Ref[struct{}]{}
)
