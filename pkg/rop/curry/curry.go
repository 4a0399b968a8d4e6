package curry

import (
	"errors"
	"fmt"
	"slices"
)

var ErrPending = errors.New("curry: arguments pending")

// Func is a partially applied call of target. Once arity arguments have been
// supplied the target is called and the Func holds its value.
type Func[T, R any] struct {
	target func(args ...T) R
	arity  int
	args   []T
	done   bool
	value  R
}

// New wraps target, which expects exactly arity arguments. It panics on a
// negative arity or a nil target.
func New[T, R any](arity int, target func(args ...T) R) Func[T, R] {
	if arity < 0 {
		panic(fmt.Sprintf("curry: negative arity %d", arity))
	}
	if target == nil {
		panic("curry: nil target")
	}
	return Func[T, R]{target: target, arity: arity}
}

// Apply appends args. When at least arity arguments have accumulated, the
// target is called with the first arity of them and the returned Func is
// done; extra arguments are ignored. Applying to a done Func returns it
// unchanged without calling the target again.
func (f Func[T, R]) Apply(args ...T) Func[T, R] {
	if f.done {
		return f
	}

	next := Func[T, R]{
		target: f.target,
		arity:  f.arity,
		args:   append(append([]T(nil), f.args...), args...),
	}
	if len(next.args) >= next.arity {
		next.args = next.args[:next.arity:next.arity]
		next.value = next.target(next.args...)
		next.done = true
	}
	return next
}

// Call applies args and returns the target's result directly when they
// saturate the Func. It reports false, and a zero value, while arguments are
// still missing.
func (f Func[T, R]) Call(args ...T) (R, bool) {
	next := f.Apply(args...)
	if !next.done {
		var zero R
		return zero, false
	}
	return next.value, true
}

// Done reports whether the target has been called.
func (f Func[T, R]) Done() bool {
	return f.done
}

// Value returns the target's result, or ErrPending while arguments are missing.
func (f Func[T, R]) Value() (R, error) {
	if !f.done {
		var zero R
		return zero, fmt.Errorf("%w: %d of %d supplied", ErrPending, len(f.args), f.arity)
	}
	return f.value, nil
}

func (f Func[T, R]) Arity() int {
	return f.arity
}

// Pending returns how many arguments are still missing.
func (f Func[T, R]) Pending() int {
	return f.arity - len(f.args)
}

// Args returns a copy of the accumulated arguments.
func (f Func[T, R]) Args() []T {
	return slices.Clone(f.args)
}
