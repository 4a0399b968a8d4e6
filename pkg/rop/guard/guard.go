package guard

import "github.com/ib-77/ropfx/pkg/rop"

// firstFailure returns the first argument that is not a success, re-typed to R.
func firstFailure[T, R any](args ...rop.Result[T]) (rop.Result[R], bool) {
	for _, a := range args {
		if !a.IsSuccess() {
			return rop.Forward[T, R](a), true
		}
	}
	return rop.Result[R]{}, false
}

func Guard0[R any](f func() (R, error)) func() rop.Result[R] {
	return func() rop.Result[R] {
		return rop.Capture(f)
	}
}

func Guard1[A, R any](f func(A) (R, error)) func(rop.Result[A]) rop.Result[R] {
	return func(a rop.Result[A]) rop.Result[R] {
		if failed, ok := firstFailure[A, R](a); ok {
			return failed
		}
		return rop.Capture(func() (R, error) {
			return f(a.Result())
		})
	}
}

func Guard2[A, B, R any](f func(A, B) (R, error)) func(rop.Result[A], rop.Result[B]) rop.Result[R] {
	return func(a rop.Result[A], b rop.Result[B]) rop.Result[R] {
		if failed, ok := firstFailure[A, R](a); ok {
			return failed
		}
		if failed, ok := firstFailure[B, R](b); ok {
			return failed
		}
		return rop.Capture(func() (R, error) {
			return f(a.Result(), b.Result())
		})
	}
}

func Guard3[A, B, C, R any](f func(A, B, C) (R, error)) func(rop.Result[A], rop.Result[B], rop.Result[C]) rop.Result[R] {
	return func(a rop.Result[A], b rop.Result[B], c rop.Result[C]) rop.Result[R] {
		if failed, ok := firstFailure[A, R](a); ok {
			return failed
		}
		if failed, ok := firstFailure[B, R](b); ok {
			return failed
		}
		if failed, ok := firstFailure[C, R](c); ok {
			return failed
		}
		return rop.Capture(func() (R, error) {
			return f(a.Result(), b.Result(), c.Result())
		})
	}
}

// GuardN wraps a variadic function. With no arguments f is called directly.
func GuardN[T, R any](f func(...T) (R, error)) func(...rop.Result[T]) rop.Result[R] {
	return func(args ...rop.Result[T]) rop.Result[R] {
		if failed, ok := firstFailure[T, R](args...); ok {
			return failed
		}

		values := make([]T, len(args))
		for i, a := range args {
			values[i] = a.Result()
		}
		return rop.Capture(func() (R, error) {
			return f(values...)
		})
	}
}

func Lift1[A, R any](f func(A) R) func(rop.Result[A]) rop.Result[R] {
	return Guard1(func(a A) (R, error) {
		return f(a), nil
	})
}

func Lift2[A, B, R any](f func(A, B) R) func(rop.Result[A], rop.Result[B]) rop.Result[R] {
	return Guard2(func(a A, b B) (R, error) {
		return f(a, b), nil
	})
}

func Lift3[A, B, C, R any](f func(A, B, C) R) func(rop.Result[A], rop.Result[B], rop.Result[C]) rop.Result[R] {
	return Guard3(func(a A, b B, c C) (R, error) {
		return f(a, b, c), nil
	})
}
