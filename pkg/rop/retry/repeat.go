package retry

// Predicate accepts or rejects a produced result.
type Predicate[T any] func(T) bool

// Repeat calls f until until accepts its result and returns that result.
// A nil until accepts the first result, as in Do.
func Repeat[R any](f func() R, until Predicate[R]) func() R {
	if until == nil {
		until = Always[R]
	}
	return func() R {
		for {
			res := f()
			if until(res) {
				return res
			}
		}
	}
}

// Repeat1 is Repeat for a unary producer; the same argument is passed on every attempt.
func Repeat1[A, R any](f func(A) R, until Predicate[R]) func(A) R {
	return func(a A) R {
		return Repeat(func() R { return f(a) }, until)()
	}
}

func Repeat2[A, B, R any](f func(A, B) R, until Predicate[R]) func(A, B) R {
	return func(a A, b B) R {
		return Repeat(func() R { return f(a, b) }, until)()
	}
}

// Always accepts every result.
func Always[T any](T) bool {
	return true
}

// Never rejects every result; Repeat with Never loops forever.
func Never[T any](T) bool {
	return false
}
