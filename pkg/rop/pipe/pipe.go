package pipe

import "slices"

// Identity returns its argument.
func Identity[T any](v T) T {
	return v
}

// Pipe returns a function applying stages left to right. With no stages it
// returns Identity.
func Pipe[T any](stages ...func(T) T) func(T) T {
	if len(stages) == 0 {
		return Identity[T]
	}

	fns := slices.Clone(stages)
	return func(value T) T {
		for _, fn := range fns {
			value = fn(value)
		}
		return value
	}
}

// Run threads value through stages.
func Run[T any](value T, stages ...func(T) T) T {
	return Pipe(stages...)(value)
}

// Compose applies stages right to left: Compose(f, g)(x) == f(g(x)).
func Compose[T any](stages ...func(T) T) func(T) T {
	reversed := slices.Clone(stages)
	slices.Reverse(reversed)
	return Pipe(reversed...)
}

// Then is left-to-right composition across types: Then(f, g)(x) == g(f(x)).
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Tap returns a stage calling fn with the value and returning it unchanged.
func Tap[T any](fn func(T)) func(T) T {
	return func(v T) T {
		fn(v)
		return v
	}
}
