package rop

import "time"

// Valued is anything holding a value produced at a known time.
type Valued[T any] interface {
	Result() T
	CreatedAt() time.Time
}

// WithError is the read side of a success/failure outcome.
type WithError[T any] interface {
	Valued[T]
	Err() error
	IsSuccess() bool
	IsFailure() bool
}

// WithCancel adds the cancelled variant. Result[T] implements it; consumers
// that only render outcomes accept it instead of a concrete Result.
type WithCancel[T any] interface {
	WithError[T]
	IsCancel() bool
}

var _ WithCancel[struct{}] = Result[struct{}]{}
