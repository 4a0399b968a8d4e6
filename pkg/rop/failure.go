package rop

import (
	"context"
	"errors"
	"fmt"
)

var ErrEmptyResult = errors.New("rop: empty result")

// CapturedFailure is the single error kind produced by Capture. It keeps the
// message of whatever went wrong and, when available, the original error.
type CapturedFailure struct {
	Message string
	Cause   error
}

func (f *CapturedFailure) Error() string {
	return f.Message
}

func (f *CapturedFailure) Unwrap() error {
	return f.Cause
}

// Captured converts err into a *CapturedFailure. An err that already is one is
// returned as is.
func Captured(err error) *CapturedFailure {
	if cf, ok := err.(*CapturedFailure); ok {
		return cf
	}
	return &CapturedFailure{Message: err.Error(), Cause: err}
}

func capturedPanic(v any) *CapturedFailure {
	if err, ok := v.(error); ok {
		return Captured(err)
	}
	return &CapturedFailure{Message: fmt.Sprint(v)}
}

// Capture runs f inside a failure boundary: a returned error or a panic becomes
// Fail(*CapturedFailure), anything else Success.
func Capture[R any](f func() (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Fail[R](capturedPanic(v))
		}
	}()

	out, err := f()
	if err != nil {
		return Fail[R](Captured(err))
	}
	return Success(out)
}

// GetErrors flattens an errors.Join tree by one level.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
