// Package guard turns functions that may fail into total functions returning
// rop.Result.
//
// A guarded function takes its arguments as rop.Result values. Arguments are
// scanned left to right and the first failed one is returned unchanged
// (re-typed via rop.Forward) without calling the wrapped function. Otherwise
// the function runs inside rop.Capture, so returned errors and panics come
// back as Fail(*rop.CapturedFailure). Callers chaining guarded functions pass
// the Results through as they are, without unwrapping them first.
//
// Highlights:
// - Guard0..Guard3: wrap func(...) (R, error) of fixed arity
// - GuardN: wrap a variadic func(...T) (R, error)
// - Lift1..Lift3: wrap plain functions whose only failure mode is a panic
package guard
