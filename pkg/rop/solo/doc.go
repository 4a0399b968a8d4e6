// Package solo contains single-value, synchronous primitives that operate on
// rop.Result[T] values already in hand.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: turn a failed check into a failure
// - Switch/Map: move from Result[In] to Result[Out] on success
// - Try: call a (Out, error) function inside rop.Capture
// - Tee: side effects on success
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
