// Package rop defines Result[T], the success/failure value every combinator in
// this module consumes and produces, and CapturedFailure, the uniform error
// that Capture turns returned errors and panics into.
//
// Highlights:
// - Success/Fail/Cancel: construct Result[T]
// - Forward: re-type a failure keeping its identity
// - IsFailure: the short-circuit check used by guard
// - Capture: run a function inside a failure boundary
package rop
