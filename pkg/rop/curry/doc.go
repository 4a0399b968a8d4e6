// Package curry allows a function of known arity to be applied progressively,
// a few arguments at a time, until enough arguments have been supplied.
//
// Arity is passed explicitly to New; nothing is derived by reflection.
// Func values are immutable: Apply always builds a new argument list, so a
// partially applied Func can be completed differently by several callers.
//
// Highlights:
// - New/Apply: accumulate arguments, invoke the target once saturated
// - Call: apply and get the plain result once saturated
// - Done/Value: inspect a completed call
// - Curry2/Curry3: typed nested closures for fixed-arity functions
package curry
