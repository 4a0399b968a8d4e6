// Package pipe composes unary functions.
//
// Pipe(f1, f2, f3)(x) == f3(f2(f1(x))). Stages are opaque: partially applied
// functions from package curry and Result-typed stages from package guard
// are ordinary stages. Pipe does not intercept panics; guard the stages that
// need it.
//
// Key operations:
// - Pipe/Run: left-to-right composition, identity when empty
// - Compose: right-to-left composition
// - Then: typed two-stage composition across types
// - Tap: run a side effect and pass the value through
package pipe
