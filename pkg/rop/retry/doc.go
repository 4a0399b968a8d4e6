// Package retry invokes a producer until a predicate accepts its result.
//
// Repeat, Repeat1 and Repeat2 loop without limit: no attempt cap, no backoff,
// no timeout. They are meant for "keep asking until the input parses" loops
// and will never return if the predicate never accepts.
//
// Do and UntilOk take a Policy and a context and can give up:
// - WithMaxAttempts: stop after n attempts with ErrExhausted
// - WithDelay: sleep between attempts, honouring ctx
// - WithLogger/OnAttempt: observe attempts
// - WithAttemptsLimit: per-call attempt cap carried in the context
package retry
