package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ib-77/ropfx/pkg/rop"
)

var ErrExhausted = errors.New("retry: attempts exhausted")

// Do calls f until until accepts its result, the attempt cap is reached or ctx
// is done. The last produced value is returned in every case, together with
// ErrExhausted or ctx.Err() when the loop gave up.
func Do[R any](ctx context.Context, p *Policy, f func(ctx context.Context) R, until Predicate[R]) (R, error) {
	if p == nil {
		p = New()
	}
	if until == nil {
		until = Always[R]
	}

	limit := p.limit(ctx)
	logger := p.log()

	var last R
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}
		if p.onAttempt != nil {
			p.onAttempt(attempt)
		}

		last = f(ctx)
		if until(last) {
			logger.DebugContext(ctx, "retry accepted", slog.Int("attempt", attempt))
			return last, nil
		}
		logger.DebugContext(ctx, "retry rejected", slog.Int("attempt", attempt))

		if limit > 0 && attempt >= limit {
			logger.WarnContext(ctx, "retry exhausted", slog.Int("attempts", attempt))
			return last, fmt.Errorf("%w after %d attempts", ErrExhausted, attempt)
		}
		if !sleep(ctx, p.delay) {
			return last, ctx.Err()
		}
	}
}

// UntilOk retries a Result producer until it yields a success whose value
// passes until. A nil until accepts any success. Cancellation gives Cancel,
// exhaustion gives Fail with ErrExhausted joined with the last failure.
func UntilOk[T any](ctx context.Context, p *Policy,
	f func(ctx context.Context) rop.Result[T], until Predicate[T]) rop.Result[T] {

	accept := func(r rop.Result[T]) bool {
		return r.IsSuccess() && (until == nil || until(r.Result()))
	}

	res, err := Do(ctx, p, f, accept)
	switch {
	case err == nil:
		return res
	case rop.IsCancellationError(err):
		return rop.Cancel[T](err)
	default:
		return rop.Fail[T](errors.Join(err, res.Err()))
	}
}
