package retry

import (
	"context"
	"io"
	"log/slog"
	"time"
)

type OptionKey string

const AttemptsOptionKey OptionKey = "retry_attempts"

type MaxLimitOption struct {
	Value int
}

// WithAttemptsLimit returns a context carrying a per-call attempt cap. It is
// consulted only when the policy has no cap of its own.
func WithAttemptsLimit(ctx context.Context, maxAttempts int) context.Context {
	return context.WithValue(ctx, AttemptsOptionKey, MaxLimitOption{Value: maxAttempts})
}

func GetAttemptsLimit(ctx context.Context, defaultMaxAttempts int) int {
	option, ok := ctx.Value(AttemptsOptionKey).(MaxLimitOption)
	if ok {
		return option.Value
	}
	return defaultMaxAttempts
}

// Policy bounds and observes a retry loop. The zero Policy retries forever
// without delay.
type Policy struct {
	maxAttempts int
	delay       time.Duration
	logger      *slog.Logger
	onAttempt   func(attempt int)
}

type Option func(*Policy)

func New(opts ...Option) *Policy {
	p := &Policy{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithMaxAttempts caps the number of attempts; 0 means unbounded.
func WithMaxAttempts(n int) Option {
	return func(p *Policy) {
		if n < 0 {
			n = 0
		}
		p.maxAttempts = n
	}
}

func WithDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.delay = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Policy) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// OnAttempt registers a hook called before every attempt with its 1-based number.
func OnAttempt(hook func(attempt int)) Option {
	return func(p *Policy) {
		p.onAttempt = hook
	}
}

func (p *Policy) limit(ctx context.Context) int {
	if p.maxAttempts > 0 {
		return p.maxAttempts
	}
	return GetAttemptsLimit(ctx, 0)
}

func (p *Policy) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.logger
}
