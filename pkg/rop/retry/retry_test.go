package retry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropfx/pkg/rop"
	"github.com/ib-77/ropfx/pkg/rop/guard"
)

// script returns a producer yielding values in order, counting calls.
func script[T any](values ...T) (func() T, *int) {
	calls := 0
	return func() T {
		v := values[calls]
		calls++
		return v
	}, &calls
}

func isOk[T any](r rop.Result[T]) bool {
	return r.IsSuccess()
}

func TestRepeat_AlwaysInvokesOnce(t *testing.T) {
	t.Parallel()

	f, calls := script(1, 2, 3)
	res := Repeat(f, Always[int])()

	assert.Equal(t, 1, res)
	assert.Equal(t, 1, *calls)
}

func TestRepeat_NilPredicateAcceptsFirst(t *testing.T) {
	t.Parallel()

	f, calls := script(5, 6)
	assert.Equal(t, 5, Repeat(f, nil)())
	assert.Equal(t, 1, *calls)

	g := func(a int) int { return a * 3 }
	assert.Equal(t, 9, Repeat1(g, nil)(3))
}

func TestRepeat_StopsAtFirstAccepted(t *testing.T) {
	t.Parallel()

	f, calls := script(-3, -1, 4, 9)
	res := Repeat(f, func(v int) bool { return v > 0 })()

	assert.Equal(t, 4, res)
	assert.Equal(t, 3, *calls)
}

func TestRepeat1_ReusesArgument(t *testing.T) {
	t.Parallel()

	var seen []string
	attempt := 0
	f := func(s string) int {
		seen = append(seen, s)
		attempt++
		return attempt
	}

	res := Repeat1(f, func(v int) bool { return v == 3 })("same")
	assert.Equal(t, 3, res)
	assert.Equal(t, []string{"same", "same", "same"}, seen)
}

func TestRepeat2(t *testing.T) {
	t.Parallel()

	n := 0
	add := func(a, b int) int {
		n++
		return a + b + n
	}
	res := Repeat2(add, func(v int) bool { return v >= 5 })(1, 1)
	assert.Equal(t, 5, res)
}

func TestRepeat_GuardedParseInt(t *testing.T) {
	t.Parallel()

	read, calls := script("abc", "12")
	readInt := guard.Guard0(func() (int, error) {
		return strconv.Atoi(read())
	})

	res := Repeat(readInt, isOk[int])()

	require.True(t, res.IsSuccess())
	assert.Equal(t, 12, res.Result())
	assert.Equal(t, 2, *calls)
	assert.NoError(t, res.Err())
}

func TestDo_Exhausted(t *testing.T) {
	t.Parallel()

	attempts := []int{}
	p := New(WithMaxAttempts(3), OnAttempt(func(a int) { attempts = append(attempts, a) }))

	n := 0
	last, err := Do(context.Background(), p, func(context.Context) int {
		n++
		return n
	}, Never[int])

	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 3, last)
	assert.Equal(t, []int{1, 2, 3}, attempts)
}

func TestDo_AcceptedBeforeCap(t *testing.T) {
	t.Parallel()

	n := 0
	last, err := Do(context.Background(), New(WithMaxAttempts(10)), func(context.Context) int {
		n++
		return n
	}, func(v int) bool { return v == 4 })

	require.NoError(t, err)
	assert.Equal(t, 4, last)
	assert.Equal(t, 4, n)
}

func TestDo_NilPolicyAndPredicate(t *testing.T) {
	t.Parallel()

	v, err := Do(context.Background(), nil, func(context.Context) string { return "x" }, nil)
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestDo_ContextCancelledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := Do(ctx, New(), func(context.Context) int {
		called = true
		return 0
	}, Never[int])

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDo_CancelDuringDelay(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Do(ctx, New(WithDelay(time.Hour)), func(context.Context) int { return 0 }, Never[int])

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDo_ContextAttemptsLimit(t *testing.T) {
	t.Parallel()

	ctx := WithAttemptsLimit(context.Background(), 2)
	assert.Equal(t, 2, GetAttemptsLimit(ctx, 7))
	assert.Equal(t, 7, GetAttemptsLimit(context.Background(), 7))

	n := 0
	_, err := Do(ctx, New(), func(context.Context) int { n++; return n }, Never[int])
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 2, n)

	// a policy cap wins over the context one
	n = 0
	_, err = Do(ctx, New(WithMaxAttempts(4)), func(context.Context) int { n++; return n }, Never[int])
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 4, n)
}

func TestDo_Logs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _ = Do(context.Background(), New(WithMaxAttempts(2), WithLogger(logger)),
		func(context.Context) int { return 0 }, Never[int])

	out := buf.String()
	assert.Contains(t, out, "retry rejected")
	assert.Contains(t, out, "retry exhausted")
	assert.Contains(t, out, "attempts=2")
}

func TestUntilOk_Success(t *testing.T) {
	t.Parallel()

	read, calls := script("x", "-5", "8")
	parse := guard.Guard1(strconv.Atoi)

	res := UntilOk(context.Background(), New(),
		func(context.Context) rop.Result[int] { return parse(rop.Success(read())) },
		func(v int) bool { return v > 0 })

	require.True(t, res.IsSuccess())
	assert.Equal(t, 8, res.Result())
	assert.Equal(t, 3, *calls)
}

func TestUntilOk_ExhaustedKeepsLastError(t *testing.T) {
	t.Parallel()

	last := errors.New("still bad")
	res := UntilOk(context.Background(), New(WithMaxAttempts(2)),
		func(context.Context) rop.Result[int] { return rop.Fail[int](last) }, nil)

	require.True(t, res.IsFailure())
	assert.False(t, res.IsCancel())
	assert.ErrorIs(t, res.Err(), ErrExhausted)
	assert.ErrorIs(t, res.Err(), last)
	assert.Len(t, rop.GetErrors(res.Err()), 2)
}

func TestUntilOk_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	res := UntilOk(ctx, New(), func(context.Context) rop.Result[int] {
		n++
		if n == 3 {
			cancel()
		}
		return rop.Fail[int](errors.New("nope"))
	}, nil)

	assert.True(t, res.IsCancel())
	assert.ErrorIs(t, res.Err(), context.Canceled)
	assert.Equal(t, 3, n)
}
