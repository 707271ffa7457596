package async

import (
	"context"
	"fmt"
	"time"
)

// Future represents the eventual result of one dispatched collector.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Go starts fn in its own goroutine and returns a Future for its result.
// A panic inside fn is recovered and surfaced as an error joined with
// ErrPanic, so a misbehaving collector can never take down the pipeline.
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		// Early exit prevents doing work when the context is pre-canceled.
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the future completes or ctx is canceled, whichever
// comes first. On cancellation the zero value and the context error are
// returned; the underlying goroutine keeps running to completion.
func (f *Future[U]) Await(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout behaves like Await with an additional deadline. A
// non-positive timeout disables the deadline entirely and waits as long as
// the context allows. When the deadline fires first, the zero value and
// ErrTimeout are returned.
func (f *Future[U]) AwaitWithTimeout(ctx context.Context, timeout time.Duration) (U, error) {
	if timeout <= 0 {
		return f.Await(ctx)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future has settled, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
