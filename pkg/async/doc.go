// Package async provides the generic futures the fingerprint orchestrator
// dispatches its signal collectors on.
//
// Go starts the supplied function in its own goroutine and immediately
// returns a *Future. All collectors are started before any is awaited, so
// their waits overlap in time; the caller then joins them one by one with
// Await or AwaitWithTimeout. Completion order never matters to the caller —
// joining happens in whatever order the caller chooses, and each Future
// holds its own result.
//
// Two behaviours exist specifically for the fingerprint failure policy:
//
//   - A panic inside the function is recovered and reported as an error
//     joined with ErrPanic, so one collector can never abort the pipeline.
//   - AwaitWithTimeout bounds how long a single collector may stall; on
//     expiry it returns ErrTimeout and the caller substitutes its fallback
//     value. A non-positive timeout waits indefinitely.
//
// # Usage
//
//	future := async.Go(ctx, func(ctx context.Context) (string, error) {
//	    return readSlowHostAttribute(ctx)
//	})
//	// dispatch more futures, then:
//	value, err := future.AwaitWithTimeout(ctx, time.Second)
//
// Futures are lightweight wrappers around a goroutine and a channel; they
// are not reusable and have no cancellation of their own — cancel the
// context passed to Go to stop cooperative work early.
package async
