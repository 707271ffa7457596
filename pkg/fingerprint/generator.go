package fingerprint

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pixelbound/clientprint/pkg/async"
	"github.com/pixelbound/clientprint/pkg/canonical"
	"github.com/pixelbound/clientprint/pkg/digest"
	"github.com/pixelbound/clientprint/pkg/hostenv"
)

// sentinel is the value substituted for any signal that cannot be obtained.
const sentinel = canonical.Sentinel

// Signal is one resolved environment attribute, post buffer-to-text
// reduction. Value is never empty ambiguously: absence is always the
// literal sentinel (the plugin signal renders an empty list as "").
type Signal struct {
	Name  string
	Value string
}

// Generator computes fingerprints over a fixed signal set. It holds no
// mutable state across computations, so a single Generator may serve
// concurrent Compute calls; every invocation creates its own offscreen
// resources through the environment.
type Generator struct {
	env     hostenv.Environment
	log     *slog.Logger
	timeout time.Duration
}

// New creates a Generator. Without options it reads the local host
// environment, logs nothing, and bounds each signal collector by
// DefaultTimeout.
func New(opts ...Option) *Generator {
	g := &Generator{
		env:     hostenv.System(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Compute collects every signal, joins them into the canonical string, and
// returns its digest: a 64-character lowercase hex fingerprint.
//
// Individual signal failures never fail the computation — they degrade to
// sentinels — so even a fully degraded environment yields a valid
// fingerprint. The only error condition is cancellation of ctx before the
// signal set resolves.
func (g *Generator) Compute(ctx context.Context) (string, error) {
	signals, err := g.Signals(ctx)
	if err != nil {
		return "", err
	}

	values := make([]string, len(signals))
	for i, s := range signals {
		values[i] = s.Value
	}
	return digest.Hex(canonical.Join(values)), nil
}

// Signals resolves the full signal set in canonical order.
//
// All collectors are dispatched before any is awaited, so slow host reads
// overlap in time; results are then joined strictly by declared index, so
// a signal's position never depends on when its collector finished. A
// collector that errors, panics, or outlives the per-signal deadline
// resolves to the sentinel.
func (g *Generator) Signals(ctx context.Context) ([]Signal, error) {
	log := g.log.With(slog.String("run_id", uuid.NewString()))

	futures := make([]*async.Future[string], len(providers))
	for i, p := range providers {
		collect := p.Collect
		futures[i] = async.Go(ctx, func(ctx context.Context) (string, error) {
			return collect(ctx, g.env)
		})
	}

	signals := make([]Signal, len(providers))
	for i, f := range futures {
		value, err := f.AwaitWithTimeout(ctx, g.timeout)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			log.DebugContext(ctx, "signal unavailable",
				slog.String("signal", providers[i].Name),
				slog.Any("error", err),
			)
			value = sentinel
		}
		signals[i] = Signal{Name: providers[i].Name, Value: value}
		log.DebugContext(ctx, "signal resolved",
			slog.String("signal", providers[i].Name),
			slog.Int("position", i),
		)
	}
	return signals, nil
}

// Compute is a convenience over New().Compute for fingerprinting the local
// host with default settings.
func Compute(ctx context.Context) (string, error) {
	return New().Compute(ctx)
}
