package fingerprint

import (
	"log/slog"
	"time"

	"github.com/pixelbound/clientprint/pkg/hostenv"
)

// DefaultTimeout bounds how long a single signal collector may run before
// its value degrades to the sentinel. Generous on purpose: font
// enumeration walks the filesystem and should normally win by a wide
// margin.
const DefaultTimeout = time.Second

// Option configures a Generator.
type Option func(*Generator)

// WithEnvironment substitutes the environment the signals are read from.
// Nil environments are ignored.
func WithEnvironment(env hostenv.Environment) Option {
	return func(g *Generator) {
		if env != nil {
			g.env = env
		}
	}
}

// WithLogger enables debug logging of signal resolution. Nil loggers are
// ignored.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithTimeout sets the per-signal deadline. A non-positive value disables
// the deadline entirely: a collector that never settles then stalls the
// computation indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}
