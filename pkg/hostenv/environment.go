package hostenv

import (
	"context"
	"image/color"
)

// Environment exposes the host attributes the fingerprint providers read.
// It is passed explicitly into every provider so that tests and
// server-side callers can substitute synthetic environments; nothing in
// the pipeline reaches for ambient global state.
//
// Attribute readers either return the value directly, report absence with
// a second boolean, or return an error (conventionally ErrUnavailable)
// when the host does not expose the attribute at all. Providers translate
// every absence into the pipeline's sentinel; implementations never need
// to do that themselves.
type Environment interface {
	// UserAgent returns the environment's identity string.
	UserAgent() string

	// Screen returns the display geometry in pixels.
	Screen() (width, height int, err error)

	// Timezone returns the resolved time-zone name.
	Timezone() (string, error)

	// Language returns the negotiated language tag.
	Language() (string, error)

	// Platform returns the platform string.
	Platform() (string, error)

	// DoNotTrack returns the tracking preference and whether the host
	// exposes one.
	DoNotTrack() (string, bool)

	// HardwareConcurrency returns the logical processor count and whether
	// it is readable.
	HardwareConcurrency() (int, bool)

	// CookiesEnabled reports cookie support.
	CookiesEnabled() bool

	// Plugins returns installed plugin names, possibly with duplicates and
	// possibly empty.
	Plugins() []string

	// TouchSupport reports touch capability and the maximum number of
	// simultaneous touch points.
	TouchSupport() (supported bool, maxTouchPoints int)

	// Fonts enumerates distinct installed font family names once the
	// host's font subsystem is ready. It blocks until readiness or ctx
	// cancellation.
	Fonts(ctx context.Context) ([]string, error)

	// Canvas creates a fresh offscreen 2-D drawing surface of the given
	// size. Each call must return an independent surface; the caller owns
	// it for the duration of one signal collection.
	Canvas(width, height int) (Surface, error)

	// Renderer returns the 3-D graphics renderer and vendor identifiers
	// from the host's diagnostic extension.
	Renderer() (renderer, vendor string, err error)

	// AudioSamples captures frequency-domain samples from the host's
	// offline audio graph.
	AudioSamples(ctx context.Context) ([]byte, error)
}

// Surface is the offscreen 2-D drawing surface the image signal renders
// its fixed scene onto.
type Surface interface {
	FillRect(x, y, w, h int, c color.Color)
	DrawText(text string, x, y int, c color.Color)
	EncodePNG() ([]byte, error)
}
