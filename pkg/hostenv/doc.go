// Package hostenv defines the boundary between the fingerprint pipeline
// and the host environment it describes.
//
// Every signal provider reads exclusively through the Environment
// interface, which exposes exactly the attributes the fingerprint is built
// from: identity string, screen geometry, timezone, language, platform,
// tracking preference, processor count, cookie support, plugins, touch
// capability, installed fonts, an offscreen 2-D drawing surface, 3-D
// renderer diagnostics, and offline audio capture. Passing the environment
// explicitly — rather than reading process-global state inside providers —
// is what makes the pipeline deterministic to test and safe to run
// re-entrantly.
//
// Two implementations ship with the package:
//
//   - System reads the local host: runtime and OS attributes, locale and
//     timezone variables, the DO_NOT_TRACK convention, the platform's font
//     directories, plus fully synthetic raster and audio backends.
//     Attributes a bare host has no notion of read as unavailable.
//   - Static is a plain value struct for caller-supplied attributes — the
//     vehicle for fingerprinting client-reported environments on a server,
//     and for tests. Its zero value is a fully degraded environment.
//
// Readers signal absence either with an (value, ok) pair or by returning
// ErrUnavailable; the providers translate both into the canonical
// sentinel, so implementations never produce sentinel text themselves.
package hostenv
