// Package fingerprint produces a single stable identifier for a client
// environment by collecting a fixed set of environment-derived signals,
// canonicalizing them into one delimited string, and digesting it with
// SHA-256.
//
// The fingerprint recognises a device or environment without persisting
// any identifier: for an unchanged environment the same 64-character
// lowercase hex string comes back on every computation, and changing any
// single signal changes the result with overwhelming probability. Typical
// uses are fraud detection, analytics, and bot mitigation. The package
// deliberately does not store or compare fingerprints, defend against
// signal spoofing, or version fingerprints across signal-set changes.
//
// # Architecture
//
// The pipeline is three phases over a fixed, ordered provider set:
//
//   - Dispatch — every provider starts on its own future before any is
//     awaited, so waits on slow host resources (font enumeration, image
//     encoding, audio capture) overlap in time.
//   - Join — providers are awaited in declared index order with a
//     per-signal deadline; a provider that errors, panics, or misses its
//     deadline resolves to the "N/A" sentinel. Placement in the canonical
//     string is governed only by declared order, never completion time.
//   - Finalize — the ordered values are joined with '-' and hashed; the
//     digest is the fingerprint.
//
// There is no failure exit: even a host where every signal is unavailable
// yields a valid fingerprint built from sentinels. The only returned error
// is cancellation of the caller's context.
//
// The fourteen signals, in canonical order: user agent, screen geometry,
// timezone, language, platform, tracking preference, logical processor
// count, cookie support, plugin list, touch capability, font families,
// rendered-image hash, graphics renderer/vendor, and audio spectrum. The
// rendered image is compressed through the non-cryptographic hash in
// package bufhash before joining.
//
// # Usage
//
// Fingerprint the local host:
//
//	fp, err := fingerprint.Compute(ctx)
//
// Fingerprint a client-reported environment with custom settings:
//
//	gen := fingerprint.New(
//	    fingerprint.WithEnvironment(hostenv.Static{UA: reported.UserAgent, /* … */}),
//	    fingerprint.WithTimeout(500*time.Millisecond),
//	    fingerprint.WithLogger(log),
//	)
//	fp, err := gen.Compute(ctx)
//
// Signals exposes the resolved (name, value) pairs for diagnostics; the
// canonical string is one-way and is never parsed back.
package fingerprint
