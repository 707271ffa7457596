// Package raster provides the offscreen 2-D drawing surface behind the
// rendered-image signal.
//
// A Surface wraps an in-memory RGBA image and exposes exactly the
// primitives the fixed fingerprint scene needs — rectangle fills with
// alpha compositing, text in a fixed bitmap face, and a lossless PNG
// encode. Rendering is fully deterministic: the same sequence of draw
// calls on a fresh surface always encodes to the same bytes, which is what
// lets the image signal contribute a stable token to the fingerprint.
package raster
