// Package audiosynth implements the offline audio graph behind the audio
// signal: a fixed triangle-wave oscillator analysed into byte-valued
// frequency-domain samples.
//
// The graph is entirely synthetic — no audio device, no playback, no
// shared state. One analysis frame is synthesised at a fixed frequency and
// sample rate, windowed, transformed with a real FFT, and each bin's
// magnitude is mapped from a fixed decibel range onto a byte, mirroring
// how byte frequency data is conventionally exposed by audio analysers.
// The resulting byte slice is deterministic and is rendered by the audio
// provider as a comma-joined decimal string.
package audiosynth
