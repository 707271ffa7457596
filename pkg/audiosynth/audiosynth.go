package audiosynth

import (
	"context"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Fixed graph parameters. Changing any of them changes every audio signal
// ever produced, so they are build constants, not configuration.
const (
	SampleRate = 44100
	Frequency  = 10000.0
	fftSize    = 2048
)

// BinCount is the number of frequency-domain bytes ByteFrequencyData
// returns (half the analysis frame, as in a standard real FFT).
const BinCount = fftSize / 2

// Decibel range mapped onto the 0..255 byte scale.
const (
	minDecibels = -100.0
	maxDecibels = -30.0
)

// Graph is an offline audio graph: a fixed triangle-wave oscillator feeding
// a frequency-domain analyser. It touches no audio device and owns all of
// its buffers, so each fingerprint computation can build and discard one
// without contention.
type Graph struct {
	fft *fourier.FFT
}

// NewGraph constructs the fixed oscillator/analyser graph.
func NewGraph() *Graph {
	return &Graph{fft: fourier.NewFFT(fftSize)}
}

// ByteFrequencyData renders one analysis frame of the oscillator output and
// returns its frequency-domain magnitudes as bytes: each bin's magnitude is
// converted to decibels and mapped linearly from [minDecibels, maxDecibels]
// onto [0, 255], clamping outside the range. The output is deterministic —
// the same bytes on every call, every platform.
func (g *Graph) ByteFrequencyData(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frame := make([]float64, fftSize)
	for i := range frame {
		frame[i] = triangleSample(i)
	}
	window.Blackman(frame)

	coeffs := g.fft.Coefficients(nil, frame)

	out := make([]byte, BinCount)
	for i := 0; i < BinCount; i++ {
		mag := cmplx.Abs(coeffs[i]) / fftSize
		db := 20 * math.Log10(mag) // -Inf for silent bins, clamps to 0 below

		scaled := 255 * (db - minDecibels) / (maxDecibels - minDecibels)
		switch {
		case scaled < 0 || math.IsNaN(scaled):
			out[i] = 0
		case scaled > 255:
			out[i] = 255
		default:
			out[i] = byte(math.Round(scaled))
		}
	}
	return out, nil
}

// triangleSample returns sample i of a unit-amplitude triangle wave at the
// fixed frequency and sample rate.
func triangleSample(i int) float64 {
	phase := math.Mod(float64(i)*Frequency/SampleRate, 1.0)
	if phase < 0.5 {
		return 4*phase - 1
	}
	return 3 - 4*phase
}
