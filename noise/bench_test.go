package noise_test

import (
	"testing"

	"github.com/katalvlaran/dreamplet/noise"
)

// sink prevents the compiler from eliminating the benchmarked call.
var sink float64

// BenchmarkNoise1D measures single-octave 1D evaluation.
func BenchmarkNoise1D(b *testing.B) {
	var n = noise.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = n.Noise1D(float64(i) * 0.01)
	}
}

// BenchmarkNoise2D measures single-octave 2D evaluation — the per-pixel
// hot path of visualization loops.
func BenchmarkNoise2D(b *testing.B) {
	var n = noise.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = n.Noise2D(float64(i)*0.01, float64(i)*0.013)
	}
}

// BenchmarkNoise3D measures single-octave 3D evaluation.
func BenchmarkNoise3D(b *testing.B) {
	var n = noise.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = n.Noise3D(float64(i)*0.01, float64(i)*0.013, float64(i)*0.017)
	}
}

// BenchmarkFractal2D_4Octaves measures the default fBm configuration.
func BenchmarkFractal2D_4Octaves(b *testing.B) {
	var n = noise.New(1)
	var opts = noise.DefaultFractalOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink, _ = n.Fractal2D(float64(i)*0.01, float64(i)*0.013, opts)
	}
}
