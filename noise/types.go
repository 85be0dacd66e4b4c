// Package noise defines options and sentinel errors for the simplex
// noise engine of github.com/katalvlaran/dreamplet.
package noise

import "errors"

// Sentinel errors for noise operations.
var (
	// ErrInvalidOctaves indicates Fractal* was called with Octaves < 1.
	// A zero-octave fractal sum is undefined, not zero.
	ErrInvalidOctaves = errors.New("noise: octaves must be ≥ 1")
)

// FractalOptions configures multi-octave (fBm) summation.
//
// Fields:
//   - Octaves     — number of noise layers to accumulate; must be ≥ 1.
//   - Persistence — amplitude multiplier applied per octave.
//     Typical values lie in (0, 1); non-positive values are accepted
//     (occasionally useful for inverted/ringing effects) but are almost
//     always a mistake: Persistence = -1 with an even octave count makes
//     the amplitude sum zero, and the renormalized result degenerates to
//     ±Inf or NaN per IEEE-754.
//   - Lacunarity  — frequency multiplier applied per octave.
//     Typical values are > 1 (2.0 doubles the frequency each layer);
//     non-positive values are accepted with the same caveat.
//
// The first octave always starts at amplitude 1 and frequency 1, so
// Octaves=1 reproduces the single-octave Noise* call exactly.
//
// Example:
//
//	opts := noise.DefaultFractalOptions()
//	opts.Octaves = 6          // more layers → more fine detail
//	opts.Persistence = 0.45   // fine layers fade slightly faster
//
//	v, err := n.Fractal2D(x, y, opts)
//	if err != nil {
//	  // handle ErrInvalidOctaves
//	}
type FractalOptions struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// DefaultFractalOptions returns the conventional fBm configuration:
// 4 octaves, persistence 0.5, lacunarity 2.0.
func DefaultFractalOptions() FractalOptions {
	return FractalOptions{
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}
