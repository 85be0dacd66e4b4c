// Package noise implements seeded simplex gradient noise in one, two and
// three dimensions, with optional multi-octave fractal summation.
//
// 🚀 What is simplex noise?
//
//	A deterministic pseudo-random *spatial* function: nearby inputs produce
//	nearby outputs, distant inputs look uncorrelated. The lattice cell is a
//	simplex (triangle/tetrahedron) rather than a hypercube, so only D+1
//	corners are evaluated per sample. Typical uses:
//	  • Terrain, texture and flow-field generation
//	  • Organic perturbation of shapes and paths
//	  • Smooth animated randomness (sample a moving 1D/2D slice)
//
// ✨ Key properties:
//   - Seeded determinism: same seed ⇒ bit-identical output, across runs
//     and processes. No time-based sources anywhere.
//   - Bounded output: approximately [-1, 1] (empirical normalization
//     constants, not a hard clamp — see Noise2D docs).
//   - Fractal summation: Fractal* layers octaves with per-octave
//     persistence (amplitude decay) and lacunarity (frequency growth),
//     renormalized by the amplitude sum.
//   - Read-only after construction: one permutation table per instance,
//     safe for concurrent readers without locking.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dreamplet/noise"
//
//	n := noise.New(42)
//	v := n.Noise2D(0.3, 0.7)          // single octave, ≈[-1,1]
//
//	opts := noise.DefaultFractalOptions() // 4 octaves, 0.5, 2.0
//	f, err := n.Fractal2D(0.3, 0.7, opts)
//	if err != nil {
//	  // handle ErrInvalidOctaves
//	}
//
// Performance:
//
//   - Time:   O(1) per sample (D+1 corner contributions, D ≤ 3)
//   - Memory: O(1) per sample; 512-entry table per instance
//
// Errors:
//
//   - ErrInvalidOctaves: Fractal* called with Octaves < 1.
//
// NaN and ±Inf inputs are not errors: NaN propagates through the IEEE-754
// pipeline, while ±Inf lands every corner outside its influence radius and
// evaluates to 0. The hot path stays validation-free.
package noise
