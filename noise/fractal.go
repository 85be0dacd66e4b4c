// Package noise - multi-octave fractal summation (fBm).
package noise

// Fractal1D layers opts.Octaves calls to Noise1D at geometrically
// increasing frequency and decreasing amplitude, renormalized by the
// amplitude sum so the result stays approximately within the single-octave
// range regardless of octave count.
//
// Octave k contributes amplitude_k × Noise1D(x × frequency_k), with
// amplitude_0 = frequency_0 = 1, amplitude_{k+1} = amplitude_k ×
// opts.Persistence and frequency_{k+1} = frequency_k × opts.Lacunarity.
// Octaves=1 reproduces Noise1D(x) bit-for-bit.
//
// Returns ErrInvalidOctaves when opts.Octaves < 1.
//
// Complexity: O(Octaves).
func (n *Noise) Fractal1D(x float64, opts FractalOptions) (float64, error) {
	if opts.Octaves < 1 {
		return 0, ErrInvalidOctaves
	}

	var sum, ampSum float64
	var amp, freq = 1.0, 1.0
	var k int
	for k = 0; k < opts.Octaves; k++ {
		sum += amp * n.Noise1D(x*freq)
		ampSum += amp
		amp *= opts.Persistence
		freq *= opts.Lacunarity
	}

	return sum / ampSum, nil
}

// Fractal2D is the 2D analogue of Fractal1D. Same contract and errors.
func (n *Noise) Fractal2D(x, y float64, opts FractalOptions) (float64, error) {
	if opts.Octaves < 1 {
		return 0, ErrInvalidOctaves
	}

	var sum, ampSum float64
	var amp, freq = 1.0, 1.0
	var k int
	for k = 0; k < opts.Octaves; k++ {
		sum += amp * n.Noise2D(x*freq, y*freq)
		ampSum += amp
		amp *= opts.Persistence
		freq *= opts.Lacunarity
	}

	return sum / ampSum, nil
}

// Fractal3D is the 3D analogue of Fractal1D. Same contract and errors.
func (n *Noise) Fractal3D(x, y, z float64, opts FractalOptions) (float64, error) {
	if opts.Octaves < 1 {
		return 0, ErrInvalidOctaves
	}

	var sum, ampSum float64
	var amp, freq = 1.0, 1.0
	var k int
	for k = 0; k < opts.Octaves; k++ {
		sum += amp * n.Noise3D(x*freq, y*freq, z*freq)
		ampSum += amp
		amp *= opts.Persistence
		freq *= opts.Lacunarity
	}

	return sum / ampSum, nil
}
