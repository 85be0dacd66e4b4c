// Package noise - 1D simplex evaluator.
package noise

// 1D constants. The simplex lattice degenerates to the integer line: the
// two cell corners are the neighboring integers, the falloff disk has
// radius 1, and with ±1 gradients the peak two-corner sum is exactly
// 81/256 (reached midway between corners with opposing gradients), so
// scale1D maps the output onto exactly [-1, 1].
const (
	falloff1D = 1.0
	scale1D   = 256.0 / 81.0
)

// Noise1D maps a real coordinate to a scalar in [-1, 1].
//
// For fixed seed the function is continuous and deterministic; it is zero
// at every integer lattice point. NaN inputs propagate to the result;
// ±Inf collapses to 0.
//
// Complexity: O(1).
func (n *Noise) Noise1D(x float64) float64 {
	// Cell corners are the two neighboring integers; no skew is needed in
	// one dimension.
	var i0 = fastFloor(x)
	var i1 = i0 + 1
	var x0 = x - float64(i0)
	var x1 = x0 - 1

	var n0, n1 float64

	// Corner tests are written as `< 0` so that a NaN coordinate falls
	// through to the contribution arithmetic and propagates, instead of
	// being silently zeroed.
	var t0 = falloff1D - x0*x0
	if t0 < 0 {
		n0 = 0
	} else {
		t0 *= t0
		n0 = t0 * t0 * grad1[n.perm[i0&255]&1] * x0
	}

	var t1 = falloff1D - x1*x1
	if t1 < 0 {
		n1 = 0
	} else {
		t1 *= t1
		n1 = t1 * t1 * grad1[n.perm[i1&255]&1] * x1
	}

	return scale1D * (n0 + n1)
}
