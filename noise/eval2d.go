// Package noise - 2D simplex evaluator.
package noise

import "math"

// 2D constants. F2/G2 are the skew/unskew factors for D=2
// (F = (√(D+1)−1)/D, G = (1−1/√(D+1))/D); falloff2D fixes the corner
// influence radius and scale2D is the matching empirical normalization
// that lands the output approximately in [-1, 1]. The pair (0.5, 70) is
// the classic convention for 12-direction gradients; neither constant may
// change without the other.
var (
	f2 = 0.5 * (math.Sqrt(3) - 1)
	g2 = (3 - math.Sqrt(3)) / 6
)

const (
	falloff2D = 0.5
	scale2D   = 70.0
)

// Noise2D maps a real coordinate pair to a scalar approximately in [-1, 1].
//
// The bound is empirical (scale2D is a convention, not a proof); callers
// needing a hard range must clamp. For fixed seed the function is
// continuous across simplex boundaries and deterministic. NaN inputs
// propagate to the result; ±Inf collapses to 0 (every corner falls
// outside its influence radius).
//
// Complexity: O(1) — exactly three corner contributions.
func (n *Noise) Noise2D(x, y float64) float64 {
	// Skew the input onto the triangular lattice and locate the cell.
	var s = (x + y) * f2
	var i = fastFloor(x + s)
	var j = fastFloor(y + s)

	// Unskew the cell origin back to input space.
	var t = float64(i+j) * g2
	var x0 = x - (float64(i) - t)
	var y0 = y - (float64(j) - t)

	// The unit square holds two triangles; the offset ordering picks which
	// one the sample is in and therefore the middle corner of the
	// traversal (0,0) → (i1,j1) → (1,1). Getting this tie-break wrong
	// produces visible seams along cell diagonals.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	// Cartesian displacements from the sample to the remaining corners.
	var x1 = x0 - float64(i1) + g2
	var y1 = y0 - float64(j1) + g2
	var x2 = x0 - 1 + 2*g2
	var y2 = y0 - 1 + 2*g2

	// Hash the absolute lattice coordinates of each corner through the
	// permutation table to pick its gradient.
	var ii = i & 255
	var jj = j & 255
	var g0 = grad3[n.perm[ii+n.perm[jj]]%12]
	var g1 = grad3[n.perm[ii+i1+n.perm[jj+j1]]%12]
	var g2v = grad3[n.perm[ii+1+n.perm[jj+1]]%12]

	var n0, n1, n2 float64

	// Radially decaying contribution per corner; `< 0` keeps NaN flowing
	// through instead of zeroing it (see eval1d.go).
	var t0 = falloff2D - x0*x0 - y0*y0
	if t0 < 0 {
		n0 = 0
	} else {
		t0 *= t0
		n0 = t0 * t0 * dot2(g0, x0, y0)
	}

	var t1 = falloff2D - x1*x1 - y1*y1
	if t1 < 0 {
		n1 = 0
	} else {
		t1 *= t1
		n1 = t1 * t1 * dot2(g1, x1, y1)
	}

	var t2 = falloff2D - x2*x2 - y2*y2
	if t2 < 0 {
		n2 = 0
	} else {
		t2 *= t2
		n2 = t2 * t2 * dot2(g2v, x2, y2)
	}

	return scale2D * (n0 + n1 + n2)
}
