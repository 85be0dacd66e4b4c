// Package noise - 3D simplex evaluator.
package noise

// 3D constants. F3/G3 skew between input space and the tetrahedral
// lattice; falloff3D/scale3D are the paired convention for 3D
// (0.6 with ×32), analogous to the 2D pair in eval2d.go.
const (
	f3        = 1.0 / 3.0
	g3        = 1.0 / 6.0
	falloff3D = 0.6
	scale3D   = 32.0
)

// Noise3D maps a real coordinate triple to a scalar approximately in [-1, 1].
//
// Same contract as Noise2D: empirical bound, continuity for fixed seed,
// NaN propagation, ±Inf collapsing to 0. Complexity: O(1) — four corner
// contributions.
func (n *Noise) Noise3D(x, y, z float64) float64 {
	// Skew into simplex space and locate the cell.
	var s = (x + y + z) * f3
	var i = fastFloor(x + s)
	var j = fastFloor(y + s)
	var k = fastFloor(z + s)

	var t = float64(i+j+k) * g3
	var x0 = x - (float64(i) - t)
	var y0 = y - (float64(j) - t)
	var z0 = z - (float64(k) - t)

	// The unit cube splits into six tetrahedra; the descending order of
	// (x0, y0, z0) selects one and fixes the corner traversal
	// (0,0,0) → (i1,j1,k1) → (i2,j2,k2) → (1,1,1).
	var i1, j1, k1 int
	var i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	// Each lattice step of 1 unskews to a Cartesian step of g3.
	var x1 = x0 - float64(i1) + g3
	var y1 = y0 - float64(j1) + g3
	var z1 = z0 - float64(k1) + g3
	var x2 = x0 - float64(i2) + 2*g3
	var y2 = y0 - float64(j2) + 2*g3
	var z2 = z0 - float64(k2) + 2*g3
	var x3 = x0 - 1 + 3*g3
	var y3 = y0 - 1 + 3*g3
	var z3 = z0 - 1 + 3*g3

	var ii = i & 255
	var jj = j & 255
	var kk = k & 255
	var ga = grad3[n.perm[ii+n.perm[jj+n.perm[kk]]]%12]
	var gb = grad3[n.perm[ii+i1+n.perm[jj+j1+n.perm[kk+k1]]]%12]
	var gc = grad3[n.perm[ii+i2+n.perm[jj+j2+n.perm[kk+k2]]]%12]
	var gd = grad3[n.perm[ii+1+n.perm[jj+1+n.perm[kk+1]]]%12]

	var n0, n1, n2, n3 float64

	var t0 = falloff3D - x0*x0 - y0*y0 - z0*z0
	if t0 < 0 {
		n0 = 0
	} else {
		t0 *= t0
		n0 = t0 * t0 * dot3(ga, x0, y0, z0)
	}

	var t1 = falloff3D - x1*x1 - y1*y1 - z1*z1
	if t1 < 0 {
		n1 = 0
	} else {
		t1 *= t1
		n1 = t1 * t1 * dot3(gb, x1, y1, z1)
	}

	var t2 = falloff3D - x2*x2 - y2*y2 - z2*z2
	if t2 < 0 {
		n2 = 0
	} else {
		t2 *= t2
		n2 = t2 * t2 * dot3(gc, x2, y2, z2)
	}

	var t3 = falloff3D - x3*x3 - y3*y3 - z3*z3
	if t3 < 0 {
		n3 = 0
	} else {
		t3 *= t3
		n3 = t3 * t3 * dot3(gd, x3, y3, z3)
	}

	return scale3D * (n0 + n1 + n2 + n3)
}
