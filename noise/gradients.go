// Package noise - constant gradient tables.
//
// Gradients are fixed direction vectors shared by every instance regardless
// of seed; the permutation table only selects *which* gradient a lattice
// corner gets. Tables are package-level constants in all but the letter of
// the language (arrays declared as vars, never written after init).
package noise

// grad1 holds the two 1D gradients. A lattice point pushes the value up or
// down; the hash parity picks the direction.
var grad1 = [2]float64{1, -1}

// grad3 holds the 12 cube-edge-midpoint directions (±1,±1,0), (±1,0,±1),
// (0,±1,±1). The 3D evaluator uses all three components; the 2D evaluator
// dots only the x/y components, the classic convention matched by the
// falloff/normalization constants in eval2d.go.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// dot2 is the 2D gradient dot product (x/y components of a grad3 entry).
func dot2(g [3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

// dot3 is the 3D gradient dot product.
func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}

// fastFloor floors x to an int without calling math.Floor.
// Matches math.Floor for every finite input; for NaN/±Inf the conversion is
// implementation-defined, which is acceptable because non-finite inputs
// already poison the result downstream (see doc.go).
func fastFloor(x float64) int {
	var i = int(x)
	if x < float64(i) {
		i--
	}

	return i
}
