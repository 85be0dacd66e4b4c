package shapes

import (
	"math"
	"strings"
)

// Blob returns a closed radial polygon around (x, y) with n vertices
// whose radii come from src: Constant(r) yields a regular n-gon
// approximating a circle, Procedural(...) yields an organic,
// noise-perturbed outline that is seamless at the wrap-around.
// Returns ErrTooFewPoints for n < 3.
func Blob(x, y float64, n int, src Source) (string, error) {
	if n < 3 {
		return "", ErrTooFewPoints
	}

	var step = 2 * math.Pi / float64(n)

	var points = make([]string, 0, n)
	var i int
	for i = 0; i < n; i++ {
		var theta = float64(i) * step
		var r = src.radius(theta)
		points = append(points, formatPoint(x+r*math.Cos(theta), y+r*math.Sin(theta)))
	}

	return "M " + strings.Join(points, " L ") + " Z", nil
}
