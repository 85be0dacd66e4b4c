package shapes

import (
	"fmt"
	"strings"
)

// formatPoint renders one coordinate pair with the package's two-decimal
// convention.
func formatPoint(x, y float64) string {
	return fmt.Sprintf("%.2f,%.2f", x, y)
}

// Polyline returns open path data connecting the points (xs[i], ys[i]) in
// order. Returns ErrLengthMismatch when the slices differ in length and
// ErrTooFewPoints for fewer than two points (nothing to connect).
func Polyline(xs, ys []float64) (string, error) {
	if len(xs) != len(ys) {
		return "", ErrLengthMismatch
	}
	if len(xs) < 2 {
		return "", ErrTooFewPoints
	}

	var points = make([]string, len(xs))
	var i int
	for i = range xs {
		points[i] = formatPoint(xs[i], ys[i])
	}

	return "M " + strings.Join(points, " L "), nil
}
