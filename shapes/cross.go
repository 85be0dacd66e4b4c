package shapes

import (
	"math"
	"strings"
)

// Cross returns path data for a plus sign centered at (x, y): the union
// outline of a vertical and a horizontal bar, 12 vertices, rotated by
// angle degrees. size is the tip-to-tip span, thickness the bar width.
func Cross(x, y, size, thickness, angle float64) string {
	var h = size / 2
	var t = thickness / 2

	// Outline of the union, traced clockwise from the top-left of the
	// vertical bar.
	var points = [12][2]float64{
		{-t, h}, {t, h}, {t, t}, {h, t}, {h, -t}, {t, -t},
		{t, -h}, {-t, -h}, {-t, -t}, {-h, -t}, {-h, t}, {-t, t},
	}

	var rad = angle * math.Pi / 180
	var cosA = math.Cos(rad)
	var sinA = math.Sin(rad)

	var out = make([]string, 0, len(points))
	var p [2]float64
	for _, p = range points {
		var rx = p[0]*cosA - p[1]*sinA
		var ry = p[0]*sinA + p[1]*cosA
		out = append(out, formatPoint(rx+x, ry+y))
	}

	return "M " + strings.Join(out, " L ") + " Z"
}
