package shapes

import (
	"math"
	"strings"
)

// Star returns path data for an n-pointed star centered at (x, y):
// 2n vertices alternating between outerRadius and innerRadius, the first
// outer vertex rotated by angle degrees. n < 2 cannot form a star and
// returns ErrTooFewPoints (two points make a degenerate "needle", which
// is still drawable and occasionally wanted).
func Star(x, y float64, n int, innerRadius, outerRadius, angle float64) (string, error) {
	if n < 2 {
		return "", ErrTooFewPoints
	}

	var offset = angle * math.Pi / 180
	var step = math.Pi / float64(n)

	var points = make([]string, 0, 2*n)
	var i int
	for i = 0; i < 2*n; i++ {
		var r = outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		var a = offset + float64(i)*step
		points = append(points, formatPoint(x+r*math.Cos(a), y+r*math.Sin(a)))
	}

	return "M " + strings.Join(points, " L ") + " Z", nil
}
