package shapes

import (
	"fmt"
	"math"
)

// angleEps is the tolerance for detecting a full-circle span.
const angleEps = 1e-9

// fullCircle reports whether the span start→end (degrees) covers a whole
// turn.
func fullCircle(startAngle, endAngle float64) bool {
	var delta = math.Mod(endAngle-startAngle, 360)
	if delta < 0 {
		delta += 360
	}

	return delta < angleEps || math.Abs(delta-360) < angleEps
}

// largeArcFlag returns the SVG large-arc flag for the span (degrees).
func largeArcFlag(startAngle, endAngle float64) int {
	var delta = math.Mod(endAngle-startAngle, 360)
	if delta < 0 {
		delta += 360
	}
	if delta > 180 {
		return 1
	}

	return 0
}

// onCircle returns the point at angle rad on the circle around (x, y).
func onCircle(x, y, r, rad float64) (float64, float64) {
	return x + r*math.Cos(rad), y + r*math.Sin(rad)
}

// Arc returns path data for a circular arc around (x, y) from startAngle
// to endAngle (degrees, positive sweep). A full-circle span is drawn as
// two 180° arc segments because a single SVG arc command cannot close on
// its own start point.
func Arc(x, y, radius, startAngle, endAngle float64) string {
	var startRad = startAngle * math.Pi / 180
	var endRad = endAngle * math.Pi / 180

	var sx, sy = onCircle(x, y, radius, startRad)

	if fullCircle(startAngle, endAngle) {
		var mx, my = onCircle(x, y, radius, startRad+math.Pi)

		return fmt.Sprintf("M %s A %.2f %.2f 0 0 1 %s A %.2f %.2f 0 0 1 %s",
			formatPoint(sx, sy),
			radius, radius, formatPoint(mx, my),
			radius, radius, formatPoint(sx, sy))
	}

	var ex, ey = onCircle(x, y, radius, endRad)

	return fmt.Sprintf("M %s A %.2f %.2f 0 %d 1 %s",
		formatPoint(sx, sy),
		radius, radius, largeArcFlag(startAngle, endAngle), formatPoint(ex, ey))
}

// Ring returns path data for a donut or ring segment around (x, y)
// between innerRadius and outerRadius, spanning startAngle→endAngle
// (degrees).
//
// A full-circle span draws a complete donut (two subpaths, opposite
// winding so the hole survives fill rules). For partial spans,
// withoutInner=false draws the classic segment (outer arc, radial line,
// inner arc, close); withoutInner=true omits the inner arc and closes
// with a chord instead.
func Ring(x, y, innerRadius, outerRadius, startAngle, endAngle float64, withoutInner bool) string {
	var startRad = startAngle * math.Pi / 180
	var endRad = endAngle * math.Pi / 180

	var osx, osy = onCircle(x, y, outerRadius, startRad)
	var oex, oey = onCircle(x, y, outerRadius, endRad)
	var isx, isy = onCircle(x, y, innerRadius, startRad)
	var iex, iey = onCircle(x, y, innerRadius, endRad)

	if fullCircle(startAngle, endAngle) {
		var omx, omy = onCircle(x, y, outerRadius, startRad+math.Pi)
		var imx, imy = onCircle(x, y, innerRadius, startRad+math.Pi)

		return fmt.Sprintf("M %s A %.2f %.2f 0 0 1 %s A %.2f %.2f 0 0 1 %s M %s A %.2f %.2f 0 0 0 %s A %.2f %.2f 0 0 0 %s Z",
			formatPoint(osx, osy),
			outerRadius, outerRadius, formatPoint(omx, omy),
			outerRadius, outerRadius, formatPoint(osx, osy),
			formatPoint(iex, iey),
			innerRadius, innerRadius, formatPoint(imx, imy),
			innerRadius, innerRadius, formatPoint(isx, isy))
	}

	var large = largeArcFlag(startAngle, endAngle)

	if withoutInner {
		return fmt.Sprintf("M %s L %s A %.2f %.2f 0 %d 1 %s L %s Z",
			formatPoint(isx, isy),
			formatPoint(osx, osy),
			outerRadius, outerRadius, large, formatPoint(oex, oey),
			formatPoint(iex, iey))
	}

	return fmt.Sprintf("M %s A %.2f %.2f 0 %d 1 %s L %s A %.2f %.2f 0 %d 0 %s Z",
		formatPoint(osx, osy),
		outerRadius, outerRadius, large, formatPoint(oex, oey),
		formatPoint(iex, iey),
		innerRadius, innerRadius, large, formatPoint(isx, isy))
}
