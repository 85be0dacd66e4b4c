package scales

import "github.com/katalvlaran/dreamplet/colors"

// Color maps a numeric domain onto a hex color palette by piecewise
// interpolation between neighboring stops. Immutable after construction.
type Color struct {
	d0, d1  float64
	palette []string
}

// NewColor builds a color scale over domain with the given palette of
// "#rrggbb" stops. Returns ErrBadDomain for coinciding endpoints and
// ErrPaletteTooSmall for fewer than two stops. Stop validity is checked
// lazily by Blend (invalid stops interpolate to "#000000").
func NewColor(domain [2]float64, palette []string) (*Color, error) {
	if domain[0] == domain[1] {
		return nil, ErrBadDomain
	}
	if len(palette) < 2 {
		return nil, ErrPaletteTooSmall
	}

	var stops = make([]string, len(palette))
	copy(stops, palette)

	return &Color{d0: domain[0], d1: domain[1], palette: stops}, nil
}

// Map translates a domain value onto a color. Values outside the domain
// clamp to the endpoint stops.
func (s *Color) Map(v float64) string {
	var t = (v - s.d0) / (s.d1 - s.d0)
	// The negated comparison also routes NaN to the first stop instead of
	// letting it reach the segment index.
	if !(t > 0) {
		return s.palette[0]
	}
	if t >= 1 {
		return s.palette[len(s.palette)-1]
	}

	// Locate the palette segment and the position within it.
	var segments = float64(len(s.palette) - 1)
	var pos = t * segments
	var i = int(pos)

	return colors.Blend(s.palette[i], s.palette[i+1], pos-float64(i))
}
