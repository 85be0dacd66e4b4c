package scales

// Linear maps a value from a numeric domain onto a numeric range with an
// affine transform. Immutable after construction.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a linear scale from domain onto rng.
// Returns ErrBadDomain when the domain endpoints coincide (the map would
// divide by zero). A reversed domain or range is fine and inverts the axis.
func NewLinear(domain, rng [2]float64) (*Linear, error) {
	if domain[0] == domain[1] {
		return nil, ErrBadDomain
	}

	return &Linear{d0: domain[0], d1: domain[1], r0: rng[0], r1: rng[1]}, nil
}

// Map translates a domain value onto the range. Values outside the domain
// extrapolate linearly (no clamping, as in the original).
func (s *Linear) Map(v float64) float64 {
	return (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0) + s.r0
}

// Invert translates a range value back onto the domain. Only defined when
// the range endpoints differ; a degenerate range yields ±Inf/NaN per
// IEEE-754, consistent with the package's no-guarding numeric policy.
func (s *Linear) Invert(v float64) float64 {
	return (v-s.r0)/(s.r1-s.r0)*(s.d1-s.d0) + s.d0
}
