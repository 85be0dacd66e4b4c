package scales

import "math"

// Square maps an input value (typically an area-like quantity) onto a side
// length through a square-root transform, so the drawn square's area stays
// proportional to the input. Immutable after construction.
type Square struct {
	sqrtD0, sqrtD1 float64
	r0, r1         float64
}

// NewSquare builds a square-root scale. Returns ErrBadDomain when either
// domain endpoint is negative or when the endpoints' square roots coincide
// (the transform would divide by zero).
func NewSquare(domain, rng [2]float64) (*Square, error) {
	if domain[0] < 0 || domain[1] < 0 {
		return nil, ErrBadDomain
	}

	var s0, s1 = math.Sqrt(domain[0]), math.Sqrt(domain[1])
	if s0 == s1 {
		return nil, ErrBadDomain
	}

	return &Square{sqrtD0: s0, sqrtD1: s1, r0: rng[0], r1: rng[1]}, nil
}

// Map translates a domain value onto a side length. Negative inputs yield
// NaN (√ of a negative), consistent with the package's numeric policy.
func (s *Square) Map(v float64) float64 {
	return s.r0 + (math.Sqrt(v)-s.sqrtD0)/(s.sqrtD1-s.sqrtD0)*(s.r1-s.r0)
}

// Circle maps an input value onto a circle radius such that the circle's
// *area* varies linearly with the input: the radius interpolates between
// r0 and r1 in r² space. Immutable after construction.
type Circle struct {
	d0, d1 float64
	r0, r1 float64
}

// NewCircle builds an area-true radius scale. Returns ErrBadDomain when
// the domain endpoints coincide.
func NewCircle(domain, rng [2]float64) (*Circle, error) {
	if domain[0] == domain[1] {
		return nil, ErrBadDomain
	}

	return &Circle{d0: domain[0], d1: domain[1], r0: rng[0], r1: rng[1]}, nil
}

// Map translates a domain value onto a radius. Inputs far outside the
// domain can push r² negative, which yields NaN; callers clamp when that
// matters.
func (s *Circle) Map(v float64) float64 {
	var r2 = (v-s.d0)/(s.d1-s.d0)*(s.r1*s.r1-s.r0*s.r0) + s.r0*s.r0

	return math.Sqrt(r2)
}
