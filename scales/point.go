package scales

// Point maps categorical values to single points within a numeric range,
// placing `padding` steps of space at both ends. Immutable after
// construction.
type Point struct {
	index   map[string]int
	r0      float64
	step    float64
	padding float64
}

// NewPoint builds a point scale over rng with the given edge padding
// (in steps; 0.5 is the usual default). Returns ErrEmptyDomain for an
// empty domain; duplicate domain values keep their first position.
func NewPoint(domain []string, rng [2]float64, padding float64) (*Point, error) {
	var n = len(domain)
	if n == 0 {
		return nil, ErrEmptyDomain
	}

	// (n-1) intervals between points plus padding on each end.
	var step = (rng[1] - rng[0]) / (float64(n-1) + 2*padding)

	var index = make(map[string]int, n)
	var i int
	var v string
	for i, v = range domain {
		if _, ok := index[v]; !ok {
			index[v] = i
		}
	}

	return &Point{index: index, r0: rng[0], step: step, padding: padding}, nil
}

// Map returns the point position for v. The second return is false when v
// is not part of the domain.
func (s *Point) Map(v string) (float64, bool) {
	var i, ok = s.index[v]
	if !ok {
		return 0, false
	}

	return s.r0 + s.step*(float64(i)+s.padding), true
}
