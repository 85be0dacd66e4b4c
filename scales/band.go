package scales

// Band maps categorical values to evenly spaced band positions within a
// numeric range, reserving a padding fraction of each step as the gap
// between neighboring bands. Immutable after construction.
type Band struct {
	index     map[string]int
	r0        float64
	step      float64
	padding   float64
	bandwidth float64
}

// NewBand builds a band scale: n bands over rng with the given padding
// fraction (0 = touching bands, values near 1 = mostly gap; 0.1 is the
// usual default). Returns ErrEmptyDomain for an empty domain; duplicate
// domain values keep their first position.
func NewBand(domain []string, rng [2]float64, padding float64) (*Band, error) {
	var n = len(domain)
	if n == 0 {
		return nil, ErrEmptyDomain
	}

	// Total range covers n bands plus (n-1) padding gaps.
	var step = (rng[1] - rng[0]) / (float64(n) + padding*float64(n-1))

	var index = make(map[string]int, n)
	var i int
	var v string
	for i, v = range domain {
		if _, ok := index[v]; !ok {
			index[v] = i
		}
	}

	return &Band{
		index:     index,
		r0:        rng[0],
		step:      step,
		padding:   padding,
		bandwidth: step * (1 - padding),
	}, nil
}

// Map returns the leading edge of the band for v. The second return is
// false when v is not part of the domain.
func (s *Band) Map(v string) (float64, bool) {
	var i, ok = s.index[v]
	if !ok {
		return 0, false
	}

	return s.r0 + float64(i)*s.step*(1+s.padding), true
}

// Bandwidth returns the width of one band (the step minus the gap).
func (s *Band) Bandwidth() float64 {
	return s.bandwidth
}
