package scales

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Quantile maps numeric values onto a discrete output set by empirical
// quantile thresholds computed from a sample: with n outputs, values below
// the 1/n quantile get values[0], and so on. Immutable after construction.
type Quantile[T any] struct {
	thresholds []float64
	values     []T
}

// NewQuantile builds a quantile scale from a data sample and an output
// value set. Returns ErrEmptyDomain for an empty sample and ErrEmptyRange
// for an empty value set. The sample is copied and sorted; the caller's
// slice is left untouched.
func NewQuantile[T any](sample []float64, values []T) (*Quantile[T], error) {
	if len(sample) == 0 {
		return nil, ErrEmptyDomain
	}
	if len(values) == 0 {
		return nil, ErrEmptyRange
	}

	var sorted = make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	var n = len(values)
	var thresholds = make([]float64, n-1)
	var k int
	for k = 1; k < n; k++ {
		thresholds[k-1] = stat.Quantile(float64(k)/float64(n), stat.Empirical, sorted, nil)
	}

	var vals = make([]T, n)
	copy(vals, values)

	return &Quantile[T]{thresholds: thresholds, values: vals}, nil
}

// Map returns the output bucket for v. Buckets are half-open on the left:
// a value equal to a threshold belongs to the upper bucket. There are
// exactly len(values)-1 thresholds, so the search index is always a valid
// bucket; NaN compares false everywhere and lands in the top bucket.
func (s *Quantile[T]) Map(v float64) T {
	var i = sort.Search(len(s.thresholds), func(i int) bool {
		return s.thresholds[i] > v
	})

	return s.values[i]
}
