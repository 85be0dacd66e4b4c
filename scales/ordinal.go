package scales

// Ordinal assigns output values to categorical inputs in a cyclic fashion:
// domain[i] gets values[i % len(values)]. Immutable after construction.
type Ordinal[T any] struct {
	mapping map[string]T
}

// NewOrdinal builds an ordinal scale. Returns ErrEmptyRange when values is
// empty; an empty domain is legal (every lookup simply misses).
// Duplicate domain entries keep their first assignment.
func NewOrdinal[T any](domain []string, values []T) (*Ordinal[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyRange
	}

	var mapping = make(map[string]T, len(domain))
	var i int
	var d string
	for i, d = range domain {
		if _, ok := mapping[d]; !ok {
			mapping[d] = values[i%len(values)]
		}
	}

	return &Ordinal[T]{mapping: mapping}, nil
}

// Map returns the output assigned to v; the second return is false when v
// was not part of the domain.
func (s *Ordinal[T]) Map(v string) (T, bool) {
	var out, ok = s.mapping[v]

	return out, ok
}
