// Package noise - the seeded facade owning one permutation table.
package noise

// Noise is a seeded simplex noise generator. It owns exactly one
// permutation table, built once at construction and never mutated, so a
// single instance is safe for concurrent readers without locking.
//
// Two instances built from the same seed produce bit-identical output for
// identical queries; there is no package-level default instance — every
// caller seeds its own.
type Noise struct {
	perm [2 * permSize]int
}

// New returns a generator for the given seed.
// Policy: seed==0 selects a fixed internal default seed, so the zero value
// of a config field still yields a deterministic (and documented) table.
//
// Complexity: O(1) amortized — one 512-entry shuffle.
func New(seed int64) *Noise {
	return &Noise{perm: buildPerm(seed)}
}

// NewFromString returns a generator seeded from an arbitrary string via
// SeedFromString. Convenience for configs where seeds are human-readable.
func NewFromString(seed string) *Noise {
	return New(SeedFromString(seed))
}
