package noise

// PermTable exposes a copy of n's permutation table to the external test
// package so table invariants can be asserted without widening the API.
func PermTable(n *Noise) []int {
	var out = make([]int, len(n.perm))
	copy(out, n.perm[:])

	return out
}
