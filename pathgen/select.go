package pathgen

import "github.com/katalvlaran/layoutembed/embedding"

// Select returns the unembedded layout edge to branch on next.
//
// probe bounds the per-edge count under MostConstrainedFirst (<= 0 means
// DefaultProbe). ok is false when em is complete. A returned edge with zero
// feasible candidates means the node cannot be completed; Select returns it
// immediately so the caller can discard the node.
func Select(em *embedding.Embedding, policy SelectionPolicy, probe int) (le int, ok bool) {
	open := em.Unembedded()
	if len(open) == 0 {
		return -1, false
	}
	if policy == FixedOrder || len(open) == 1 {
		return open[0], true
	}
	if probe <= 0 {
		probe = DefaultProbe
	}

	best, bestCount := -1, probe+1
	for _, e := range open {
		n := len(KShortest(em, e, probe, inf).Paths)
		if n == 0 {
			return e, true
		}
		if n < bestCount {
			best, bestCount = e, n
		}
	}

	return best, true
}
