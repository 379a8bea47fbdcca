package embedding

import (
	"fmt"
	"math"
)

// costTolerance bounds the drift between the running cost and a fresh sum.
const costTolerance = 1e-9

// Validate recomputes every derived table from the embedded paths and
// reports the first inconsistency, wrapped in ErrInvariant. It is O(V+E) and
// meant for tests and end-of-search checks.
func (em *Embedding) Validate() error {
	for lv, mv := range em.image {
		if mv == none {
			continue
		}
		if em.pinAt[mv] != lv {
			return fmt.Errorf("layout vertex %d image %d not recorded: %w", lv, mv, ErrInvariant)
		}
	}
	for mv, lv := range em.pinAt {
		if lv != none && em.image[lv] != mv {
			return fmt.Errorf("mesh vertex %d pin %d stale: %w", mv, lv, ErrInvariant)
		}
	}

	edgeOf := fill(len(em.edgeOf))
	innerOf := fill(len(em.innerOf))
	var cost float64
	count := 0
	for le, ok := range em.embedded {
		if !ok {
			continue
		}
		count++
		p := em.paths[le]
		src, dst := em.Endpoints(le)
		if len(p.Vertices) < 2 || len(p.Vertices) != len(p.Edges)+1 || p.Vertices[0] != src || p.Vertices[len(p.Vertices)-1] != dst {
			return fmt.Errorf("layout edge %d path %v: %w", le, p, ErrInvariant)
		}
		var length float64
		for i, e := range p.Edges {
			if edgeOf[e] != none {
				return fmt.Errorf("mesh edge %d shared by %d and %d: %w", e, edgeOf[e], le, ErrInvariant)
			}
			edgeOf[e] = le
			if !joins(em.target.Edge(e), p.Vertices[i], p.Vertices[i+1]) {
				return fmt.Errorf("layout edge %d: mesh edge %d out of place: %w", le, e, ErrInvariant)
			}
			length += em.target.Length(e)
		}
		if math.Abs(length-p.Length) > costTolerance*math.Max(1, length) {
			return fmt.Errorf("layout edge %d length %g, recorded %g: %w", le, length, p.Length, ErrInvariant)
		}
		for _, v := range p.Interior() {
			if em.pinAt[v] != none {
				return fmt.Errorf("layout edge %d passes pin %d: %w", le, v, ErrInvariant)
			}
			if innerOf[v] != none {
				return fmt.Errorf("mesh vertex %d inside %d and %d: %w", v, innerOf[v], le, ErrInvariant)
			}
			innerOf[v] = le
		}
		cost += p.Length
	}

	if count != em.count {
		return fmt.Errorf("embedded count %d, recorded %d: %w", count, em.count, ErrInvariant)
	}
	for i := range edgeOf {
		if edgeOf[i] != em.edgeOf[i] {
			return fmt.Errorf("mesh edge %d owner %d, recorded %d: %w", i, edgeOf[i], em.edgeOf[i], ErrInvariant)
		}
	}
	for i := range innerOf {
		if innerOf[i] != em.innerOf[i] {
			return fmt.Errorf("mesh vertex %d owner %d, recorded %d: %w", i, innerOf[i], em.innerOf[i], ErrInvariant)
		}
	}
	if math.Abs(cost-em.cost) > costTolerance*math.Max(1, cost) {
		return fmt.Errorf("cost %g, recorded %g: %w", cost, em.cost, ErrInvariant)
	}

	return nil
}
