package bnb

import (
	"math"

	"github.com/katalvlaran/layoutembed/embedding"
	"github.com/katalvlaran/layoutembed/pathgen"
)

// bound is the estimator's verdict on one partial embedding.
type bound struct {
	// lb ≤ cost of every completion; +Inf when some edge has no feasible path.
	lb float64

	// nonConflicting counts unembedded edges whose estimate path conflicts
	// with no other edge's estimate path.
	nonConflicting int

	// completion, when non-nil, embeds every remaining edge at exactly lb.
	completion embedding.InsertionSequence
}

// boundEstimator computes admissible lower bounds. Unconstrained distances
// are computed once per run from the pinned endpoint images.
type boundEstimator struct {
	constrained bool
	relaxed     []embedding.Path
	relaxedOK   []bool
}

func newBoundEstimator(em *embedding.Embedding, constrained bool) *boundEstimator {
	m := em.Layout().NumEdges()
	b := &boundEstimator{
		constrained: constrained,
		relaxed:     make([]embedding.Path, m),
		relaxedOK:   make([]bool, m),
	}
	for le := 0; le < m; le++ {
		src, dst := em.Endpoints(le)
		b.relaxed[le], b.relaxedOK[le] = pathgen.Relaxed(em.Target(), src, dst)
	}

	return b
}

// edge returns le's contribution to the bound of em.
func (b *boundEstimator) edge(em *embedding.Embedding, le int) float64 {
	p, ok := b.path(em, le)
	if !ok {
		return math.Inf(1)
	}

	return p.Length
}

func (b *boundEstimator) path(em *embedding.Embedding, le int) (embedding.Path, bool) {
	if b.constrained {
		return pathgen.Shortest(em, le)
	}

	return b.relaxed[le], b.relaxedOK[le]
}

// estimate bounds the cost of completing em.
func (b *boundEstimator) estimate(em *embedding.Embedding) bound {
	open := em.Unembedded()
	paths := make([]embedding.Path, len(open))
	lb := em.Cost()
	for i, le := range open {
		p, ok := b.path(em, le)
		if !ok {
			return bound{lb: math.Inf(1)}
		}
		paths[i] = p
		lb += p.Length
	}

	clash := make([]bool, len(paths))
	for i := range paths {
		for j := i + 1; j < len(paths); j++ {
			if embedding.Conflicts(paths[i], paths[j]) {
				clash[i], clash[j] = true, true
			}
		}
	}
	res := bound{lb: lb}
	for _, c := range clash {
		if !c {
			res.nonConflicting++
		}
	}

	if b.constrained && len(open) > 0 && res.nonConflicting == len(open) {
		res.completion = make(embedding.InsertionSequence, len(open))
		for i, le := range open {
			res.completion[i] = embedding.Insertion{LayoutEdge: le, Path: paths[i]}
		}
	}

	return res
}
