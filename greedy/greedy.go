// Package greedy builds a quick, usually suboptimal complete embedding.
//
// Unembedded layout edges are routed one at a time, shortest unconstrained
// distance first (ties by lower edge ID), each along its constrained shortest
// path in the embedding as it stands. The result seeds the branch-and-bound
// upper bound.
package greedy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/layoutembed/embedding"
	"github.com/katalvlaran/layoutembed/pathgen"
)

// Sentinel errors.
var (
	// ErrUnassigned indicates a layout vertex without an image.
	ErrUnassigned = errors.New("greedy: layout vertex not assigned")

	// ErrBlocked indicates an edge left without a feasible route by earlier choices.
	ErrBlocked = errors.New("greedy: no feasible path")
)

// Embed completes em in place and returns the insertions it made.
// On error em holds the partial result and the returned sequence is nil.
func Embed(em *embedding.Embedding) (embedding.InsertionSequence, error) {
	if !em.AllAssigned() {
		return nil, ErrUnassigned
	}

	open := em.Unembedded()
	key := make(map[int]float64, len(open))
	for _, le := range open {
		src, dst := em.Endpoints(le)
		key[le] = pathgen.RelaxedLength(em.Target(), src, dst)
	}
	sort.SliceStable(open, func(i, j int) bool {
		a, b := open[i], open[j]
		if key[a] != key[b] {
			return key[a] < key[b]
		}

		return a < b
	})

	seq := make(embedding.InsertionSequence, 0, len(open))
	for _, le := range open {
		p, ok := pathgen.Shortest(em, le)
		if !ok {
			return nil, fmt.Errorf("layout edge %d after %d insertions: %w", le, len(seq), ErrBlocked)
		}
		if err := em.EmbedEdge(le, p); err != nil {
			return nil, fmt.Errorf("layout edge %d: %w", le, err)
		}
		seq = append(seq, embedding.Insertion{LayoutEdge: le, Path: p})
	}

	return seq, nil
}
