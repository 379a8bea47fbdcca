package embedding

import (
	"fmt"
	"strings"
)

// Insertion records one layout edge embedded with the chosen path.
type Insertion struct {
	LayoutEdge int
	Path       Path
}

// InsertionSequence is the order in which layout edges were embedded. Two
// sequences that differ only in order realise the same Embedding.
type InsertionSequence []Insertion

// Clone returns an independent copy of the slice (paths are shared, immutable).
func (s InsertionSequence) Clone() InsertionSequence {
	if s == nil {
		return nil
	}
	out := make(InsertionSequence, len(s))
	copy(out, s)

	return out
}

// Cost returns the summed path length.
func (s InsertionSequence) Cost() float64 {
	var c float64
	for _, ins := range s {
		c += ins.Path.Length
	}

	return c
}

// LayoutEdges returns the layout edge IDs in insertion order.
func (s InsertionSequence) LayoutEdges() []int {
	out := make([]int, len(s))
	for i, ins := range s {
		out[i] = ins.LayoutEdge
	}

	return out
}

// String renders "e2 e0 e5" for compact logging.
func (s InsertionSequence) String() string {
	var b strings.Builder
	for i, ins := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "e%d", ins.LayoutEdge)
	}

	return b.String()
}

// Apply embeds every insertion into em, in order.
func (s InsertionSequence) Apply(em *Embedding) error {
	for _, ins := range s {
		if err := em.EmbedEdge(ins.LayoutEdge, ins.Path); err != nil {
			return err
		}
	}

	return nil
}
