package embedding

import (
	"fmt"
	"strings"
)

// Path is a mesh path: Vertices[0..k], Edges[0..k-1] with Edges[i] joining
// Vertices[i] and Vertices[i+1]. Length is the sum of the edge lengths.
// A Path handed to an Embedding must not be modified afterwards.
type Path struct {
	Vertices []int
	Edges    []int
	Length   float64
}

// Interior returns the vertices strictly between the two ends.
func (p Path) Interior() []int {
	if len(p.Vertices) <= 2 {
		return nil
	}

	return p.Vertices[1 : len(p.Vertices)-1]
}

// Reversed returns a copy of p traversed from the other end.
func (p Path) Reversed() Path {
	q := Path{
		Vertices: make([]int, len(p.Vertices)),
		Edges:    make([]int, len(p.Edges)),
		Length:   p.Length,
	}
	for i, v := range p.Vertices {
		q.Vertices[len(p.Vertices)-1-i] = v
	}
	for i, e := range p.Edges {
		q.Edges[len(p.Edges)-1-i] = e
	}

	return q
}

// Equal reports whether p and q visit the same vertices through the same edges.
func (p Path) Equal(q Path) bool {
	if len(p.Vertices) != len(q.Vertices) || len(p.Edges) != len(q.Edges) {
		return false
	}
	for i := range p.Vertices {
		if p.Vertices[i] != q.Vertices[i] {
			return false
		}
	}
	for i := range p.Edges {
		if p.Edges[i] != q.Edges[i] {
			return false
		}
	}

	return true
}

// String renders the vertex chain, e.g. "3-7-12 (2.5)".
func (p Path) String() string {
	var b strings.Builder
	for i, v := range p.Vertices {
		if i > 0 {
			b.WriteByte('-')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	fmt.Fprintf(&b, " (%g)", p.Length)

	return b.String()
}

// Conflicts reports whether two paths of distinct layout edges could not
// coexist: they share a mesh edge, or a vertex that is interior to either.
// Meeting at a common end vertex is allowed.
func Conflicts(p, q Path) bool {
	for _, e := range p.Edges {
		for _, f := range q.Edges {
			if e == f {
				return true
			}
		}
	}
	pEnds := [2]int{p.Vertices[0], p.Vertices[len(p.Vertices)-1]}
	qEnds := [2]int{q.Vertices[0], q.Vertices[len(q.Vertices)-1]}
	for _, v := range p.Vertices {
		for _, w := range q.Vertices {
			if v != w {
				continue
			}
			if (v != pEnds[0] && v != pEnds[1]) || (v != qEnds[0] && v != qEnds[1]) {
				return true
			}
		}
	}

	return false
}
