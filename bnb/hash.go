package bnb

import (
	"crypto/sha256"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/layoutembed/embedding"
)

// signature identifies the set of embedded (layout edge, path) pairs.
type signature [sha256.Size]byte

// signatureEntry is one embedded edge in canonical form. Paths are stored
// From → To by the Embedding, so the edge list alone is canonical.
type signatureEntry struct {
	_msgpack struct{} `msgpack:",as_array"`

	LayoutEdge int
	MeshEdges  []int
}

// signatureOf hashes the msgpack encoding of em's embedded paths in
// ascending layout-edge order. Insertion order does not affect the result.
func signatureOf(em *embedding.Embedding) signature {
	m := em.Layout().NumEdges()
	entries := make([]signatureEntry, 0, em.NumEmbedded())
	for le := 0; le < m; le++ {
		if p, ok := em.Path(le); ok {
			entries = append(entries, signatureEntry{LayoutEdge: le, MeshEdges: p.Edges})
		}
	}
	b, err := msgpack.Marshal(entries)
	if err != nil {
		panic(fmt.Sprintf("bnb: encode state signature: %v", err))
	}

	return sha256.Sum256(b)
}

// stateHasher remembers every signature pushed during one run.
type stateHasher struct {
	visited map[signature]struct{}
}

func newStateHasher() *stateHasher {
	return &stateHasher{visited: make(map[signature]struct{})}
}

// visit records em's signature and reports whether it was new.
func (h *stateHasher) visit(em *embedding.Embedding) bool {
	sig := signatureOf(em)
	if _, seen := h.visited[sig]; seen {
		return false
	}
	h.visited[sig] = struct{}{}

	return true
}

// Len returns the number of distinct states seen.
func (h *stateHasher) Len() int { return len(h.visited) }
