package embedding

import (
	"fmt"

	"github.com/katalvlaran/layoutembed/mesh"
)

// none marks an unassigned image or an unowned mesh element.
const none = -1

// Embedding is a partial embedding of a LayoutGraph into a TargetMesh.
//
// The mesh and layout are shared read-only; every other table is owned by
// the Embedding and copied by Clone.
type Embedding struct {
	target *mesh.TargetMesh
	layout *mesh.LayoutGraph

	image   []int // layout vertex → mesh vertex
	pinAt   []int // mesh vertex → layout vertex
	edgeOf  []int // mesh edge → owning layout edge
	innerOf []int // mesh vertex → layout edge whose path passes through it

	paths    []Path
	embedded []bool
	count    int
	cost     float64
}

// New returns an empty embedding: no vertex assigned, no edge embedded.
func New(target *mesh.TargetMesh, layout *mesh.LayoutGraph) *Embedding {
	em := &Embedding{
		target:   target,
		layout:   layout,
		image:    fill(layout.NumVertices()),
		pinAt:    fill(target.NumVertices()),
		edgeOf:   fill(target.NumEdges()),
		innerOf:  fill(target.NumVertices()),
		paths:    make([]Path, layout.NumEdges()),
		embedded: make([]bool, layout.NumEdges()),
	}

	return em
}

// NewPinned returns an embedding with pins[i] assigned as the image of
// layout vertex i. len(pins) must equal the layout vertex count.
func NewPinned(target *mesh.TargetMesh, layout *mesh.LayoutGraph, pins []int) (*Embedding, error) {
	if len(pins) != layout.NumVertices() {
		return nil, fmt.Errorf("%d pins for %d layout vertices: %w", len(pins), layout.NumVertices(), ErrOutOfRange)
	}
	em := New(target, layout)
	for lv, mv := range pins {
		if err := em.AssignVertex(lv, mv); err != nil {
			return nil, err
		}
	}

	return em, nil
}

func fill(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = none
	}

	return s
}

// Target returns the mesh.
func (em *Embedding) Target() *mesh.TargetMesh { return em.target }

// Layout returns the layout graph.
func (em *Embedding) Layout() *mesh.LayoutGraph { return em.layout }

// AssignVertex sets the image of layout vertex lv to mesh vertex mv.
func (em *Embedding) AssignVertex(lv, mv int) error {
	if lv < 0 || lv >= len(em.image) {
		return fmt.Errorf("layout vertex %d: %w", lv, ErrOutOfRange)
	}
	if !em.target.HasVertex(mv) {
		return fmt.Errorf("mesh vertex %d: %w", mv, ErrOutOfRange)
	}
	if em.image[lv] != none {
		return fmt.Errorf("layout vertex %d → %d: %w", lv, em.image[lv], ErrVertexAlreadyAssigned)
	}
	if em.pinAt[mv] != none || em.innerOf[mv] != none {
		return fmt.Errorf("mesh vertex %d: %w", mv, ErrMeshVertexTaken)
	}
	em.image[lv] = mv
	em.pinAt[mv] = lv

	return nil
}

// VertexImage returns the mesh vertex of lv, or -1 if unassigned.
func (em *Embedding) VertexImage(lv int) int { return em.image[lv] }

// LayoutVertexAt returns the layout vertex pinned at mv, or -1.
func (em *Embedding) LayoutVertexAt(mv int) int { return em.pinAt[mv] }

// AllAssigned reports whether every layout vertex has an image.
func (em *Embedding) AllAssigned() bool {
	for _, mv := range em.image {
		if mv == none {
			return false
		}
	}

	return true
}

// Endpoints returns the images of le's endpoints, oriented From → To.
func (em *Embedding) Endpoints(le int) (src, dst int) {
	e := em.layout.Edge(le)

	return em.image[e.From], em.image[e.To]
}

// EmbedEdge embeds layout edge le along p.
//
// p may be given in either orientation; it is stored From → To with its
// Length recomputed from the mesh. A structurally invalid path returns a
// plain sentinel error, an occupied element returns *ConflictError. On error
// the embedding is unchanged.
func (em *Embedding) EmbedEdge(le int, p Path) error {
	if le < 0 || le >= len(em.paths) {
		return fmt.Errorf("layout edge %d: %w", le, ErrOutOfRange)
	}
	if em.embedded[le] {
		return fmt.Errorf("layout edge %d: %w", le, ErrEdgeAlreadyEmbedded)
	}
	src, dst := em.Endpoints(le)
	if src == none || dst == none {
		return fmt.Errorf("layout edge %d: %w", le, ErrEndpointsUnassigned)
	}
	p, err := em.normalize(le, p, src, dst)
	if err != nil {
		return err
	}
	if err = em.conflict(le, p); err != nil {
		return err
	}

	for _, e := range p.Edges {
		em.edgeOf[e] = le
	}
	for _, v := range p.Interior() {
		em.innerOf[v] = le
	}
	em.paths[le] = p
	em.embedded[le] = true
	em.count++
	em.cost += p.Length

	return nil
}

// normalize checks the path's shape and orients it src → dst.
func (em *Embedding) normalize(le int, p Path, src, dst int) (Path, error) {
	k := len(p.Edges)
	if k == 0 || len(p.Vertices) != k+1 {
		return p, fmt.Errorf("layout edge %d: %d vertices, %d edges: %w", le, len(p.Vertices), k, ErrPathMalformed)
	}
	switch {
	case p.Vertices[0] == src && p.Vertices[k] == dst:
	case p.Vertices[0] == dst && p.Vertices[k] == src:
		p = p.Reversed()
	default:
		return p, fmt.Errorf("layout edge %d: path %d..%d, want %d..%d: %w",
			le, p.Vertices[0], p.Vertices[k], src, dst, ErrPathEndpoints)
	}

	seen := make(map[int]struct{}, len(p.Vertices))
	var length float64
	for i, e := range p.Edges {
		if e < 0 || e >= em.target.NumEdges() {
			return p, fmt.Errorf("layout edge %d: mesh edge %d: %w", le, e, ErrOutOfRange)
		}
		me := em.target.Edge(e)
		if !joins(me, p.Vertices[i], p.Vertices[i+1]) {
			return p, fmt.Errorf("layout edge %d: mesh edge %d does not join %d-%d: %w",
				le, e, p.Vertices[i], p.Vertices[i+1], ErrPathMalformed)
		}
		length += me.Length
	}
	for _, v := range p.Vertices {
		if _, dup := seen[v]; dup {
			return p, fmt.Errorf("layout edge %d: vertex %d repeated: %w", le, v, ErrPathNotSimple)
		}
		seen[v] = struct{}{}
	}
	p.Length = length

	return p, nil
}

func joins(e mesh.Edge, u, v int) bool {
	return (e.A == u && e.B == v) || (e.A == v && e.B == u)
}

// conflict returns the first occupied element of p, if any.
func (em *Embedding) conflict(le int, p Path) error {
	for _, e := range p.Edges {
		if o := em.edgeOf[e]; o != none {
			return &ConflictError{LayoutEdge: le, Kind: EdgeConflict, MeshElement: e, Other: o}
		}
	}
	for _, v := range p.Interior() {
		if o := em.pinAt[v]; o != none {
			return &ConflictError{LayoutEdge: le, Kind: PinConflict, MeshElement: v, Other: o}
		}
		if o := em.innerOf[v]; o != none {
			return &ConflictError{LayoutEdge: le, Kind: VertexConflict, MeshElement: v, Other: o}
		}
	}

	return nil
}

// UnembedEdge removes le's path and releases its mesh elements.
func (em *Embedding) UnembedEdge(le int) error {
	if le < 0 || le >= len(em.paths) {
		return fmt.Errorf("layout edge %d: %w", le, ErrOutOfRange)
	}
	if !em.embedded[le] {
		return fmt.Errorf("layout edge %d: %w", le, ErrEdgeNotEmbedded)
	}
	p := em.paths[le]
	for _, e := range p.Edges {
		em.edgeOf[e] = none
	}
	for _, v := range p.Interior() {
		em.innerOf[v] = none
	}
	em.paths[le] = Path{}
	em.embedded[le] = false
	em.count--
	em.cost -= p.Length
	if em.count == 0 {
		em.cost = 0
	}

	return nil
}

// IsEmbedded reports whether le has a path.
func (em *Embedding) IsEmbedded(le int) bool { return em.embedded[le] }

// Path returns the path of le; ok is false if le is not embedded.
func (em *Embedding) Path(le int) (Path, bool) {
	if le < 0 || le >= len(em.paths) || !em.embedded[le] {
		return Path{}, false
	}

	return em.paths[le], true
}

// NumEmbedded returns the number of embedded layout edges.
func (em *Embedding) NumEmbedded() int { return em.count }

// IsComplete reports whether every layout edge is embedded.
func (em *Embedding) IsComplete() bool { return em.count == len(em.paths) }

// Cost returns the total length of the embedded paths.
func (em *Embedding) Cost() float64 { return em.cost }

// Unembedded returns the unembedded layout edge IDs in ascending order.
func (em *Embedding) Unembedded() []int {
	out := make([]int, 0, len(em.paths)-em.count)
	for le, ok := range em.embedded {
		if !ok {
			out = append(out, le)
		}
	}

	return out
}

// EdgeOwner returns the layout edge using mesh edge me, or -1.
func (em *Embedding) EdgeOwner(me int) int { return em.edgeOf[me] }

// IsBlockedEdge reports whether a path for a new layout edge may not use mesh edge me.
func (em *Embedding) IsBlockedEdge(me int) bool { return em.edgeOf[me] != none }

// IsBlockedVertex reports whether a path for layout edge le may not pass
// through mesh vertex mv. The images of le's own endpoints are never blocked.
func (em *Embedding) IsBlockedVertex(le, mv int) bool {
	src, dst := em.Endpoints(le)
	if mv == src || mv == dst {
		return false
	}

	return em.pinAt[mv] != none || em.innerOf[mv] != none
}

// Clone returns a deep copy of the mutable tables.
func (em *Embedding) Clone() *Embedding {
	return &Embedding{
		target:   em.target,
		layout:   em.layout,
		image:    append([]int(nil), em.image...),
		pinAt:    append([]int(nil), em.pinAt...),
		edgeOf:   append([]int(nil), em.edgeOf...),
		innerOf:  append([]int(nil), em.innerOf...),
		paths:    append([]Path(nil), em.paths...),
		embedded: append([]bool(nil), em.embedded...),
		count:    em.count,
		cost:     em.cost,
	}
}

// ReplaceWith overwrites em with a deep copy of src. Both must share the
// same mesh and layout.
func (em *Embedding) ReplaceWith(src *Embedding) {
	*em = *src.Clone()
}

// FootprintBytes estimates the heap bytes held by em's own tables.
func (em *Embedding) FootprintBytes() int64 {
	const word = 8
	n := int64(len(em.image)+len(em.pinAt)+len(em.edgeOf)+len(em.innerOf)) * word
	n += int64(len(em.embedded))
	n += int64(len(em.paths)) * 7 * word
	for le, ok := range em.embedded {
		if ok {
			p := em.paths[le]
			n += int64(len(p.Vertices)+len(p.Edges)) * word
		}
	}

	return n
}
