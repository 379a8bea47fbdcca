package config

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/layoutembed/builder"
	"github.com/katalvlaran/layoutembed/embedding"
	"github.com/katalvlaran/layoutembed/mesh"
)

// ParseSolid maps a case-insensitive solid name to its builder constant.
func ParseSolid(name string) (builder.PlatonicName, error) {
	for p := builder.Tetrahedron; p <= builder.Icosahedron; p++ {
		if strings.EqualFold(p.String(), name) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSolid, name)
}

// Build constructs the mesh, the layout and the starting embedding.
// Every layout vertex is pinned; listed paths are already embedded.
func (p Problem) Build() (*embedding.Embedding, error) {
	target, err := p.Mesh.Build()
	if err != nil {
		return nil, err
	}
	layout, pins, err := p.layout()
	if err != nil {
		return nil, err
	}
	em, err := embedding.NewPinned(target, layout, pins)
	if err != nil {
		return nil, fmt.Errorf("config: pins: %w", err)
	}
	if err = reachable(em); err != nil {
		return nil, err
	}
	for i, ps := range p.Paths {
		path, err := walk(target, ps.Vertices)
		if err != nil {
			return nil, fmt.Errorf("config: paths[%d]: %w", i, err)
		}
		if ps.LayoutEdge < 0 || ps.LayoutEdge >= layout.NumEdges() {
			return nil, fmt.Errorf("config: paths[%d]: layout edge %d: %w", i, ps.LayoutEdge, ErrBadProblem)
		}
		if err = em.EmbedEdge(ps.LayoutEdge, path); err != nil {
			return nil, fmt.Errorf("config: paths[%d]: %w", i, err)
		}
	}

	return em, nil
}

// Build constructs the target mesh.
func (m MeshSpec) Build() (*mesh.TargetMesh, error) {
	switch m.generator() {
	case GeneratorGrid:
		return builder.BuildMesh(m.options(), m.finish(builder.Grid(m.Rows, m.Cols))...)
	case GeneratorPlatonic:
		solid, err := ParseSolid(m.Solid)
		if err != nil {
			return nil, err
		}
		cons := []builder.Constructor{builder.PlatonicSolid(solid)}
		if m.Subdivide > 0 {
			cons = append(cons, builder.Subdivide(m.Subdivide))
		}

		return builder.BuildMesh(m.options(), m.finish(cons...)...)
	case GeneratorExplicit:
		return m.explicit()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, m.Generator)
	}
}

func (m MeshSpec) options() []builder.BuilderOption {
	var opts []builder.BuilderOption
	if m.Scale > 0 {
		opts = append(opts, builder.WithScale(m.Scale))
	}
	if m.Sphere {
		opts = append(opts, builder.WithSphereProjection())
	}
	if m.Perturb > 0 {
		opts = append(opts, builder.WithSeed(m.Seed))
	}

	return opts
}

func (m MeshSpec) finish(cons ...builder.Constructor) []builder.Constructor {
	if m.Perturb > 0 {
		cons = append(cons, builder.Perturb(m.Perturb))
	}

	return cons
}

func (m MeshSpec) explicit() (*mesh.TargetMesh, error) {
	positions := make([]r3.Vec, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	}
	if len(m.Faces) > 0 {
		faces := make([]mesh.Face, len(m.Faces))
		for i, f := range m.Faces {
			faces[i] = mesh.Face(f)
		}
		if m.Lengths != nil {
			return nil, fmt.Errorf("config: lengths need an edge list, not faces: %w", ErrBadProblem)
		}

		return mesh.NewTargetMesh(positions, faces)
	}

	return mesh.NewTargetMeshFromEdges(positions, m.Edges, m.Lengths)
}

func (p Problem) layout() (*mesh.LayoutGraph, []int, error) {
	if p.Layout.FromSolid {
		if p.Mesh.generator() != GeneratorPlatonic {
			return nil, nil, fmt.Errorf("config: from_solid needs a platonic mesh: %w", ErrBadProblem)
		}
		solid, err := ParseSolid(p.Mesh.Solid)
		if err != nil {
			return nil, nil, err
		}
		layout, pins, err := builder.SolidLayout(solid)
		if err != nil {
			return nil, nil, err
		}
		if p.Layout.Pins != nil {
			pins = p.Layout.Pins
		}

		return layout, pins, nil
	}

	n := p.Layout.Vertices
	if n == 0 {
		n = len(p.Layout.Pins)
	}
	layout, err := mesh.NewLayoutGraph(n, p.Layout.Edges)
	if err != nil {
		return nil, nil, fmt.Errorf("config: layout: %w", err)
	}

	return layout, p.Layout.Pins, nil
}

// reachable rejects layout edges whose pinned endpoints are disconnected.
func reachable(em *embedding.Embedding) error {
	labels, count := em.Target().Components()
	if count == 1 {
		return nil
	}
	for le := 0; le < em.Layout().NumEdges(); le++ {
		src, dst := em.Endpoints(le)
		if labels[src] != labels[dst] {
			return fmt.Errorf("config: layout edge %d joins disconnected mesh vertices %d and %d: %w", le, src, dst, ErrBadProblem)
		}
	}

	return nil
}

// walk turns a vertex walk into a path, looking up the edge of every step.
func walk(m *mesh.TargetMesh, vertices []int) (embedding.Path, error) {
	if len(vertices) < 2 {
		return embedding.Path{}, fmt.Errorf("walk of %d vertices: %w", len(vertices), ErrBadProblem)
	}
	edges := make([]int, 0, len(vertices)-1)
	for i := 1; i < len(vertices); i++ {
		u, v := vertices[i-1], vertices[i]
		if !m.HasVertex(u) || !m.HasVertex(v) {
			return embedding.Path{}, fmt.Errorf("step %d-%d: %w", u, v, mesh.ErrVertexOutOfRange)
		}
		e, ok := m.EdgeBetween(u, v)
		if !ok {
			return embedding.Path{}, fmt.Errorf("step %d-%d: no mesh edge: %w", u, v, ErrBadProblem)
		}
		edges = append(edges, e)
	}

	return embedding.Path{Vertices: append([]int(nil), vertices...), Edges: edges}, nil
}
