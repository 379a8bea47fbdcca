package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/layoutembed/bnb"
)

// Generator names accepted by [problem.mesh].
const (
	GeneratorGrid     = "grid"
	GeneratorPlatonic = "platonic"
	GeneratorExplicit = "explicit"
)

var (
	// ErrUnknownKey indicates a key the decoder does not know, usually a typo.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrUnknownGenerator indicates an unsupported [problem.mesh] generator.
	ErrUnknownGenerator = errors.New("config: unknown mesh generator")

	// ErrUnknownSolid indicates a solid name that is not a Platonic solid.
	ErrUnknownSolid = errors.New("config: unknown solid")

	// ErrBadProblem indicates an inconsistent [problem] table.
	ErrBadProblem = errors.New("config: invalid problem")
)

// File is a decoded problem file.
type File struct {
	Search  bnb.Settings `toml:"search"`
	Problem Problem      `toml:"problem"`
}

// Problem describes the target mesh, the layout and its placement.
type Problem struct {
	// Name labels the run in logs and metrics.
	Name   string     `toml:"name"`
	Mesh   MeshSpec   `toml:"mesh"`
	Layout LayoutSpec `toml:"layout"`
	Paths  []PathSpec `toml:"paths"`
}

// MeshSpec selects a built-in generator or lists the mesh explicitly.
type MeshSpec struct {
	Generator string `toml:"generator"`

	// grid
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	// platonic
	Solid     string `toml:"solid"`
	Subdivide int    `toml:"subdivide"`
	Sphere    bool   `toml:"sphere"`

	// common to generators
	Scale   float64 `toml:"scale"`
	Perturb float64 `toml:"perturb"`
	Seed    int64   `toml:"seed"`

	// explicit; faces take precedence over edges
	Vertices [][3]float64 `toml:"vertices"`
	Faces    [][3]int     `toml:"faces"`
	Edges    [][2]int     `toml:"edges"`
	Lengths  []float64    `toml:"lengths"`
}

// LayoutSpec lists the layout graph and the mesh vertex of each layout vertex.
type LayoutSpec struct {
	FromSolid bool     `toml:"from_solid"`
	Vertices  int      `toml:"vertices"`
	Edges     [][2]int `toml:"edges"`
	Pins      []int    `toml:"pins"`
}

// PathSpec is a route fixed before the search, as a mesh vertex walk.
type PathSpec struct {
	LayoutEdge int   `toml:"layout_edge"`
	Vertices   []int `toml:"vertices"`
}

// Loader decodes problem files.
type Loader struct {
	log zerolog.Logger
}

// NewLoader creates a loader that logs through log.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log.With().Str("component", "config").Logger()}
}

// LoadFile decodes the problem file at path.
func (l *Loader) LoadFile(path string) (*File, error) {
	l.log.Debug().Str("path", path).Msg("loading problem file")

	f := defaults()
	md, err := toml.DecodeFile(path, f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return l.finish(f, md)
}

// Decode reads a problem document from r.
func (l *Loader) Decode(r io.Reader) (*File, error) {
	f := defaults()
	md, err := toml.NewDecoder(r).Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	return l.finish(f, md)
}

func defaults() *File {
	return &File{
		Search:  bnb.DefaultSettings(),
		Problem: Problem{Name: "bnb"},
	}
}

func (l *Loader) finish(f *File, md toml.MetaData) (*File, error) {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}

		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
	}
	if err := f.Search.Validate(); err != nil {
		return nil, fmt.Errorf("config: [search]: %w", err)
	}

	l.log.Info().
		Str("name", f.Problem.Name).
		Str("generator", f.Problem.Mesh.generator()).
		Int("layout_edges", len(f.Problem.Layout.Edges)).
		Msg("problem file loaded")

	return f, nil
}

func (m MeshSpec) generator() string {
	if m.Generator == "" {
		return GeneratorExplicit
	}

	return strings.ToLower(m.Generator)
}
