package pathgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/layoutembed/embedding"
)

// ErrUnknownPolicy is returned when parsing an unknown SelectionPolicy name.
var ErrUnknownPolicy = errors.New("pathgen: unknown selection policy")

// DefaultProbe is the per-edge candidate count MostConstrainedFirst stops
// counting at.
const DefaultProbe = 3

// Candidates is the outcome of KShortest for one layout edge.
type Candidates struct {
	// LayoutEdge is the edge the paths were generated for.
	LayoutEdge int

	// Paths are feasible, ascending by (Length, vertices), all shorter than the ceiling.
	Paths []embedding.Path

	// Truncated is set when generation stopped at k although a further
	// path shorter than the ceiling exists.
	Truncated bool

	// NextLength is the length of the first path not returned; +Inf if none.
	// Meaningful only when Truncated is set. After a stop it is the least
	// length any unreturned path can have.
	NextLength float64

	// Stopped is set when the stop hook of KShortestUntil ended generation.
	Stopped bool
}

// Empty reports whether no feasible path was found.
func (c Candidates) Empty() bool { return len(c.Paths) == 0 }

// SelectionPolicy chooses which unembedded layout edge a node branches on.
type SelectionPolicy int

const (
	// MostConstrainedFirst picks the edge with the fewest candidates, counted
	// up to DefaultProbe; ties go to the lower edge ID.
	MostConstrainedFirst SelectionPolicy = iota
	// FixedOrder picks the lowest unembedded edge ID.
	FixedOrder
)

var policyNames = map[SelectionPolicy]string{
	MostConstrainedFirst: "most_constrained_first",
	FixedOrder:           "fixed_order",
}

// String returns the snake_case policy name.
func (p SelectionPolicy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("SelectionPolicy(%d)", int(p))
}

// Valid reports whether p is a known policy.
func (p SelectionPolicy) Valid() bool {
	_, ok := policyNames[p]

	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (p SelectionPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%d: %w", int(p), ErrUnknownPolicy)
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; names are case-insensitive.
func (p *SelectionPolicy) UnmarshalText(text []byte) error {
	v, err := ParseSelectionPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// ParseSelectionPolicy maps a name such as "fixed_order" to its policy.
func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
}
