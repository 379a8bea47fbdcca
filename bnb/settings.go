package bnb

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/layoutembed/pathgen"
)

// Priority selects the frontier ordering rule.
type Priority int

const (
	// LowerBoundNonConflicting orders by lower bound × number of mutually
	// non-conflicting remaining candidate paths.
	LowerBoundNonConflicting Priority = iota
	// LowerBound orders by lower bound (pure best-first).
	LowerBound
)

// String returns the configuration name of p.
func (p Priority) String() string {
	switch p {
	case LowerBoundNonConflicting:
		return "lower_bound_non_conflicting"
	case LowerBound:
		return "lower_bound"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if p != LowerBound && p != LowerBoundNonConflicting {
		return nil, fmt.Errorf("priority %d: %w", int(p), ErrInvalidSettings)
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both snake_case and
// CamelCase spellings are accepted.
func (p *Priority) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(string(text)), "_", ""))
	switch s {
	case "lowerboundnonconflicting":
		*p = LowerBoundNonConflicting
	case "lowerbound":
		*p = LowerBound
	default:
		return fmt.Errorf("priority %q: %w", string(text), ErrInvalidSettings)
	}

	return nil
}

// Branching selects which layout edges an expansion branches on.
type Branching int

const (
	// BranchOnSelectedEdge branches on the one edge EdgeSelection picks.
	BranchOnSelectedEdge Branching = iota
	// BranchOnAllEdges branches on every unembedded edge. Different insertion
	// orders then reach the same state, which UseStateHashing folds together.
	BranchOnAllEdges
)

// String returns the configuration name of b.
func (b Branching) String() string {
	switch b {
	case BranchOnSelectedEdge:
		return "selected_edge"
	case BranchOnAllEdges:
		return "all_edges"
	default:
		return fmt.Sprintf("Branching(%d)", int(b))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Branching) MarshalText() ([]byte, error) {
	if b != BranchOnSelectedEdge && b != BranchOnAllEdges {
		return nil, fmt.Errorf("branching %d: %w", int(b), ErrInvalidSettings)
	}

	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Branching) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "selected_edge":
		*b = BranchOnSelectedEdge
	case "all_edges":
		*b = BranchOnAllEdges
	default:
		return fmt.Errorf("branching %q: %w", string(text), ErrInvalidSettings)
	}

	return nil
}

// DefaultMaxCandidatePaths is the per-edge branching cap used when
// Settings.MaxCandidatePaths is 0.
const DefaultMaxCandidatePaths = 32

// Settings configures one BranchAndBound run.
type Settings struct {
	// OptimalityGap stops the search once (cost − lower bound)/cost ≤ this fraction.
	OptimalityGap float64 `toml:"optimality_gap"`

	// TimeLimit bounds wall-clock time; <= 0 disables it.
	TimeLimit time.Duration `toml:"time_limit"`

	// ExtendTimeLimitToEnsureSolution keeps searching past TimeLimit until a
	// complete embedding exists.
	ExtendTimeLimitToEnsureSolution bool `toml:"extend_time_limit_to_ensure_solution"`

	RecordUpperBoundEvents bool `toml:"record_upper_bound_events"`
	RecordLowerBoundEvents bool `toml:"record_lower_bound_events"`

	Priority Priority `toml:"priority"`

	// UseStateHashing drops children whose embedded path set was already seen.
	UseStateHashing bool `toml:"use_state_hashing"`

	// UseProactivePruning drops children whose bound reaches the incumbent
	// before they enter the frontier, and caps candidate enumeration.
	UseProactivePruning bool `toml:"use_proactive_pruning"`

	// UseCandidatePathsForLowerBounds bounds unembedded edges by their
	// constrained shortest path instead of the unconstrained mesh distance.
	UseCandidatePathsForLowerBounds bool `toml:"use_candidate_paths_for_lower_bounds"`

	PrintCurrentInsertionSequence bool `toml:"print_current_insertion_sequence"`
	PrintMemoryFootprintEstimate  bool `toml:"print_memory_footprint_estimate"`

	// UseGreedyInit seeds the incumbent with the Initializer's result.
	UseGreedyInit bool `toml:"use_greedy_init"`

	// MaxCandidatePaths caps the paths generated per branched edge; 0 means
	// DefaultMaxCandidatePaths. Skipped paths lower the global bound.
	MaxCandidatePaths int `toml:"max_candidate_paths"`

	// EdgeSelection picks the layout edge each node branches on.
	EdgeSelection pathgen.SelectionPolicy `toml:"edge_selection"`

	Branching Branching `toml:"branching"`

	// LogInterval is the cadence of the periodic progress line; 0 logs every iteration.
	LogInterval time.Duration `toml:"log_interval"`
}

// DefaultSettings returns the recommended configuration.
func DefaultSettings() Settings {
	return Settings{
		OptimalityGap:                   0.01,
		TimeLimit:                       time.Hour,
		ExtendTimeLimitToEnsureSolution: true,
		RecordUpperBoundEvents:          true,
		RecordLowerBoundEvents:          false,
		Priority:                        LowerBoundNonConflicting,
		UseStateHashing:                 true,
		UseProactivePruning:             true,
		UseCandidatePathsForLowerBounds: true,
		PrintCurrentInsertionSequence:   true,
		PrintMemoryFootprintEstimate:    true,
		UseGreedyInit:                   true,
		MaxCandidatePaths:               0,
		EdgeSelection:                   pathgen.MostConstrainedFirst,
		Branching:                       BranchOnSelectedEdge,
		LogInterval:                     time.Second,
	}
}

// Validate reports the first nonsensical field, wrapped in ErrInvalidSettings.
func (s Settings) Validate() error {
	switch {
	case math.IsNaN(s.OptimalityGap) || s.OptimalityGap < 0:
		return fmt.Errorf("optimality_gap %g: %w", s.OptimalityGap, ErrInvalidSettings)
	case s.Priority != LowerBound && s.Priority != LowerBoundNonConflicting:
		return fmt.Errorf("priority %d: %w", int(s.Priority), ErrInvalidSettings)
	case s.MaxCandidatePaths < 0:
		return fmt.Errorf("max_candidate_paths %d: %w", s.MaxCandidatePaths, ErrInvalidSettings)
	case !s.EdgeSelection.Valid():
		return fmt.Errorf("edge_selection %d: %w", int(s.EdgeSelection), ErrInvalidSettings)
	case s.Branching != BranchOnSelectedEdge && s.Branching != BranchOnAllEdges:
		return fmt.Errorf("branching %d: %w", int(s.Branching), ErrInvalidSettings)
	case s.LogInterval < 0:
		return fmt.Errorf("log_interval %s: %w", s.LogInterval, ErrInvalidSettings)
	}

	return nil
}

func (s Settings) candidateCap() int {
	if s.MaxCandidatePaths == 0 {
		return DefaultMaxCandidatePaths
	}

	return s.MaxCandidatePaths
}
