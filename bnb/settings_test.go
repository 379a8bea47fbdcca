package bnb_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layoutembed/bnb"
	"github.com/katalvlaran/layoutembed/pathgen"
)

func TestDefaultSettings(t *testing.T) {
	s := bnb.DefaultSettings()
	require.NoError(t, s.Validate())

	assert.Equal(t, 0.01, s.OptimalityGap)
	assert.Equal(t, time.Hour, s.TimeLimit)
	assert.True(t, s.ExtendTimeLimitToEnsureSolution)
	assert.True(t, s.RecordUpperBoundEvents)
	assert.False(t, s.RecordLowerBoundEvents)
	assert.Equal(t, bnb.LowerBoundNonConflicting, s.Priority)
	assert.True(t, s.UseStateHashing)
	assert.True(t, s.UseProactivePruning)
	assert.True(t, s.UseCandidatePathsForLowerBounds)
	assert.True(t, s.UseGreedyInit)
	assert.Zero(t, s.MaxCandidatePaths)
	assert.Equal(t, pathgen.MostConstrainedFirst, s.EdgeSelection)
	assert.Equal(t, bnb.BranchOnSelectedEdge, s.Branching)
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*bnb.Settings)
	}{
		{"negative gap", func(s *bnb.Settings) { s.OptimalityGap = -0.1 }},
		{"NaN gap", func(s *bnb.Settings) { s.OptimalityGap = math.NaN() }},
		{"unknown priority", func(s *bnb.Settings) { s.Priority = bnb.Priority(7) }},
		{"negative k", func(s *bnb.Settings) { s.MaxCandidatePaths = -1 }},
		{"unknown policy", func(s *bnb.Settings) { s.EdgeSelection = pathgen.SelectionPolicy(7) }},
		{"unknown branching", func(s *bnb.Settings) { s.Branching = bnb.Branching(3) }},
		{"negative log interval", func(s *bnb.Settings) { s.LogInterval = -time.Second }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := bnb.DefaultSettings()
			tc.mod(&s)
			require.ErrorIs(t, s.Validate(), bnb.ErrInvalidSettings)
		})
	}

	s := bnb.DefaultSettings()
	s.TimeLimit = -time.Second
	assert.NoError(t, s.Validate(), "non-positive time limit disables it")
}

func TestPriorityText(t *testing.T) {
	var p bnb.Priority
	require.NoError(t, p.UnmarshalText([]byte("LowerBound")))
	assert.Equal(t, bnb.LowerBound, p)
	require.NoError(t, p.UnmarshalText([]byte("lower_bound_non_conflicting")))
	assert.Equal(t, bnb.LowerBoundNonConflicting, p)
	require.ErrorIs(t, p.UnmarshalText([]byte("depth_first")), bnb.ErrInvalidSettings)

	b, err := bnb.LowerBound.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "lower_bound", string(b))
}

func TestBranchingText(t *testing.T) {
	var b bnb.Branching
	require.NoError(t, b.UnmarshalText([]byte("ALL_EDGES")))
	assert.Equal(t, bnb.BranchOnAllEdges, b)
	require.ErrorIs(t, b.UnmarshalText([]byte("depth_first")), bnb.ErrInvalidSettings)

	out, err := bnb.BranchOnSelectedEdge.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "selected_edge", string(out))
	_, err = bnb.Branching(9).MarshalText()
	require.ErrorIs(t, err, bnb.ErrInvalidSettings)
}

func TestGap(t *testing.T) {
	assert.Equal(t, 1.0, bnb.Gap(math.Inf(1), 3))
	assert.Zero(t, bnb.Gap(0, 0))
	assert.InDelta(t, 0.25, bnb.Gap(4, 3), 1e-12)
}
