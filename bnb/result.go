package bnb

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/layoutembed/embedding"
)

// UpperBoundEvent records an improved incumbent at time T since the start.
type UpperBoundEvent struct {
	T          time.Duration
	UpperBound float64
}

// LowerBoundEvent records a raised global lower bound at time T since the start.
type LowerBoundEvent struct {
	T          time.Duration
	LowerBound float64
}

// Termination tells why the main loop ended.
type Termination int

const (
	// TerminationExhausted: the frontier emptied.
	TerminationExhausted Termination = iota
	// TerminationGap: the optimality gap target was reached.
	TerminationGap
	// TerminationTimeLimit: the time limit expired.
	TerminationTimeLimit
	// TerminationCancelled: the context was cancelled.
	TerminationCancelled
)

// String returns a short label.
func (t Termination) String() string {
	switch t {
	case TerminationExhausted:
		return "exhausted"
	case TerminationGap:
		return "gap"
	case TerminationTimeLimit:
		return "time_limit"
	case TerminationCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

// Stats counts node transitions and discarded children.
type Stats struct {
	Expanded          int // Open → Expanded
	Pruned            int // Open → Pruned at pop
	Completed         int // Open → Complete
	ProactivelyPruned int // children dropped before push
	Duplicates        int // children dropped by state hashing
	DeadEnds          int // nodes or children without any feasible completion
	Conflicts         int // candidates rejected by the embedding
	Truncated         int // candidate lists cut by the path cap or a stop
}

// Result is the outcome of a BranchAndBound run. It is filled in even when
// the run ends with an *InfeasibleError.
type Result struct {
	Algorithm string
	RunID     string
	Settings  Settings

	// InsertionSequence and Embedding describe the best complete embedding;
	// both are nil when none was found.
	InsertionSequence embedding.InsertionSequence
	Embedding         *embedding.Embedding

	Cost       float64
	LowerBound float64
	Gap        float64

	UpperBoundEvents []UpperBoundEvent
	LowerBoundEvents []LowerBoundEvent

	// MaxStateTreeMemoryEstimate is the peak frontier footprint in bytes.
	MaxStateTreeMemoryEstimate int64
	NumIters                   int

	Stats       Stats
	Termination Termination
	Elapsed     time.Duration
}

// Found reports whether a complete embedding was produced.
func (r *Result) Found() bool { return r.Embedding != nil }

// Gap returns (cost − lb)/cost, 1 for an infinite cost and 0 for a zero cost.
func Gap(cost, lb float64) float64 {
	switch {
	case math.IsInf(cost, 1):
		return 1
	case cost == 0:
		return 0
	}

	return (cost - lb) / cost
}
