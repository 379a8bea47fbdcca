package bnb

import "context"

// Discard tells why a generated child never entered the frontier.
type Discard int

const (
	// DiscardBound: the child's bound reached the incumbent.
	DiscardBound Discard = iota
	// DiscardDuplicate: the child's embedded path set was already seen.
	DiscardDuplicate
	// DiscardDead: some unembedded edge of the child has no feasible path.
	DiscardDead
	// DiscardConflict: the embedding refused the candidate path.
	DiscardConflict
)

// String returns a metric-friendly label.
func (d Discard) String() string {
	switch d {
	case DiscardBound:
		return "bound"
	case DiscardDuplicate:
		return "duplicate"
	case DiscardDead:
		return "dead"
	case DiscardConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Snapshot is the controller state after one iteration.
type Snapshot struct {
	Iteration      int
	Frontier       int
	UpperBound     float64
	LowerBound     float64
	Gap            float64
	MemoryEstimate int64
}

// Observer receives search events. Calls happen on the search goroutine
// and must not block.
type Observer interface {
	OnStart(ctx context.Context, name, runID string)
	OnIteration(ctx context.Context, name string, s Snapshot)
	OnNode(ctx context.Context, name string, state NodeState)
	OnDiscard(ctx context.Context, name string, why Discard)
	OnUpperBound(ctx context.Context, name string, ev UpperBoundEvent)
	OnLowerBound(ctx context.Context, name string, ev LowerBoundEvent)
	OnFinish(ctx context.Context, name string, res *Result, err error)
}

// NoopObserver ignores every event.
type NoopObserver struct{}

func (NoopObserver) OnStart(context.Context, string, string)               {}
func (NoopObserver) OnIteration(context.Context, string, Snapshot)         {}
func (NoopObserver) OnNode(context.Context, string, NodeState)             {}
func (NoopObserver) OnDiscard(context.Context, string, Discard)            {}
func (NoopObserver) OnUpperBound(context.Context, string, UpperBoundEvent) {}
func (NoopObserver) OnLowerBound(context.Context, string, LowerBoundEvent) {}
func (NoopObserver) OnFinish(context.Context, string, *Result, error)      {}
