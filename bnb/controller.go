package bnb

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/layoutembed/embedding"
	"github.com/katalvlaran/layoutembed/pathgen"
)

// controller owns every piece of mutable run state.
type controller struct {
	log  zerolog.Logger
	obs  Observer
	init Initializer
	now  func() time.Time

	ctx      context.Context
	name     string
	settings Settings
	start    time.Time
	deadline time.Time

	est      *boundEstimator
	frontier *frontier
	hasher   *stateHasher
	rule     priorityRule
	diag     *diagnostics

	best     *embedding.Embedding
	bestSeq  embedding.InsertionSequence
	bestCost float64
	floor    float64 // least bound of children skipped by the path cap or a stop
	cause    error   // ctx error behind TerminationCancelled

	res Result
}

// BranchAndBound searches for a minimum-cost completion of em, whose layout
// vertices must all be assigned. Edges already embedded in em are kept.
//
// On success the best embedding is written back into em and also returned in
// Result.Embedding. If no complete embedding is found the error is an
// *InfeasibleError and em is left untouched; the Result still carries the
// run's telemetry. Time limit and ctx are polled at the top of every
// iteration and between path searches inside an expansion.
func BranchAndBound(ctx context.Context, em *embedding.Embedding, settings Settings, name string, opts ...Option) (Result, error) {
	if em == nil {
		return Result{}, ErrNilEmbedding
	}
	if err := settings.Validate(); err != nil {
		return Result{}, err
	}
	if !em.AllAssigned() {
		return Result{}, ErrUnassignedVertices
	}

	c := defaultController()
	for _, opt := range opts {
		opt(c)
	}
	c.ctx = ctx
	c.name = name
	c.settings = settings
	c.log = c.log.With().Str("component", "bnb").Str("name", name).Logger()
	c.res = Result{
		Algorithm:  name,
		RunID:      uuid.NewString(),
		Settings:   settings,
		Cost:       math.Inf(1),
		LowerBound: 0,
		Gap:        1,
	}
	c.bestCost = math.Inf(1)
	c.floor = math.Inf(1)
	c.start = c.now()
	if settings.TimeLimit > 0 {
		c.deadline = c.start.Add(settings.TimeLimit)
	}
	c.est = newBoundEstimator(em, settings.UseCandidatePathsForLowerBounds)
	c.frontier = newFrontier()
	c.rule = ruleFor(settings.Priority)
	c.diag = newDiagnostics(c.log, settings)
	if settings.UseStateHashing {
		c.hasher = newStateHasher()
	}

	c.obs.OnStart(ctx, name, c.res.RunID)
	c.log.Info().
		Str("run_id", c.res.RunID).
		Int("layout_edges", em.Layout().NumEdges()).
		Int("mesh_edges", em.Target().NumEdges()).
		Msg("branch and bound started")

	rootSeq := existingSequence(em)
	if settings.UseGreedyInit {
		c.seed(em, rootSeq)
	}
	c.offer(node{em: em.Clone(), seq: rootSeq}, c.est.estimate(em))

	runErr := c.run()
	c.finish(em, runErr)

	return c.res, c.resErr(runErr)
}

// existingSequence lists paths already embedded in em, by layout edge ID.
func existingSequence(em *embedding.Embedding) embedding.InsertionSequence {
	seq := make(embedding.InsertionSequence, 0, em.NumEmbedded())
	for le := 0; le < em.Layout().NumEdges(); le++ {
		if p, ok := em.Path(le); ok {
			seq = append(seq, embedding.Insertion{LayoutEdge: le, Path: p})
		}
	}

	return seq
}

// seed runs the initializer on a copy of the root and adopts its result.
func (c *controller) seed(root *embedding.Embedding, rootSeq embedding.InsertionSequence) {
	em := root.Clone()
	seq, err := c.init(em)
	if err != nil || !em.IsComplete() {
		c.log.Warn().Err(err).Msg("initial solution unavailable")

		return
	}
	full := append(rootSeq.Clone(), seq...)
	c.improve(em, full, 0)
}

// improve adopts a strictly better complete embedding found at elapsed t.
func (c *controller) improve(em *embedding.Embedding, seq embedding.InsertionSequence, t time.Duration) {
	cost := em.Cost()
	if !(cost < c.bestCost) {
		return
	}
	c.best, c.bestSeq, c.bestCost = em, seq, cost
	ev := UpperBoundEvent{T: t, UpperBound: cost}
	if c.settings.RecordUpperBoundEvents {
		c.res.UpperBoundEvents = append(c.res.UpperBoundEvents, ev)
	}
	c.obs.OnUpperBound(c.ctx, c.name, ev)
	c.log.Info().
		Float64("upper_bound", cost).
		Dur("t", t).
		Stringer("sequence", seq).
		Msg("new incumbent")
}

// offer turns an evaluated node into a frontier entry, or discards it.
func (c *controller) offer(n node, b bound) {
	if math.IsInf(b.lb, 1) {
		c.res.Stats.DeadEnds++
		c.obs.OnDiscard(c.ctx, c.name, DiscardDead)

		return
	}
	n.lb = b.lb
	if b.completion != nil {
		seq := append(n.seq.Clone(), b.completion...)
		if err := b.completion.Apply(n.em); err != nil {
			panic(fmt.Sprintf("bnb: non-conflicting completion rejected: %v", err))
		}
		n.seq = seq
		n.lb = n.em.Cost()
	}
	if c.settings.UseProactivePruning && n.lb >= c.bestCost {
		c.res.Stats.ProactivelyPruned++
		c.obs.OnDiscard(c.ctx, c.name, DiscardBound)

		return
	}
	if c.hasher != nil && !c.hasher.visit(n.em) {
		c.res.Stats.Duplicates++
		c.obs.OnDiscard(c.ctx, c.name, DiscardDuplicate)

		return
	}
	n.priority = c.rule(n.lb, b.nonConflicting)
	c.frontier.push(n)
}

// run is the main loop.
func (c *controller) run() error {
	c.updateLowerBound()
	if c.gapReached() {
		c.res.Termination = TerminationGap

		return nil
	}

	for c.frontier.Len() > 0 {
		if c.interrupted() {
			return c.cause
		}

		n, _ := c.frontier.pop()
		stopped := false
		switch {
		case n.lb >= c.bestCost:
			n.state = Pruned
			c.res.Stats.Pruned++
		case n.em.IsComplete():
			n.state = Complete
			c.res.Stats.Completed++
			c.improve(n.em, n.seq, c.now().Sub(c.start))
		default:
			stopped = c.expand(&n)
			n.state = Expanded
			c.res.Stats.Expanded++
		}
		c.obs.OnNode(c.ctx, c.name, n.state)

		c.res.NumIters++
		if b := c.frontier.Bytes(); b > c.res.MaxStateTreeMemoryEstimate {
			c.res.MaxStateTreeMemoryEstimate = b
		}
		c.updateLowerBound()
		snap := c.snapshot()
		c.obs.OnIteration(c.ctx, c.name, snap)
		c.diag.tick(c.now(), snap, &n)

		if c.gapReached() {
			c.res.Termination = TerminationGap

			return nil
		}
		if stopped {
			return c.cause
		}
	}
	c.res.Termination = TerminationExhausted

	return nil
}

// expand branches n and reports whether a stop cut candidate generation
// short. With BranchOnSelectedEdge the children embed one more path on the
// selected edge; with BranchOnAllEdges every unembedded edge is branched on.
func (c *controller) expand(n *node) bool {
	edges := n.em.Unembedded()
	if c.settings.Branching == BranchOnSelectedEdge {
		le, ok := pathgen.Select(n.em, c.settings.EdgeSelection, pathgen.DefaultProbe)
		if !ok {
			panic("bnb: expanding a complete node")
		}
		edges = []int{le}
	}

	all := make([]pathgen.Candidates, 0, len(edges))
	stopped := false
	for _, le := range edges {
		var cands pathgen.Candidates
		cands, stopped = c.candidates(n, le)
		if cands.Empty() {
			// No path for le: n has no completion, whatever else is branched on.
			c.res.Stats.DeadEnds++

			return stopped
		}
		all = append(all, cands)
		if stopped {
			break
		}
	}

	for _, cands := range all {
		for _, p := range cands.Paths {
			child := n.em.Clone()
			if err := child.EmbedEdge(cands.LayoutEdge, p); err != nil {
				if errors.Is(err, embedding.ErrConflict) {
					c.res.Stats.Conflicts++
					c.obs.OnDiscard(c.ctx, c.name, DiscardConflict)

					continue
				}
				panic(fmt.Sprintf("bnb: generated path rejected: %v", err))
			}
			seq := append(n.seq.Clone(), embedding.Insertion{LayoutEdge: cands.LayoutEdge, Path: p})
			c.offer(node{em: child, seq: seq}, c.est.estimate(child))
		}
	}

	return stopped
}

// candidates generates the children paths of n on le and folds any skipped
// remainder into the truncation floor.
func (c *controller) candidates(n *node, le int) (pathgen.Candidates, bool) {
	contrib := c.est.edge(n.em, le)
	ceiling := math.Inf(1)
	if c.settings.UseProactivePruning {
		ceiling = c.bestCost - n.lb + contrib
	}
	cands := pathgen.KShortestUntil(n.em, le, c.settings.candidateCap(), ceiling, c.interrupted)
	if cands.Truncated {
		c.res.Stats.Truncated++
		if f := n.lb - contrib + cands.NextLength; f < c.floor {
			c.floor = f
		}
	}

	return cands, cands.Stopped
}

// interrupted reports whether ctx or the time limit ends the run now and
// records the termination if so. The clock is only read once a deadline
// applies: while ExtendTimeLimitToEnsureSolution waits for a first solution
// the limit is ignored.
func (c *controller) interrupted() bool {
	if err := c.ctx.Err(); err != nil {
		c.res.Termination = TerminationCancelled
		c.cause = err

		return true
	}
	if c.deadline.IsZero() || (c.settings.ExtendTimeLimitToEnsureSolution && c.best == nil) {
		return false
	}
	if c.now().Before(c.deadline) {
		return false
	}
	c.res.Termination = TerminationTimeLimit

	return true
}

// updateLowerBound raises the global bound to
// min(open bounds, truncation floor, incumbent), never lowering it.
func (c *controller) updateLowerBound() {
	lb := math.Min(c.frontier.minBound(), math.Min(c.floor, c.bestCost))
	if lb > c.res.LowerBound {
		c.res.LowerBound = lb
		ev := LowerBoundEvent{T: c.now().Sub(c.start), LowerBound: lb}
		if c.settings.RecordLowerBoundEvents {
			c.res.LowerBoundEvents = append(c.res.LowerBoundEvents, ev)
		}
		c.obs.OnLowerBound(c.ctx, c.name, ev)
	}
	if c.res.LowerBound > c.bestCost {
		c.res.LowerBound = c.bestCost
	}
	c.res.Cost = c.bestCost
	c.res.Gap = Gap(c.bestCost, c.res.LowerBound)
}

func (c *controller) gapReached() bool {
	return c.best != nil && c.res.Gap <= c.settings.OptimalityGap
}

func (c *controller) snapshot() Snapshot {
	return Snapshot{
		Iteration:      c.res.NumIters,
		Frontier:       c.frontier.Len(),
		UpperBound:     c.bestCost,
		LowerBound:     c.res.LowerBound,
		Gap:            c.res.Gap,
		MemoryEstimate: c.frontier.Bytes(),
	}
}

// finish fills the result and writes the incumbent back into root.
func (c *controller) finish(root *embedding.Embedding, runErr error) {
	c.res.Elapsed = c.now().Sub(c.start)
	defer func() {
		c.obs.OnFinish(c.ctx, c.name, &c.res, c.resErr(runErr))
	}()

	if c.best == nil {
		c.log.Warn().
			Str("termination", c.res.Termination.String()).
			Int("iters", c.res.NumIters).
			Msg("no complete embedding found")

		return
	}
	if err := c.best.Validate(); err != nil {
		panic(fmt.Sprintf("bnb: incumbent violates embedding invariants: %v", err))
	}
	c.res.InsertionSequence = c.bestSeq
	c.res.Embedding = c.best
	root.ReplaceWith(c.best)

	c.log.Info().
		Str("termination", c.res.Termination.String()).
		Float64("cost", c.res.Cost).
		Float64("lower_bound", c.res.LowerBound).
		Float64("gap", c.res.Gap).
		Int("iters", c.res.NumIters).
		Dur("elapsed", c.res.Elapsed).
		Msg("branch and bound finished")
}

// resErr maps the loop outcome to the error returned to the caller.
func (c *controller) resErr(runErr error) error {
	if c.best != nil {
		return nil
	}
	reason := ReasonExhausted
	switch c.res.Termination {
	case TerminationTimeLimit:
		reason = ReasonTimeLimit
	case TerminationCancelled:
		reason = ReasonCancelled
	}

	return &InfeasibleError{Name: c.name, Reason: reason, Iterations: c.res.NumIters, Cause: runErr}
}
