// Package metrics exports branch-and-bound progress as Prometheus series.
//
// Collector implements bnb.Observer; pass it with bnb.WithObserver. All
// series carry the run name as label "name".
package metrics

import (
	"context"
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/layoutembed/bnb"
)

// Outcome label values.
const (
	outcomeFound      = "found"
	outcomeInfeasible = "infeasible"
)

// Collector holds the search series of one registry.
type Collector struct {
	runs       *prometheus.CounterVec
	iterations *prometheus.CounterVec
	nodes      *prometheus.CounterVec
	discarded  *prometheus.CounterVec
	upper      *prometheus.GaugeVec
	lower      *prometheus.GaugeVec
	gap        *prometheus.GaugeVec
	frontier   *prometheus.GaugeVec
	memory     *prometheus.GaugeVec
	duration   *prometheus.HistogramVec
}

var _ bnb.Observer = (*Collector)(nil)

// NewCollector creates the series and registers them with reg
// (prometheus.DefaultRegisterer when nil).
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "layoutembed_bnb_runs_total",
			Help: "Branch-and-bound runs by outcome.",
		}, []string{"name", "outcome"}),
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "layoutembed_bnb_iterations_total",
			Help: "Frontier pops.",
		}, []string{"name"}),
		nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "layoutembed_bnb_nodes_total",
			Help: "Popped nodes by final state.",
		}, []string{"name", "state"}),
		discarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "layoutembed_bnb_discarded_total",
			Help: "Children dropped before entering the frontier, by reason.",
		}, []string{"name", "reason"}),
		upper: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "layoutembed_bnb_upper_bound",
			Help: "Cost of the best complete embedding.",
		}, []string{"name"}),
		lower: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "layoutembed_bnb_lower_bound",
			Help: "Proven lower bound on the optimal cost.",
		}, []string{"name"}),
		gap: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "layoutembed_bnb_gap_ratio",
			Help: "Relative optimality gap.",
		}, []string{"name"}),
		frontier: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "layoutembed_bnb_frontier_nodes",
			Help: "Open nodes.",
		}, []string{"name"}),
		memory: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "layoutembed_bnb_frontier_bytes",
			Help: "Estimated frontier footprint in bytes.",
		}, []string{"name"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "layoutembed_bnb_run_seconds",
			Help:    "Wall-clock duration of a run, in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"name", "outcome"}),
	}
	for _, col := range []prometheus.Collector{
		c.runs, c.iterations, c.nodes, c.discarded,
		c.upper, c.lower, c.gap, c.frontier, c.memory, c.duration,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// OnStart resets the per-run gauges.
func (c *Collector) OnStart(_ context.Context, name, _ string) {
	c.upper.WithLabelValues(name).Set(math.Inf(1))
	c.lower.WithLabelValues(name).Set(0)
	c.gap.WithLabelValues(name).Set(1)
	c.frontier.WithLabelValues(name).Set(0)
	c.memory.WithLabelValues(name).Set(0)
}

// OnIteration mirrors the controller snapshot.
func (c *Collector) OnIteration(_ context.Context, name string, s bnb.Snapshot) {
	c.iterations.WithLabelValues(name).Inc()
	c.frontier.WithLabelValues(name).Set(float64(s.Frontier))
	c.memory.WithLabelValues(name).Set(float64(s.MemoryEstimate))
	c.gap.WithLabelValues(name).Set(s.Gap)
}

// OnNode counts terminal and expanded nodes.
func (c *Collector) OnNode(_ context.Context, name string, state bnb.NodeState) {
	c.nodes.WithLabelValues(name, state.String()).Inc()
}

// OnDiscard counts dropped children.
func (c *Collector) OnDiscard(_ context.Context, name string, why bnb.Discard) {
	c.discarded.WithLabelValues(name, why.String()).Inc()
}

// OnUpperBound tracks the incumbent.
func (c *Collector) OnUpperBound(_ context.Context, name string, ev bnb.UpperBoundEvent) {
	c.upper.WithLabelValues(name).Set(ev.UpperBound)
}

// OnLowerBound tracks the global bound.
func (c *Collector) OnLowerBound(_ context.Context, name string, ev bnb.LowerBoundEvent) {
	c.lower.WithLabelValues(name).Set(ev.LowerBound)
}

// OnFinish records the run outcome and duration.
func (c *Collector) OnFinish(_ context.Context, name string, res *bnb.Result, err error) {
	outcome := outcomeFound
	if err != nil {
		outcome = outcomeInfeasible
	}
	c.runs.WithLabelValues(name, outcome).Inc()
	c.duration.WithLabelValues(name, outcome).Observe(res.Elapsed.Seconds())
	c.gap.WithLabelValues(name).Set(res.Gap)
}
