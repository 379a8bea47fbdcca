package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/layoutembed/bnb"
	"github.com/katalvlaran/layoutembed/config"
	"github.com/katalvlaran/layoutembed/embedding"
	"github.com/katalvlaran/layoutembed/greedy"
	"github.com/katalvlaran/layoutembed/metrics"
)

type solveOptions struct {
	config      string
	timeLimit   time.Duration
	gap         float64
	noGreedy    bool
	maxPaths    int
	metricsAddr string
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Embed a layout with the greedy router and branch and bound",
		Long: `Solve loads a problem file, routes it once greedily and then runs branch and bound,
printing cost, lower bound, gap and the chosen paths. Flags override the [search] table.`,
		Example: `  layoutembed solve --config problem.toml
  layoutembed solve --config problem.toml --time-limit 30s --gap 0 --metrics-addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "problem file (TOML)")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "search time limit; 0 disables it")
	cmd.Flags().Float64Var(&opts.gap, "gap", 0, "relative optimality gap at which to stop")
	cmd.Flags().BoolVar(&opts.noGreedy, "no-greedy", false, "skip the greedy router, including the search seed")
	cmd.Flags().IntVar(&opts.maxPaths, "max-paths", 0, "candidate paths per branch; 0 means the default cap")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, opts solveOptions) error {
	f, err := config.NewLoader(c.log).LoadFile(opts.config)
	if err != nil {
		return err
	}
	s := f.Search
	flags := cmd.Flags()
	if flags.Changed("time-limit") {
		s.TimeLimit = opts.timeLimit
	}
	if flags.Changed("gap") {
		s.OptimalityGap = opts.gap
	}
	if flags.Changed("max-paths") {
		s.MaxCandidatePaths = opts.maxPaths
	}
	if opts.noGreedy {
		s.UseGreedyInit = false
	}

	em, err := f.Problem.Build()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}
	if opts.metricsAddr != "" {
		stop := c.serveMetrics(opts.metricsAddr, reg)
		defer stop()
	}

	seed := &greedySeed{}
	res, err := bnb.BranchAndBound(cmd.Context(), em, s, f.Problem.Name,
		bnb.WithLogger(c.log),
		bnb.WithObserver(collector),
		bnb.WithInitializer(seed.embed),
	)
	c.reportGreedy(seed)
	var infeasible *bnb.InfeasibleError
	if errors.As(err, &infeasible) {
		fmt.Fprintf(c.out, "%s: no embedding (%s after %d iterations)\n", res.Algorithm, infeasible.Reason, res.NumIters)

		return err
	}
	if err != nil {
		return err
	}
	c.reportResult(res)

	return nil
}

// greedySeed is the search's initializer; it keeps what greedy.Embed did so
// the seed can be reported without routing twice.
type greedySeed struct {
	runs int
	cost float64
	n    int
	took time.Duration
	err  error
}

func (g *greedySeed) embed(em *embedding.Embedding) (embedding.InsertionSequence, error) {
	g.runs++
	start := time.Now()
	seq, err := greedy.Embed(em)
	g.took = time.Since(start)
	g.err = err
	if err == nil {
		g.cost, g.n = em.Cost(), len(seq)
	}

	return seq, err
}

func (c *CLI) reportGreedy(g *greedySeed) {
	switch {
	case g.runs == 0:
	case g.err != nil:
		fmt.Fprintf(c.out, "greedy: failed: %v\n", g.err)
	default:
		fmt.Fprintf(c.out, "greedy: cost %.4f, %d paths, %s\n", g.cost, g.n, elapsed(g.took))
	}
}

func (c *CLI) reportResult(res bnb.Result) {
	fmt.Fprintf(c.out, "%s: cost %.4f, lower bound %.4f, gap %.4f\n", res.Algorithm, res.Cost, res.LowerBound, res.Gap)
	fmt.Fprintf(c.out, "  termination %s, %d iterations, %s\n", res.Termination, res.NumIters, elapsed(res.Elapsed))
	fmt.Fprintf(c.out, "  expanded %d, pruned %d, duplicates %d, dead ends %d, peak frontier %d bytes\n",
		res.Stats.Expanded, res.Stats.Pruned, res.Stats.Duplicates, res.Stats.DeadEnds, res.MaxStateTreeMemoryEstimate)
	fmt.Fprintf(c.out, "  sequence %s\n", res.InsertionSequence)
	for _, in := range res.InsertionSequence {
		fmt.Fprintf(c.out, "  e%d: %s\n", in.LayoutEdge, in.Path)
	}
}
