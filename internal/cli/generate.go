package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperlath/builder"
	"github.com/katalvlaran/hyperlath/hmetis"
	"github.com/katalvlaran/hyperlath/internal/config"
)

type generateFlags struct {
	topology      string
	nodes         int
	edges         int
	arity         int
	seed          int64
	policy        string
	weightedNodes bool
	weightedEdges bool
	remapBase     int
	output        string
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a hypergraph and write it in hMETIS format",
		Long: `Generate a hypergraph from one of the built-in topologies and write it in
hMETIS format to stdout or --output.

Topologies:
- windows   n nodes, sliding windows of size k
- star      one center joined to n-1 leaves
- complete  every k-subset of n nodes (n <= 20)
- random    m distinct random k-subsets of n nodes`,
		Example: `
# 10 nodes covered by windows of 3
hyperlath generate -t windows -n 10 -k 3

# Random hypergraph with weighted edges, written to a file
hyperlath generate -t random -n 50 -m 120 -k 4 --weighted-edges --seed 7 -o graph.hgr
`,
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, _ []string) error {
		applyGenerateFlags(cmd, &a.cfg, f)
		if err := a.cfg.Validate(); err != nil {
			return err
		}

		return a.generate()
	})

	cmd.Flags().StringVarP(&f.topology, "topology", "t", "", "Topology (windows, star, complete, random)")
	cmd.Flags().IntVarP(&f.nodes, "nodes", "n", 0, "Number of nodes")
	cmd.Flags().IntVarP(&f.edges, "edges", "m", 0, "Number of edges (random only)")
	cmd.Flags().IntVarP(&f.arity, "arity", "k", 0, "Nodes per edge (windows, complete, random)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for random topologies and weights")
	cmd.Flags().StringVar(&f.policy, "policy", "", "Id policy (sequential, explicit)")
	cmd.Flags().BoolVar(&f.weightedNodes, "weighted-nodes", false, "Export node weights")
	cmd.Flags().BoolVar(&f.weightedEdges, "weighted-edges", false, "Export edge weights")
	cmd.Flags().IntVar(&f.remapBase, "remap-base", 0, "Renumber nodes contiguously from this base")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

// applyGenerateFlags copies every flag the user actually set over cfg.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config, f generateFlags) {
	flags := cmd.Flags()
	if flags.Changed("topology") {
		cfg.Generate.Topology = f.topology
	}
	if flags.Changed("nodes") {
		cfg.Generate.Nodes = f.nodes
	}
	if flags.Changed("edges") {
		cfg.Generate.Edges = f.edges
	}
	if flags.Changed("arity") {
		cfg.Generate.Arity = f.arity
	}
	if flags.Changed("seed") {
		cfg.Generate.Seed = f.seed
	}
	if flags.Changed("policy") {
		cfg.Graph.Policy = f.policy
	}
	if flags.Changed("weighted-nodes") {
		cfg.Graph.WeightedNodes = f.weightedNodes
	}
	if flags.Changed("weighted-edges") {
		cfg.Graph.WeightedEdges = f.weightedEdges
	}
	if flags.Changed("remap-base") {
		base := f.remapBase
		cfg.Export.RemapBase = &base
	}
	if flags.Changed("output") {
		cfg.Export.Output = f.output
	}
}

func (a *app) generate() error {
	gen := a.cfg.Generate
	gopts, err := a.cfg.GraphOptions()
	if err != nil {
		return err
	}
	cons, err := constructorFor(gen)
	if err != nil {
		return err
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(gen.Seed),
		builder.WithNodeWeightFn(builder.UniformWeightFn(gen.NodeWeight.Min, gen.NodeWeight.Max)),
		builder.WithEdgeWeightFn(builder.UniformWeightFn(gen.EdgeWeight.Min, gen.EdgeWeight.Max)),
	}

	a.logger.Debug("building hypergraph",
		"topology", gen.Topology, "nodes", gen.Nodes, "edges", gen.Edges, "arity", gen.Arity,
		"seed", gen.Seed, "policy", a.cfg.Graph.Policy)

	g, err := builder.BuildHypergraph(gopts, bopts, cons)
	if err != nil {
		return fmt.Errorf("generate %s: %w", gen.Topology, err)
	}

	var eopts []hmetis.Option
	if a.cfg.Export.RemapBase != nil {
		eopts = append(eopts, hmetis.WithRemappedIDs(*a.cfg.Export.RemapBase))
	}

	out, closeOut, err := a.openOutput(a.cfg.Export.Output)
	if err != nil {
		return err
	}
	if err := hmetis.Write(out, g, eopts...); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	a.logger.Info("hypergraph exported",
		"nodes", g.NodeCount(), "edges", g.EdgeCount(),
		"fmt", hmetis.FormatCode(g.WeightedNodes(), g.WeightedEdges()),
		"output", outputLabel(a.cfg.Export.Output))

	return nil
}

func constructorFor(gen config.GenerateConfig) (builder.Constructor, error) {
	switch gen.Topology {
	case config.TopologyWindows:
		return builder.Windows(gen.Nodes, gen.Arity), nil
	case config.TopologyStar:
		return builder.Star(gen.Nodes), nil
	case config.TopologyComplete:
		return builder.CompleteUniform(gen.Nodes, gen.Arity), nil
	case config.TopologyRandom:
		return builder.RandomUniform(gen.Nodes, gen.Edges, gen.Arity), nil
	default:
		return nil, fmt.Errorf("unknown topology %q: %w", gen.Topology, config.ErrInvalidConfig)
	}
}

// openOutput returns stdout for "" and "-", else a freshly created file.
func (a *app) openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return a.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}

	return f, f.Close, nil
}

func outputLabel(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}

	return path
}

