package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"statespace/config"
	"statespace/dataset"
	"statespace/game"
	"statespace/graph"
	"statespace/metrics"
	"statespace/tree"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "statespace",
		Short:        "Exhaustive game state-space builder and benchmark dataset generators",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newExploreCommand())
	root.AddCommand(newGraphDatasetCommand())
	root.AddCommand(newTreeDatasetCommand())
	return root
}

func newExploreCommand() *cobra.Command {
	var (
		configPath            string
		length, width, height int
		output                string
		graphOutput           string
		maxStates             int
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Enumerate every reachable board state and write the reconstructed game tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			// Flags set on the command line win over the config file.
			if cmd.Flags().Changed("length") {
				cfg.Length = length
			}
			if cmd.Flags().Changed("width") {
				cfg.Width = width
			}
			if cmd.Flags().Changed("height") {
				cfg.Height = height
			}
			if cmd.Flags().Changed("out") {
				cfg.Output = output
			}
			if cmd.Flags().Changed("graph-out") {
				cfg.GraphOutput = graphOutput
			}
			if cmd.Flags().Changed("max-states") {
				cfg.MaxStates = maxStates
			}

			dims, err := game.NewDims(cfg.Length, cfg.Width, cfg.Height)
			if err != nil {
				return err
			}

			collector := metrics.NewCollector()
			explorer := graph.NewExplorer(
				graph.WithMetrics(collector),
				graph.WithMaxStates(cfg.MaxStates),
			)
			g, err := explorer.Explore(dims)
			if err != nil {
				return err
			}

			doc, err := g.Flatten()
			if err != nil {
				return err
			}

			root, orphans, err := tree.Build(doc)
			if err != nil {
				return err
			}

			metric := collector.Complete()
			log.Info().
				Str("run_id", metric.RunID).
				Str("dimensions", metric.Dimensions).
				Int("states", doc.TotalStates).
				Int("moves", doc.TotalMoves).
				Int("terminals", metric.Terminals).
				Int("dedup_hits", metric.DedupHits).
				Int("max_stack_depth", metric.MaxStackDepth).
				Int("orphaned_states", orphans).
				Dur("duration", metric.Duration).
				Msg("exploration finished")

			if cfg.Output == "" {
				cfg.Output = fmt.Sprintf("tictactoe_%dx%dx%d.json", dims.Length, dims.Width, dims.Height)
			}
			if err := tree.WriteTreeFile(root, cfg.Output); err != nil {
				return err
			}
			log.Info().Msgf("game tree saved to %s", cfg.Output)

			if cfg.GraphOutput != "" {
				if err := graph.WriteDocumentFile(doc, cfg.GraphOutput); err != nil {
					return err
				}
				log.Info().Msgf("state-space graph saved to %s", cfg.GraphOutput)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML run configuration file")
	cmd.Flags().IntVarP(&length, "length", "l", 3, "board length")
	cmd.Flags().IntVarP(&width, "width", "w", 3, "board width")
	cmd.Flags().IntVarP(&height, "height", "H", 1, "board height (layers)")
	cmd.Flags().StringVarP(&output, "out", "o", "", "game tree output path (default tictactoe_LxWxH.json)")
	cmd.Flags().StringVar(&graphOutput, "graph-out", "", "also write the flattened state-space graph to this path")
	cmd.Flags().IntVar(&maxStates, "max-states", 0, "abort once this many states are discovered (0 = unlimited)")
	return cmd
}

func newGraphDatasetCommand() *cobra.Command {
	var (
		nodes     int
		maxOut    int
		seed      uint64
		output    string
		binaryOut string
		compress  bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a random directed graph dataset for attractor benchmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			data, err := dataset.GenerateGraph(nodes, maxOut, seed)
			if err != nil {
				return err
			}
			if err := dataset.WriteJSONFile(data, output); err != nil {
				return err
			}
			if err := dataset.WriteBinaryFile(data, binaryOut, compress); err != nil {
				return err
			}

			log.Info().Msgf("wrote graph with %d nodes to %s and binary to %s", data.NodeCount, output, binaryOut)
			return nil
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 120000, "number of nodes to generate")
	cmd.Flags().IntVar(&maxOut, "max-out", 3, "maximum out-degree per node")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default derived from the clock)")
	cmd.Flags().StringVarP(&output, "out", "o", "graph_dataset.json", "output JSON file path")
	cmd.Flags().StringVarP(&binaryOut, "binary-out", "b", "graph_dataset.bin", "output binary file path")
	cmd.Flags().BoolVar(&compress, "compress", false, "gzip-compress the binary output file")
	return cmd
}

func newTreeDatasetCommand() *cobra.Command {
	var (
		nodes       int
		maxChildren int
		seed        uint64
		leafMin     int
		leafMax     int
		output      string
		binaryOut   string
		compress    bool
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Generate a random rooted tree dataset for minimax benchmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			data, err := dataset.GenerateTree(nodes, maxChildren, leafMin, leafMax, seed)
			if err != nil {
				return err
			}
			if err := dataset.WriteJSONFile(data, output); err != nil {
				return err
			}
			if err := dataset.WriteBinaryFile(data, binaryOut, compress); err != nil {
				return err
			}

			log.Info().Msgf("wrote tree with %d nodes to %s and binary to %s", data.NodeCount, output, binaryOut)
			return nil
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 120000, "number of nodes to generate")
	cmd.Flags().IntVar(&maxChildren, "max-children", 3, "maximum number of children per internal node")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default derived from the clock)")
	cmd.Flags().IntVar(&leafMin, "leaf-min", -100, "minimum leaf value")
	cmd.Flags().IntVar(&leafMax, "leaf-max", 100, "maximum leaf value")
	cmd.Flags().StringVarP(&output, "out", "o", "tree_dataset.json", "output JSON file path")
	cmd.Flags().StringVarP(&binaryOut, "binary-out", "b", "tree_dataset.bin", "output binary file path")
	cmd.Flags().BoolVar(&compress, "compress", false, "gzip-compress the binary output file")
	return cmd
}
