package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/tanglegraph/tangle/pkg/graph"
	"github.com/tanglegraph/tangle/pkg/snapshot"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		vertices int
		edges    int
		churn    int
		seed     int64
		output   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random graph snapshot through add/remove churn",
		Long: `Generate a random graph snapshot.

The generator builds the graph the way a high-churn workload would:
extra vertices and edges are added and then removed again before the
final shape is written out. The same seed always produces the same
snapshot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(vertices, edges, churn, seed, output)
		},
	}

	cmd.Flags().IntVarP(&vertices, "vertices", "n", 50, "number of vertices")
	cmd.Flags().IntVarP(&edges, "edges", "e", 100, "number of edges")
	cmd.Flags().IntVar(&churn, "churn", 25, "extra vertices added and removed during generation")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "graph.json", "output file")

	return cmd
}

func (c *CLI) runGenerate(vertices, edges, churn int, seed int64, output string) error {
	prog := newProgress(c.Logger)

	g, err := generateGraph(vertices, edges, churn, seed)
	if err != nil {
		return fmt.Errorf("generate graph: %w", err)
	}

	snap := snapshot.Capture(g, func(_ graph.VertexID, label string) string { return label })
	if err := snapshot.WriteFile(snap, output); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Generated %d vertices, %d edges", g.VertexCount(), g.EdgeCount()))
	printSuccess("Snapshot written")
	printFile(output)
	printStats(g.VertexCount(), g.EdgeCount(), false)
	printNewline()
	printNextStep("Inspect", appName+" stats "+output)
	return nil
}

// generateGraph builds a random graph deterministically from seed. It
// allocates vertices+churn vertices, removes churn of them again, wires
// random edges between the survivors, and churns a batch of edges on top.
func generateGraph(vertices, edges, churn int, seed int64) (*graph.Graph[string], error) {
	if vertices <= 0 {
		return nil, fmt.Errorf("vertex count %d must be positive", vertices)
	}
	if edges < 0 || churn < 0 {
		return nil, fmt.Errorf("edge count and churn must not be negative")
	}

	rng := rand.New(rand.NewSource(seed))
	g := graph.New[string](graph.WithSeed(seed), graph.WithCapacity(vertices+churn))

	ids := make([]graph.VertexID, 0, vertices+churn)
	for i := range vertices + churn {
		id, err := g.AddVertex(fmt.Sprintf("v%d", i))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	// Remove a random subset so identifier reuse and adjacency cleanup
	// are exercised the same way a live workload would.
	for range churn {
		i := rng.Intn(len(ids))
		g.Remove(ids[i])
		ids = append(ids[:i], ids[i+1:]...)
	}

	for range edges {
		from := ids[rng.Intn(len(ids))]
		to := ids[rng.Intn(len(ids))]
		if from == to {
			continue
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, err
		}
	}

	// Edge churn: wire and immediately unwire a batch of extra edges.
	for range churn {
		from := ids[rng.Intn(len(ids))]
		to := ids[rng.Intn(len(ids))]
		if from == to || g.HasEdge(from, to) {
			continue
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, err
		}
		g.RemoveEdge(from, to)
	}

	return g, nil
}
