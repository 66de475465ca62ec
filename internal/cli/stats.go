package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [graph.json]",
		Short: "Print statistics for a graph snapshot",
		Long: `Print statistics for a graph snapshot.

Shows vertex and edge counts, the roots (vertices with no inbound edges),
the tips (vertices with no outbound edges), and whether the graph
contains a cycle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(args[0])
		},
	}
}

func (c *CLI) runStats(input string) error {
	_, g, err := loadGraph(input)
	if err != nil {
		return err
	}

	roots := labelsFor(g, g.Roots())
	tips := labelsFor(g, g.Tips())
	sort.Strings(roots)
	sort.Strings(tips)

	fmt.Println(StyleTitle.Render(input))
	printKeyValue("vertices", fmt.Sprintf("%d", g.VertexCount()))
	printKeyValue("edges", fmt.Sprintf("%d", g.EdgeCount()))
	printKeyValue("roots", joinOrNone(roots))
	printKeyValue("tips", joinOrNone(tips))

	if g.IsCyclic() {
		printKeyValue("cyclic", StyleWarning.Render("yes"))
	} else {
		printKeyValue("cyclic", "no")
	}
	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return StyleDim.Render("none")
	}
	return strings.Join(items, ", ")
}
