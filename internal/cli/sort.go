package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sortCommand creates the sort command.
func (c *CLI) sortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [graph.json]",
		Short: "Print a topological order of a graph snapshot",
		Long: `Print a topological order of a graph snapshot, one label per line.

Every vertex appears after all vertices with edges pointing at it. Fails
when the graph contains a cycle, since no such order exists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSort(args[0])
		},
	}
}

func (c *CLI) runSort(input string) error {
	_, g, err := loadGraph(input)
	if err != nil {
		return err
	}

	order, err := g.TopoSort()
	if err != nil {
		return fmt.Errorf("sort %s: %w", input, err)
	}

	for _, label := range labelsFor(g, order) {
		fmt.Println(label)
	}
	return nil
}
