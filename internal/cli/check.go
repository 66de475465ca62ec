package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [graph.json]",
		Short: "Check a graph snapshot for cycles",
		Long: `Check a graph snapshot for cycles.

Exits with a non-zero status when the graph contains a cycle, so the
command can gate CI pipelines that require acyclic graphs.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0])
		},
	}
}

func (c *CLI) runCheck(input string) error {
	_, g, err := loadGraph(input)
	if err != nil {
		return err
	}

	if g.IsCyclic() {
		printError("%s contains a cycle", input)
		return fmt.Errorf("%s contains a cycle", input)
	}

	printSuccess("%s is acyclic", input)
	printStats(g.VertexCount(), g.EdgeCount(), false)
	return nil
}
