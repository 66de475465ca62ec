package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanglegraph/tangle/pkg/cache"
	"github.com/tanglegraph/tangle/pkg/dot"
	"github.com/tanglegraph/tangle/pkg/snapshot"
)

// Export formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format  string
		output  string
		name    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "export [graph.json]",
		Short: "Export a graph snapshot as DOT, SVG, or PNG",
		Long: `Export a graph snapshot as DOT text or a Graphviz rendering.

DOT output is generated directly from the snapshot. SVG and PNG are
rendered in-process with Graphviz; rendered artifacts are cached by the
snapshot's content hash, so re-exporting an unchanged graph is instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args[0], format, output, name, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVar(&name, "name", "G", "DOT graph name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable render caching")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, input, format, output, name string, noCache bool) error {
	snap, g, err := loadGraph(input)
	if err != nil {
		return err
	}

	dotText, err := dot.FromSnapshot(snap, name)
	if err != nil {
		return fmt.Errorf("export %s: %w", input, err)
	}

	var (
		data   []byte
		cached bool
	)
	switch format {
	case formatDOT:
		data = []byte(dotText)
	case formatSVG, formatPNG:
		data, cached, err = c.renderCached(cmd, snap, dotText, format, noCache)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want dot, svg, or png)", format)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + "." + format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Export complete")
	printFile(outputPath)
	printStats(g.VertexCount(), g.EdgeCount(), cached)
	return nil
}

// renderCached renders DOT to the requested format, reusing a cached
// artifact keyed by the snapshot's content hash when available.
func (c *CLI) renderCached(cmd *cobra.Command, snap snapshot.Snapshot, dotText, format string, noCache bool) ([]byte, bool, error) {
	ctx := cmd.Context()

	store, cfg, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	canonical, err := snapshot.Marshal(snap)
	if err != nil {
		return nil, false, err
	}
	key := cache.RenderKey(cache.Hash(canonical), format)

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		c.Logger.Debug("render cache hit", "key", key)
		return data, true, nil
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()

	var data []byte
	switch format {
	case formatSVG:
		data, err = dot.RenderSVG(dotText)
	case formatPNG:
		data, err = dot.RenderPNG(dotText)
	}
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, false, fmt.Errorf("render %s: %w", format, err)
	}
	spinner.Stop()

	if err := store.Set(ctx, key, data, cfg.Cache.TTL.Duration); err != nil {
		c.Logger.Debug("render cache store failed", "key", key, "err", err)
	}
	return data, false, nil
}
