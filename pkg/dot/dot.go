// Package dot exports graphs as Graphviz DOT descriptions and renders them
// to SVG or PNG.
//
// The exporter consumes a read-only [snapshot.Snapshot] — vertex ids,
// display labels, and the edge set — and emits a line-oriented description
// suitable for external visualization tooling. It never mutates the graph.
//
// Rendering uses [github.com/goccy/go-graphviz], an in-process Graphviz,
// so no external binary is required.
package dot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/goccy/go-graphviz"

	"github.com/tanglegraph/tangle/pkg/graph"
	"github.com/tanglegraph/tangle/pkg/snapshot"
)

// ErrInvalidName is returned when the graph name is not a valid DOT
// identifier.
var ErrInvalidName = errors.New("invalid graph name")

// graphNameRe matches bare DOT identifiers; anything else would need
// quoting and is rejected instead.
var graphNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// FromSnapshot renders a snapshot as a DOT digraph description. Nodes keep
// their external ids and use their display labels; the name becomes the
// digraph identifier and must be a bare DOT identifier.
func FromSnapshot(s snapshot.Snapshot, name string) (string, error) {
	if !graphNameRe.MatchString(name) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", name)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.DisplayLabel())
	}

	buf.WriteString("\n")
	for _, e := range s.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// Export is a convenience wrapper that snapshots g and renders it with
// [FromSnapshot]. The label callback may be nil, in which case the graph's
// attached labels are used.
func Export[T any](g *graph.Graph[T], name string, label func(graph.VertexID, T) string) (string, error) {
	return FromSnapshot(snapshot.Capture(g, label), name)
}

// RenderSVG renders a DOT description to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT description to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
