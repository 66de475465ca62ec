package cli

import (
	"fmt"

	"github.com/tanglegraph/tangle/pkg/graph"
	"github.com/tanglegraph/tangle/pkg/snapshot"
)

// loadGraph reads a snapshot file and builds a graph from it.
func loadGraph(path string) (snapshot.Snapshot, *graph.Graph[snapshot.Node], error) {
	snap, err := snapshot.ReadFile(path)
	if err != nil {
		return snapshot.Snapshot{}, nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}

	g, _, err := snapshot.ToGraph(snap)
	if err != nil {
		return snapshot.Snapshot{}, nil, fmt.Errorf("build graph from %s: %w", path, err)
	}
	return snap, g, nil
}

// labelsFor maps vertex identifiers to the display labels of their nodes.
func labelsFor(g *graph.Graph[snapshot.Node], ids []graph.VertexID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if node, err := g.Fetch(id); err == nil {
			out = append(out, node.DisplayLabel())
		}
	}
	return out
}
