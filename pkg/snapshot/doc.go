// Package snapshot defines the canonical node-link serialization format for
// graphs.
//
// A [Snapshot] is a read-only view of a graph's vertex identifiers, labels,
// and edge set, in a JSON format designed for round-trip fidelity:
// export → re-import produces an equivalent graph.
//
//	{
//	  "nodes": [{"id": "app"}, {"id": "lib"}],
//	  "edges": [{"from": "app", "to": "lib"}]
//	}
//
// Common operations:
//
//	s, _ := snapshot.ReadFile("deps.json")   // file → Snapshot
//	g, idx, _ := snapshot.ToGraph(s)         // Snapshot → Graph
//	s = snapshot.FromGraph(g)                // Graph → Snapshot
//	_ = snapshot.WriteFile(s, "out.json")    // Snapshot → file
//
// [Capture] produces a snapshot of a graph with any payload type; node ids
// become the vertices' canonical UUID strings. Graphs built with [ToGraph]
// instead carry their external string id in the payload, so exporting them
// with [FromGraph] preserves the original ids exactly.
//
// Snapshots are deterministic: nodes and edges are sorted, so equal graphs
// marshal to equal bytes and content-addressed caching works.
package snapshot
