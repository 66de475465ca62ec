// Package graph provides an in-memory directed graph container built for
// workloads with heavy structural churn.
//
// A [Graph] stores caller-supplied payloads of any type, keyed by randomly
// allocated 128-bit [VertexID] values, and keeps a bidirectional adjacency
// index so that removing a vertex costs time proportional to its degree
// rather than the size of the graph.
//
// # Basic Usage
//
//	g := graph.New[string]()
//	a, _ := g.AddVertex("app")
//	b, _ := g.AddVertex("lib")
//	_ = g.AddEdge(a, b)
//
//	fmt.Println(g.VertexCount()) // 2
//	fmt.Println(g.EdgeCount())   // 1
//
//	// Removing a vertex drops its incident edges.
//	_, _ = g.Remove(a)
//	fmt.Println(g.EdgeCount())   // 0
//
// # Identity
//
// Vertex identifiers are drawn from a pluggable [IDSource]. The default
// source produces UUIDv4 values from a seeded pseudorandom stream, which
// keeps identifiers collision-free and unpredictable regardless of insertion
// order. [SequentialIDs] is available for environments without a usable
// randomness source, and makes test output deterministic.
//
// # Traversal
//
// [Graph.DFS] and [Graph.BFS] return lazy sequences over the reachable set.
// [Graph.Roots], [Graph.Tips], [Graph.IsCyclic], and [Graph.TopoSort]
// operate on the whole graph. All traversal results are deterministic for a
// fixed graph state: ties are broken in ascending identifier order.
//
// # Errors
//
// Operations referencing missing vertices return [ErrVertexNotFound], and
// [Graph.TopoSort] returns [ErrGraphHasCycle] when no valid order exists.
// Idempotent no-ops, such as re-adding an existing edge or removing a
// nonexistent one, are successful outcomes rather than errors.
//
// # Concurrency
//
// Graph is not safe for concurrent use without external synchronization.
// Every operation completes synchronously before returning.
package graph
