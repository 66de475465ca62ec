package graph

import "errors"

var (
	// ErrVertexNotFound is returned when an operation references a vertex
	// identifier that is not currently present in the graph.
	ErrVertexNotFound = errors.New("vertex not found")

	// ErrGraphHasCycle is returned by [Graph.TopoSort] when the graph
	// contains at least one directed cycle and no topological order exists.
	ErrGraphHasCycle = errors.New("graph contains a cycle")

	// ErrIDExhausted is returned when the identifier source could not
	// produce an unused identifier within the retry bound. With a 128-bit
	// identifier space this is unreachable for realistic graph sizes and
	// exists purely as a guard against a broken [IDSource].
	ErrIDExhausted = errors.New("identifier space exhausted")
)
