package graph

// Retain removes every vertex whose payload fails pred, cascading to
// incident edges exactly as [Graph.Remove] does.
func (g *Graph[T]) Retain(pred func(T) bool) {
	var doomed []VertexID
	for id, p := range g.vertices {
		if !pred(*p) {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		_, _ = g.Remove(id)
	}
}

// Fold reduces the graph's payloads to a single value, visiting them in
// ascending identifier order.
func Fold[T, A any](g *Graph[T], initial A, fn func(T, A) A) A {
	acc := initial
	for value := range g.Values() {
		acc = fn(value, acc)
	}
	return acc
}

// MapGraph produces a new graph with every payload transformed by fn.
// Vertex identifiers, edges, and labels are preserved, so references into
// the source graph remain meaningful in the result.
func MapGraph[T, R any](g *Graph[T], fn func(T) R) *Graph[R] {
	out := New[R](WithCapacity(g.VertexCount()))
	for id, p := range g.vertices {
		out.addVertexWithID(id, fn(*p))
	}
	for from, to := range g.Edges() {
		if out.adj.connect(from, to) {
			out.edgeCount++
		}
	}
	for id, label := range g.labels {
		out.labels[id] = label
	}
	return out
}
