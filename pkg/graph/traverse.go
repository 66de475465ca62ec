package graph

import (
	"iter"
	"slices"
)

// sortIDs orders identifiers ascending in place.
func sortIDs(ids []VertexID) {
	slices.SortFunc(ids, VertexID.Compare)
}

// sortedSet returns the members of a set in ascending order.
func sortedSet(set idSet) []VertexID {
	ids := make([]VertexID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// DFS returns a lazy depth-first walk over the vertices reachable from
// start along outbound edges. Each reachable vertex is yielded exactly
// once; a visited set keeps the walk finite on cyclic graphs. Neighbors
// are expanded in ascending identifier order, so the sequence is
// deterministic for a fixed graph state.
//
// The sequence is single-use and reflects the graph at iteration time; call
// DFS again for a fresh walk.
func (g *Graph[T]) DFS(start VertexID) (iter.Seq[VertexID], error) {
	if !g.vertices.has(start) {
		return nil, ErrVertexNotFound
	}
	return func(yield func(VertexID) bool) {
		visited := idSet{start: {}}
		stack := []VertexID{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(id) {
				return
			}
			// Push in descending order so the smallest neighbor pops first.
			next := sortedSet(g.adj.out[id])
			for i := len(next) - 1; i >= 0; i-- {
				n := next[i]
				if _, seen := visited[n]; !seen {
					visited[n] = struct{}{}
					stack = append(stack, n)
				}
			}
		}
	}, nil
}

// BFS returns a lazy breadth-first walk over the vertices reachable from
// start along outbound edges. It shares DFS's visited-set discipline and
// ascending-identifier determinism.
func (g *Graph[T]) BFS(start VertexID) (iter.Seq[VertexID], error) {
	if !g.vertices.has(start) {
		return nil, ErrVertexNotFound
	}
	return func(yield func(VertexID) bool) {
		visited := idSet{start: {}}
		queue := []VertexID{start}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			if !yield(id) {
				return
			}
			for _, n := range sortedSet(g.adj.out[id]) {
				if _, seen := visited[n]; !seen {
					visited[n] = struct{}{}
					queue = append(queue, n)
				}
			}
		}
	}, nil
}

// Vertices returns all vertex identifiers in ascending order.
func (g *Graph[T]) Vertices() iter.Seq[VertexID] {
	return func(yield func(VertexID) bool) {
		ids := make([]VertexID, 0, len(g.vertices))
		for id := range g.vertices {
			ids = append(ids, id)
		}
		sortIDs(ids)
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Values returns all vertex payloads, ordered by ascending identifier.
func (g *Graph[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for id := range g.Vertices() {
			if !yield(*g.vertices[id]) {
				return
			}
		}
	}
}

// Edges returns every directed edge as a (from, to) pair, ordered by
// ascending source then target identifier.
func (g *Graph[T]) Edges() iter.Seq2[VertexID, VertexID] {
	return func(yield func(VertexID, VertexID) bool) {
		froms := make([]VertexID, 0, len(g.adj.out))
		for from := range g.adj.out {
			froms = append(froms, from)
		}
		sortIDs(froms)
		for _, from := range froms {
			for _, to := range sortedSet(g.adj.out[from]) {
				if !yield(from, to) {
					return
				}
			}
		}
	}
}

// OutNeighbors returns the targets of id's outbound edges in ascending
// order. Absent vertices have no neighbors.
func (g *Graph[T]) OutNeighbors(id VertexID) iter.Seq[VertexID] {
	return yieldSorted(sortedSet(g.adj.out[id]))
}

// InNeighbors returns the sources of id's inbound edges in ascending order.
func (g *Graph[T]) InNeighbors(id VertexID) iter.Seq[VertexID] {
	return yieldSorted(sortedSet(g.adj.in[id]))
}

// Neighbors returns the union of id's inbound and outbound neighbors in
// ascending order, each at most once.
func (g *Graph[T]) Neighbors(id VertexID) iter.Seq[VertexID] {
	union := make(idSet, len(g.adj.out[id])+len(g.adj.in[id]))
	for n := range g.adj.out[id] {
		union[n] = struct{}{}
	}
	for n := range g.adj.in[id] {
		union[n] = struct{}{}
	}
	return yieldSorted(sortedSet(union))
}

func yieldSorted(ids []VertexID) iter.Seq[VertexID] {
	return func(yield func(VertexID) bool) {
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}
