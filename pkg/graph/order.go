package graph

import "container/heap"

// Roots returns the identifiers of all vertices with in-degree zero, in
// ascending order.
func (g *Graph[T]) Roots() []VertexID {
	var roots []VertexID
	for id := range g.vertices {
		if g.adj.inDegree(id) == 0 {
			roots = append(roots, id)
		}
	}
	sortIDs(roots)
	return roots
}

// Tips returns the identifiers of all vertices with out-degree zero, in
// ascending order.
func (g *Graph[T]) Tips() []VertexID {
	var tips []VertexID
	for id := range g.vertices {
		if g.adj.outDegree(id) == 0 {
			tips = append(tips, id)
		}
	}
	sortIDs(tips)
	return tips
}

// IsCyclic reports whether the graph contains at least one directed cycle,
// checking every component. Detection uses depth-first search with
// white/gray/black coloring: an outbound edge into a gray vertex closes a
// cycle. A self-loop is a cycle.
func (g *Graph[T]) IsCyclic() bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[VertexID]int, len(g.vertices))
	var hasCycle bool

	var visit func(id VertexID)
	visit = func(id VertexID) {
		color[id] = gray
		for next := range g.adj.out[id] {
			switch color[next] {
			case white:
				visit(next)
				if hasCycle {
					return
				}
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for id := range g.vertices {
		if color[id] == white {
			visit(id)
			if hasCycle {
				return true
			}
		}
	}
	return false
}

// TopoSort returns every vertex identifier in an order where each edge's
// source precedes its target, or [ErrGraphHasCycle] when no such order
// exists. It runs Kahn's algorithm over a working copy of the in-degrees,
// breaking ties among simultaneously eligible vertices in ascending
// identifier order so the result is reproducible despite randomized
// identifiers.
func (g *Graph[T]) TopoSort() ([]VertexID, error) {
	indegree := make(map[VertexID]int, len(g.vertices))
	ready := &idHeap{}
	for id := range g.vertices {
		d := g.adj.inDegree(id)
		indegree[id] = d
		if d == 0 {
			*ready = append(*ready, id)
		}
	}
	heap.Init(ready)

	order := make([]VertexID, 0, len(g.vertices))
	for ready.Len() > 0 {
		id := heap.Pop(ready).(VertexID)
		order = append(order, id)
		for next := range g.adj.out[id] {
			indegree[next]--
			if indegree[next] == 0 {
				heap.Push(ready, next)
			}
		}
	}

	if len(order) != g.vertices.len() {
		return nil, ErrGraphHasCycle
	}
	return order, nil
}

// idHeap is a min-heap of identifiers used for TopoSort's deterministic
// tie-break.
type idHeap []VertexID

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i].Compare(h[j]) < 0 }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *idHeap) Push(x any) { *h = append(*h, x.(VertexID)) }

func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	id := old[n-1]
	*h = old[:n-1]
	return id
}
