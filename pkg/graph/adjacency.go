package graph

// idSet is a set of vertex identifiers with O(1) membership and cardinality.
type idSet map[VertexID]struct{}

// adjacency maintains outbound and inbound neighbor sets per vertex. The
// two sides are deliberately denormalized so that degree queries are O(1)
// and purging a vertex is O(degree); every update goes through this type so
// the two maps can never disagree.
//
// Invariant: to ∈ out[from] iff from ∈ in[to] iff the edge (from, to)
// exists. Empty sets are dropped eagerly so the maps do not grow without
// bound under churn.
type adjacency struct {
	out map[VertexID]idSet
	in  map[VertexID]idSet
}

func newAdjacency(capacity int) *adjacency {
	return &adjacency{
		out: make(map[VertexID]idSet, capacity),
		in:  make(map[VertexID]idSet, capacity),
	}
}

// connect records the directed pair (from, to) on both sides. It reports
// whether the pair is new; reconnecting an existing pair is a no-op.
func (a *adjacency) connect(from, to VertexID) bool {
	if a.has(from, to) {
		return false
	}
	if a.out[from] == nil {
		a.out[from] = make(idSet)
	}
	if a.in[to] == nil {
		a.in[to] = make(idSet)
	}
	a.out[from][to] = struct{}{}
	a.in[to][from] = struct{}{}
	return true
}

// disconnect removes the pair from both sides if present and reports
// whether a removal actually occurred, so the caller can keep its edge
// counter exact.
func (a *adjacency) disconnect(from, to VertexID) bool {
	if !a.has(from, to) {
		return false
	}
	delete(a.out[from], to)
	if len(a.out[from]) == 0 {
		delete(a.out, from)
	}
	delete(a.in[to], from)
	if len(a.in[to]) == 0 {
		delete(a.in, to)
	}
	return true
}

func (a *adjacency) has(from, to VertexID) bool {
	_, ok := a.out[from][to]
	return ok
}

// purge removes id and every incident pair, returning the number of edges
// dropped. A self-loop is a single edge and counts once: the outbound pass
// deletes it from in[id] before the inbound pass runs.
func (a *adjacency) purge(id VertexID) int {
	removed := 0
	for to := range a.out[id] {
		delete(a.in[to], id)
		if len(a.in[to]) == 0 {
			delete(a.in, to)
		}
		removed++
	}
	for from := range a.in[id] {
		delete(a.out[from], id)
		if len(a.out[from]) == 0 {
			delete(a.out, from)
		}
		removed++
	}
	delete(a.out, id)
	delete(a.in, id)
	return removed
}

func (a *adjacency) outDegree(id VertexID) int { return len(a.out[id]) }

func (a *adjacency) inDegree(id VertexID) int { return len(a.in[id]) }
