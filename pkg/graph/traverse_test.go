package graph

import (
	"errors"
	"slices"
	"testing"
)

func collect(seq func(func(VertexID) bool)) []VertexID {
	var ids []VertexID
	seq(func(id VertexID) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// diamond builds a→b, a→c, b→d, c→d with sequential identifiers and
// returns the ids in insertion order.
func diamond(t *testing.T) (*Graph[string], []VertexID) {
	t.Helper()
	g := newTestGraph(t)
	a := addVertex(t, g, "a")
	b := addVertex(t, g, "b")
	c := addVertex(t, g, "c")
	d := addVertex(t, g, "d")
	addEdge(t, g, a, b)
	addEdge(t, g, a, c)
	addEdge(t, g, b, d)
	addEdge(t, g, c, d)
	return g, []VertexID{a, b, c, d}
}

func TestDFSOrder(t *testing.T) {
	g, ids := diamond(t)
	a, b, c, d := ids[0], ids[1], ids[2], ids[3]

	seq, err := g.DFS(a)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}

	got := collect(seq)
	want := []VertexID{a, b, d, c}
	if !slices.Equal(got, want) {
		t.Errorf("DFS order = %v, want %v", got, want)
	}
}

func TestBFSOrder(t *testing.T) {
	g, ids := diamond(t)
	a, b, c, d := ids[0], ids[1], ids[2], ids[3]

	seq, err := g.BFS(a)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}

	got := collect(seq)
	want := []VertexID{a, b, c, d}
	if !slices.Equal(got, want) {
		t.Errorf("BFS order = %v, want %v", got, want)
	}
}

func TestTraversalMissingStart(t *testing.T) {
	g := newTestGraph(t)

	if _, err := g.DFS(VertexID{0: 1}); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("DFS error = %v, want ErrVertexNotFound", err)
	}
	if _, err := g.BFS(VertexID{0: 1}); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("BFS error = %v, want ErrVertexNotFound", err)
	}
}

func TestTraversalSkipsUnreachable(t *testing.T) {
	g := newTestGraph(t)
	a := addVertex(t, g, "a")
	b := addVertex(t, g, "b")
	island := addVertex(t, g, "island")
	addEdge(t, g, a, b)

	seq, err := g.BFS(a)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	for _, id := range collect(seq) {
		if id == island {
			t.Fatal("BFS visited an unreachable vertex")
		}
	}

	// Inbound edges do not count as reachability.
	addEdge(t, g, island, a)
	seq, _ = g.DFS(a)
	for _, id := range collect(seq) {
		if id == island {
			t.Fatal("DFS followed an inbound edge")
		}
	}
}

func TestTraversalOnCycle(t *testing.T) {
	g := newTestGraph(t)
	a := addVertex(t, g, "a")
	b := addVertex(t, g, "b")
	c := addVertex(t, g, "c")
	addEdge(t, g, a, b)
	addEdge(t, g, b, c)
	addEdge(t, g, c, a)

	seq, err := g.DFS(a)
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	got := collect(seq)
	if len(got) != 3 {
		t.Errorf("DFS on a cycle visited %d vertices, want 3", len(got))
	}

	seen := make(map[VertexID]int)
	for _, id := range got {
		seen[id]++
		if seen[id] > 1 {
			t.Fatalf("vertex %s visited twice", id)
		}
	}
}

func TestTraversalStopsEarly(t *testing.T) {
	g, ids := diamond(t)

	seq, err := g.DFS(ids[0])
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}

	visited := 0
	seq(func(VertexID) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("early break visited %d vertices, want 2", visited)
	}
}

func TestVerticesAndValues(t *testing.T) {
	g := New[int](WithIDSource(SequentialIDs()))
	for i := 10; i < 15; i++ {
		if _, err := g.AddVertex(i); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
	}

	ids := collect(g.Vertices())
	if len(ids) != 5 {
		t.Fatalf("Vertices yielded %d ids, want 5", len(ids))
	}
	if !slices.IsSortedFunc(ids, VertexID.Compare) {
		t.Error("Vertices should ascend")
	}

	var values []int
	for v := range g.Values() {
		values = append(values, v)
	}
	if !slices.Equal(values, []int{10, 11, 12, 13, 14}) {
		t.Errorf("Values = %v", values)
	}
}

func TestEdgesSequence(t *testing.T) {
	g, ids := diamond(t)

	type pair struct{ from, to VertexID }
	var got []pair
	for from, to := range g.Edges() {
		got = append(got, pair{from, to})
	}

	want := []pair{
		{ids[0], ids[1]},
		{ids[0], ids[2]},
		{ids[1], ids[3]},
		{ids[2], ids[3]},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Edges = %v, want %v", got, want)
	}
}

func TestNeighbors(t *testing.T) {
	g := newTestGraph(t)
	a := addVertex(t, g, "a")
	b := addVertex(t, g, "b")
	c := addVertex(t, g, "c")
	addEdge(t, g, a, b)
	addEdge(t, g, c, a)
	addEdge(t, g, a, c) // c is both in- and out-neighbor of a

	if got := collect(g.OutNeighbors(a)); !slices.Equal(got, []VertexID{b, c}) {
		t.Errorf("OutNeighbors = %v, want [b c]", got)
	}
	if got := collect(g.InNeighbors(a)); !slices.Equal(got, []VertexID{c}) {
		t.Errorf("InNeighbors = %v, want [c]", got)
	}
	if got := collect(g.Neighbors(a)); !slices.Equal(got, []VertexID{b, c}) {
		t.Errorf("Neighbors = %v, want [b c] with c deduplicated", got)
	}
}
