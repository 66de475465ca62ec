package graph_test

import (
	"fmt"

	"github.com/tanglegraph/tangle/pkg/graph"
)

func ExampleGraph_basic() {
	g := graph.New[int](graph.WithIDSource(graph.SequentialIDs()))

	a, _ := g.AddVertex(1)
	b, _ := g.AddVertex(2)
	_ = g.AddEdge(a, b)

	fmt.Println("Vertices:", g.VertexCount())
	fmt.Println("Edges:", g.EdgeCount())

	// Removing a vertex cascades to its edges.
	_, _ = g.Remove(a)
	fmt.Println("Vertices:", g.VertexCount())
	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// Vertices: 2
	// Edges: 1
	// Vertices: 1
	// Edges: 0
}

func ExampleGraph_TopoSort() {
	g := graph.New[string](graph.WithIDSource(graph.SequentialIDs()))

	build, _ := g.AddVertex("build")
	test, _ := g.AddVertex("test")
	release, _ := g.AddVertex("release")
	_ = g.AddEdge(build, test)
	_ = g.AddEdge(test, release)

	order, _ := g.TopoSort()
	for _, id := range order {
		name, _ := g.Fetch(id)
		fmt.Println(name)
	}
	// Output:
	// build
	// test
	// release
}

func ExampleGraph_BFS() {
	g := graph.New[string](graph.WithIDSource(graph.SequentialIDs()))

	root, _ := g.AddVertex("root")
	left, _ := g.AddVertex("left")
	right, _ := g.AddVertex("right")
	_ = g.AddEdge(root, left)
	_ = g.AddEdge(root, right)

	seq, _ := g.BFS(root)
	for id := range seq {
		name, _ := g.Fetch(id)
		fmt.Println(name)
	}
	// Output:
	// root
	// left
	// right
}

func ExampleGraph_IsCyclic() {
	g := graph.New[string](graph.WithIDSource(graph.SequentialIDs()))

	a, _ := g.AddVertex("a")
	b, _ := g.AddVertex("b")
	_ = g.AddEdge(a, b)
	fmt.Println(g.IsCyclic())

	_ = g.AddEdge(b, a)
	fmt.Println(g.IsCyclic())
	// Output:
	// false
	// true
}
