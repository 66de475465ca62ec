package graph

import (
	"fmt"
	"time"
)

// maxAllocAttempts bounds identifier allocation retries. A collision needs
// two equal draws from a 2^122 space, so hitting this bound means the
// configured [IDSource] is broken rather than unlucky.
const maxAllocAttempts = 64

// Graph is a directed graph of caller-supplied payloads. It owns the vertex
// payloads, the adjacency index, and the vertex/edge counters, and keeps all
// three in exact agreement after every operation: each mutation either fully
// succeeds or fully no-ops before touching any structure.
//
// Edges are a simple directed relation: at most one edge per ordered pair,
// no payloads, no multiplicity. Self-loops are permitted and count as a
// single edge. Re-adding an existing edge is an idempotent no-op.
//
// The zero value is not usable; create instances with [New]. Graph is not
// safe for concurrent use without external synchronization.
type Graph[T any] struct {
	ids       IDSource
	vertices  store[T]
	adj       *adjacency
	labels    map[VertexID]string
	edgeCount int
}

// Option configures a graph at construction time.
type Option func(*config)

type config struct {
	source   IDSource
	seed     int64
	seeded   bool
	capacity int
}

// WithIDSource sets the identifier source. The graph takes ownership of the
// source; it must not be shared with another graph.
func WithIDSource(src IDSource) Option {
	return func(c *config) { c.source = src }
}

// WithSeed seeds the default random identifier source, making the
// identifier sequence reproducible. Ignored when [WithIDSource] is also
// given.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seeded, c.seed = true, seed }
}

// WithCapacity pre-sizes the internal maps for an expected vertex count.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// New creates an empty graph.
func New[T any](opts ...Option) *Graph[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	src := c.source
	if src == nil {
		seed := c.seed
		if !c.seeded {
			seed = time.Now().UnixNano()
		}
		src = RandomIDs(seed)
	}

	return &Graph[T]{
		ids:      src,
		vertices: make(store[T], c.capacity),
		adj:      newAdjacency(c.capacity),
		labels:   make(map[VertexID]string),
	}
}

// allocate draws identifiers until one is free, within the retry bound.
func (g *Graph[T]) allocate() (VertexID, error) {
	for i := 0; i < maxAllocAttempts; i++ {
		id, err := g.ids.NewID()
		if err != nil {
			return NilID, fmt.Errorf("allocate vertex id: %w", err)
		}
		if !g.vertices.has(id) {
			return id, nil
		}
	}
	return NilID, ErrIDExhausted
}

// AddVertex stores value as a new vertex and returns its identifier.
// It fails only when the identifier source is exhausted or broken.
func (g *Graph[T]) AddVertex(value T) (VertexID, error) {
	id, err := g.allocate()
	if err != nil {
		return NilID, err
	}
	g.vertices.insert(id, value)
	return id, nil
}

// addVertexWithID inserts a payload under a caller-chosen identifier.
// Used by [MapGraph] to preserve identities across a payload transform;
// callers guarantee the id is not already live.
func (g *Graph[T]) addVertexWithID(id VertexID, value T) {
	g.vertices.insert(id, value)
}

// AddEdge records the directed edge (from, to). It returns
// [ErrVertexNotFound] when either endpoint is absent. Adding an edge that
// already exists is a successful no-op, and from == to is allowed.
func (g *Graph[T]) AddEdge(from, to VertexID) error {
	if !g.vertices.has(from) || !g.vertices.has(to) {
		return ErrVertexNotFound
	}
	if g.adj.connect(from, to) {
		g.edgeCount++
	}
	return nil
}

// RemoveEdge removes the directed edge (from, to) if present and reports
// whether it existed. It never fails: the adjacency index cannot reference
// absent vertices, so a missing vertex and a missing edge are the same
// no-op outcome.
func (g *Graph[T]) RemoveEdge(from, to VertexID) bool {
	if !g.adj.disconnect(from, to) {
		return false
	}
	g.edgeCount--
	return true
}

// Remove deletes the vertex along with every incident edge and returns the
// owned payload. The cost is proportional to the vertex's degree, not the
// size of the graph.
func (g *Graph[T]) Remove(id VertexID) (T, error) {
	if !g.vertices.has(id) {
		var zero T
		return zero, ErrVertexNotFound
	}
	g.edgeCount -= g.adj.purge(id)
	value, _ := g.vertices.remove(id)
	delete(g.labels, id)
	return value, nil
}

// Fetch returns a copy of the vertex payload.
func (g *Graph[T]) Fetch(id VertexID) (T, error) {
	value, ok := g.vertices.get(id)
	if !ok {
		return value, ErrVertexNotFound
	}
	return value, nil
}

// FetchMut returns a pointer to the stored payload. The pointer remains
// valid only until the next mutation of the graph; callers that need a
// bounded scope should prefer [Graph.Update].
func (g *Graph[T]) FetchMut(id VertexID) (*T, error) {
	p, ok := g.vertices.ptr(id)
	if !ok {
		return nil, ErrVertexNotFound
	}
	return p, nil
}

// Update applies fn to the stored payload in place. The pointer passed to
// fn must not escape the call.
func (g *Graph[T]) Update(id VertexID, fn func(*T)) error {
	p, ok := g.vertices.ptr(id)
	if !ok {
		return ErrVertexNotFound
	}
	fn(p)
	return nil
}

// HasVertex reports whether id is a live vertex.
func (g *Graph[T]) HasVertex(id VertexID) bool { return g.vertices.has(id) }

// HasEdge reports whether the directed edge (from, to) exists.
func (g *Graph[T]) HasEdge(from, to VertexID) bool { return g.adj.has(from, to) }

// VertexCount returns the number of live vertices.
func (g *Graph[T]) VertexCount() int { return g.vertices.len() }

// EdgeCount returns the number of distinct directed edges.
func (g *Graph[T]) EdgeCount() int { return g.edgeCount }

// OutDegree returns the number of outbound edges. Absent vertices have
// degree 0.
func (g *Graph[T]) OutDegree(id VertexID) int { return g.adj.outDegree(id) }

// InDegree returns the number of inbound edges. Absent vertices have
// degree 0.
func (g *Graph[T]) InDegree(id VertexID) int { return g.adj.inDegree(id) }

// SetLabel attaches a display label to a vertex. Labels feed the DOT
// exporter and are removed together with their vertex.
func (g *Graph[T]) SetLabel(id VertexID, label string) error {
	if !g.vertices.has(id) {
		return ErrVertexNotFound
	}
	g.labels[id] = label
	return nil
}

// Label returns the label attached to id, if any.
func (g *Graph[T]) Label(id VertexID) (string, bool) {
	label, ok := g.labels[id]
	return label, ok
}

// MapLabels rewrites every attached label through fn.
func (g *Graph[T]) MapLabels(fn func(VertexID, string) string) {
	for id, label := range g.labels {
		g.labels[id] = fn(id, label)
	}
}
