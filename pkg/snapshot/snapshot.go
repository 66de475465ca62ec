package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/tanglegraph/tangle/pkg/graph"
)

var (
	// ErrEmptyNodeID is returned by [ToGraph] for nodes without an id.
	ErrEmptyNodeID = errors.New("node id must not be empty")

	// ErrDuplicateNodeID is returned by [ToGraph] when two nodes share an id.
	ErrDuplicateNodeID = errors.New("duplicate node id")

	// ErrUnknownEndpoint is returned by [ToGraph] for edges referencing a
	// node that is not in the snapshot.
	ErrUnknownEndpoint = errors.New("edge references unknown node")
)

// Node is a serialized vertex. ID is the external identifier, Label an
// optional display label (defaults to ID), and Meta arbitrary key-value
// data carried through unchanged.
type Node struct {
	ID    string         `json:"id" bson:"id"`
	Label string         `json:"label,omitempty" bson:"label,omitempty"`
	Meta  map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the id.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a serialized directed edge between two node ids.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// Snapshot is a read-only node-link view of a graph.
type Snapshot struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Capture snapshots any graph. Node ids are the vertices' canonical UUID
// strings; labels come from the label callback, falling back to the graph's
// attached labels when the callback is nil. Output is sorted by id and
// never mutates the graph.
func Capture[T any](g *graph.Graph[T], label func(graph.VertexID, T) string) Snapshot {
	s := Snapshot{
		Nodes: make([]Node, 0, g.VertexCount()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}

	for id := range g.Vertices() {
		n := Node{ID: id.String()}
		if label != nil {
			value, _ := g.Fetch(id)
			n.Label = label(id, value)
		} else if l, ok := g.Label(id); ok {
			n.Label = l
		}
		s.Nodes = append(s.Nodes, n)
	}

	for from, to := range g.Edges() {
		s.Edges = append(s.Edges, Edge{From: from.String(), To: to.String()})
	}

	return s
}

// ToGraph builds a graph from a snapshot. The returned index maps external
// node ids to the freshly allocated vertex identifiers. Each node's payload
// is the node itself, so [FromGraph] can reproduce the original ids.
func ToGraph(s Snapshot) (*graph.Graph[Node], map[string]graph.VertexID, error) {
	g := graph.New[Node](graph.WithCapacity(len(s.Nodes)))
	index := make(map[string]graph.VertexID, len(s.Nodes))

	for _, n := range s.Nodes {
		if n.ID == "" {
			return nil, nil, ErrEmptyNodeID
		}
		if _, dup := index[n.ID]; dup {
			return nil, nil, fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNodeID)
		}
		id, err := g.AddVertex(n)
		if err != nil {
			return nil, nil, fmt.Errorf("add node %q: %w", n.ID, err)
		}
		if err := g.SetLabel(id, n.DisplayLabel()); err != nil {
			return nil, nil, fmt.Errorf("label node %q: %w", n.ID, err)
		}
		index[n.ID] = id
	}

	for _, e := range s.Edges {
		from, ok := index[e.From]
		if !ok {
			return nil, nil, fmt.Errorf("edge %s→%s: %q: %w", e.From, e.To, e.From, ErrUnknownEndpoint)
		}
		to, ok := index[e.To]
		if !ok {
			return nil, nil, fmt.Errorf("edge %s→%s: %q: %w", e.From, e.To, e.To, ErrUnknownEndpoint)
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return g, index, nil
}

// FromGraph snapshots a graph built by [ToGraph], preserving the external
// string ids carried in the payloads. Output is sorted for determinism.
func FromGraph(g *graph.Graph[Node]) Snapshot {
	s := Snapshot{
		Nodes: make([]Node, 0, g.VertexCount()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}

	external := make(map[graph.VertexID]string, g.VertexCount())
	for id := range g.Vertices() {
		n, _ := g.Fetch(id)
		external[id] = n.ID
		s.Nodes = append(s.Nodes, n)
	}
	slices.SortFunc(s.Nodes, func(a, b Node) int { return strings.Compare(a.ID, b.ID) })

	for from, to := range g.Edges() {
		s.Edges = append(s.Edges, Edge{From: external[from], To: external[to]})
	}
	slices.SortFunc(s.Edges, func(a, b Edge) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})

	return s
}

// Marshal encodes a snapshot as indented JSON.
func Marshal(s Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a snapshot.
func Unmarshal(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// Write encodes a snapshot as indented JSON to w.
func Write(s Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Read decodes a JSON snapshot from r.
func Read(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// WriteFile writes a snapshot to a JSON file created with 0644 permissions.
func WriteFile(s Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(s, f)
}

// ReadFile reads a JSON file and returns the decoded snapshot.
func ReadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
