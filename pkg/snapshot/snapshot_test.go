package snapshot

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tanglegraph/tangle/pkg/graph"
)

func chain(nodes ...string) Snapshot {
	s := Snapshot{}
	for _, n := range nodes {
		s.Nodes = append(s.Nodes, Node{ID: n})
	}
	for i := 0; i+1 < len(nodes); i++ {
		s.Edges = append(s.Edges, Edge{From: nodes[i], To: nodes[i+1]})
	}
	return s
}

func TestToGraph(t *testing.T) {
	tests := []struct {
		name         string
		in           Snapshot
		wantVertices int
		wantEdges    int
	}{
		{"empty", Snapshot{}, 0, 0},
		{"single", chain("a"), 1, 0},
		{"chain", chain("a", "b", "c"), 3, 2},
		{
			name: "duplicate edges collapse",
			in: Snapshot{
				Nodes: []Node{{ID: "a"}, {ID: "b"}},
				Edges: []Edge{{From: "a", To: "b"}, {From: "a", To: "b"}},
			},
			wantVertices: 2,
			wantEdges:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, index, err := ToGraph(tt.in)
			if err != nil {
				t.Fatalf("ToGraph: %v", err)
			}
			if g.VertexCount() != tt.wantVertices {
				t.Errorf("VertexCount = %d, want %d", g.VertexCount(), tt.wantVertices)
			}
			if g.EdgeCount() != tt.wantEdges {
				t.Errorf("EdgeCount = %d, want %d", g.EdgeCount(), tt.wantEdges)
			}
			if len(index) != tt.wantVertices {
				t.Errorf("index has %d entries, want %d", len(index), tt.wantVertices)
			}
		})
	}
}

func TestToGraphErrors(t *testing.T) {
	tests := []struct {
		name string
		in   Snapshot
		want error
	}{
		{
			name: "empty id",
			in:   Snapshot{Nodes: []Node{{ID: ""}}},
			want: ErrEmptyNodeID,
		},
		{
			name: "duplicate id",
			in:   Snapshot{Nodes: []Node{{ID: "a"}, {ID: "a"}}},
			want: ErrDuplicateNodeID,
		},
		{
			name: "unknown source",
			in: Snapshot{
				Nodes: []Node{{ID: "a"}},
				Edges: []Edge{{From: "ghost", To: "a"}},
			},
			want: ErrUnknownEndpoint,
		},
		{
			name: "unknown target",
			in: Snapshot{
				Nodes: []Node{{ID: "a"}},
				Edges: []Edge{{From: "a", To: "ghost"}},
			},
			want: ErrUnknownEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ToGraph(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("ToGraph error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	in := Snapshot{
		Nodes: []Node{
			{ID: "app", Label: "Application", Meta: map[string]any{"tier": "top"}},
			{ID: "db"},
			{ID: "lib"},
		},
		Edges: []Edge{
			{From: "app", To: "db"},
			{From: "app", To: "lib"},
			{From: "lib", To: "db"},
		},
	}

	g, _, err := ToGraph(in)
	if err != nil {
		t.Fatalf("ToGraph: %v", err)
	}
	out := FromGraph(g)

	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestCapture(t *testing.T) {
	g := graph.New[string](graph.WithIDSource(graph.SequentialIDs()))
	a, _ := g.AddVertex("alpha")
	b, _ := g.AddVertex("beta")
	if err := g.AddEdge(a, b); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	s := Capture(g, func(_ graph.VertexID, v string) string { return v })

	if len(s.Nodes) != 2 || len(s.Edges) != 1 {
		t.Fatalf("snapshot shape = (%d nodes, %d edges)", len(s.Nodes), len(s.Edges))
	}
	if s.Nodes[0].Label != "alpha" || s.Nodes[1].Label != "beta" {
		t.Errorf("labels = %q, %q", s.Nodes[0].Label, s.Nodes[1].Label)
	}
	if s.Edges[0].From != a.String() || s.Edges[0].To != b.String() {
		t.Errorf("edge = %+v", s.Edges[0])
	}
}

func TestCaptureUsesAttachedLabels(t *testing.T) {
	g := graph.New[int](graph.WithIDSource(graph.SequentialIDs()))
	a, _ := g.AddVertex(1)
	if err := g.SetLabel(a, "one"); err != nil {
		t.Fatalf("SetLabel: %v", err)
	}

	s := Capture(g, nil)
	if s.Nodes[0].Label != "one" {
		t.Errorf("label = %q, want one", s.Nodes[0].Label)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	s := chain("a", "b", "c")

	first, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, _ := Marshal(s)
	if !bytes.Equal(first, second) {
		t.Error("Marshal should be deterministic")
	}

	decoded, err := Unmarshal(first)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(s, decoded) {
		t.Errorf("decode mismatch: %+v", decoded)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	s := chain("x", "y")

	if err := WriteFile(s, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !reflect.DeepEqual(s, got) {
		t.Errorf("file round trip mismatch: %+v", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("ReadFile should fail for a missing file")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Error("Unmarshal should reject malformed input")
	}
}
