package graph

import (
	"errors"
	"testing"
)

func TestVertexIDString(t *testing.T) {
	src := RandomIDs(1)
	id, err := src.NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}

	parsed, err := ParseID(id.String())
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if parsed != id {
		t.Errorf("round-trip mismatch: %s != %s", parsed, id)
	}
}

func TestParseIDInvalid(t *testing.T) {
	if _, err := ParseID("not-a-uuid"); err == nil {
		t.Error("ParseID should reject malformed input")
	}
}

func TestVertexIDCompare(t *testing.T) {
	a := VertexID{0: 1}
	b := VertexID{0: 2}

	if a.Compare(b) >= 0 {
		t.Error("a should sort before b")
	}
	if b.Compare(a) <= 0 {
		t.Error("b should sort after a")
	}
	if a.Compare(a) != 0 {
		t.Error("Compare(self) should be 0")
	}
}

func TestNilID(t *testing.T) {
	if !NilID.IsNil() {
		t.Error("NilID.IsNil() = false")
	}

	src := RandomIDs(42)
	id, _ := src.NewID()
	if id.IsNil() {
		t.Error("random id should not be nil")
	}
}

func TestRandomIDsDeterministic(t *testing.T) {
	a := RandomIDs(7)
	b := RandomIDs(7)

	for i := 0; i < 10; i++ {
		ida, _ := a.NewID()
		idb, _ := b.NewID()
		if ida != idb {
			t.Fatalf("draw %d: sources with equal seeds diverged: %s != %s", i, ida, idb)
		}
	}
}

func TestRandomIDsDistinct(t *testing.T) {
	src := RandomIDs(3)
	seen := make(map[VertexID]bool)
	for i := 0; i < 1000; i++ {
		id, err := src.NewID()
		if err != nil {
			t.Fatalf("NewID: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id after %d draws: %s", i, id)
		}
		seen[id] = true
	}
}

func TestSequentialIDsAscend(t *testing.T) {
	src := SequentialIDs()
	prev, _ := src.NewID()
	for i := 0; i < 100; i++ {
		id, _ := src.NewID()
		if prev.Compare(id) >= 0 {
			t.Fatalf("sequential ids should ascend: %s then %s", prev, id)
		}
		prev = id
	}
}

// stuckSource always returns the same identifier, forcing the allocator
// into its retry bound.
type stuckSource struct{ id VertexID }

func (s stuckSource) NewID() (VertexID, error) { return s.id, nil }

func TestAllocationExhausted(t *testing.T) {
	g := New[int](WithIDSource(stuckSource{id: VertexID{0: 1}}))

	if _, err := g.AddVertex(1); err != nil {
		t.Fatalf("first AddVertex: %v", err)
	}

	_, err := g.AddVertex(2)
	if !errors.Is(err, ErrIDExhausted) {
		t.Errorf("AddVertex error = %v, want ErrIDExhausted", err)
	}
	if g.VertexCount() != 1 {
		t.Errorf("failed allocation must not mutate the graph: count = %d", g.VertexCount())
	}
}
