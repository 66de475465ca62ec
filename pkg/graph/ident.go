package graph

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// VertexID is an opaque 128-bit vertex identifier. Identifiers are unique
// within a graph instance for as long as the owning vertex is live, compare
// with a total byte order, and are usable as map keys.
//
// The zero value is [NilID] and never identifies a live vertex.
type VertexID uuid.UUID

// NilID is the zero VertexID.
var NilID VertexID

// String renders the identifier in canonical UUID form.
func (id VertexID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether the identifier is the zero value.
func (id VertexID) IsNil() bool { return id == NilID }

// Compare orders identifiers bytewise. It returns a negative value when
// id sorts before other, zero when equal, and a positive value otherwise.
func (id VertexID) Compare(other VertexID) int {
	return bytes.Compare(id[:], other[:])
}

// ParseID parses an identifier previously rendered with [VertexID.String].
func ParseID(s string) (VertexID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilID, fmt.Errorf("parse vertex id %q: %w", s, err)
	}
	return VertexID(u), nil
}

// IDSource produces candidate vertex identifiers for a graph. The graph
// retries a bounded number of times when a candidate collides with a live
// vertex, so sources only need to be collision-free in expectation, not
// in every draw.
//
// Sources are owned by a single graph and need not be safe for concurrent
// use.
type IDSource interface {
	NewID() (VertexID, error)
}

// randomSource draws UUIDv4 identifiers from a seeded pseudorandom stream.
// Decoupling identity from insertion order keeps references valid and
// unpredictable across heavy churn.
type randomSource struct {
	r *rand.Rand
}

// RandomIDs returns an [IDSource] producing uniformly distributed 128-bit
// identifiers from a pseudorandom stream seeded with seed. Two sources
// created with the same seed produce the same identifier sequence.
func RandomIDs(seed int64) IDSource {
	return &randomSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randomSource) NewID() (VertexID, error) {
	u, err := uuid.NewRandomFromReader(s.r)
	if err != nil {
		return NilID, fmt.Errorf("draw random id: %w", err)
	}
	return VertexID(u), nil
}

// sequentialSource produces identifiers from a monotonically increasing
// counter. Intended for constrained environments without a usable
// randomness source, and for tests that want identifier order to follow
// insertion order.
type sequentialSource struct {
	next uint64
}

// SequentialIDs returns an [IDSource] producing counter-based identifiers.
// Identifiers ascend in allocation order, so traversal tie-breaks follow
// insertion order exactly.
func SequentialIDs() IDSource {
	return &sequentialSource{}
}

func (s *sequentialSource) NewID() (VertexID, error) {
	s.next++
	var id VertexID
	binary.BigEndian.PutUint64(id[8:], s.next)
	return id, nil
}
