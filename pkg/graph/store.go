package graph

// store owns vertex payloads keyed by identifier. Payloads are boxed so
// that [Graph.FetchMut] can hand out a pointer without re-boxing on every
// access.
//
// Only the Graph writes to the store, and it only ever inserts freshly
// allocated identifiers, so insert never observes a duplicate key.
type store[T any] map[VertexID]*T

func (s store[T]) insert(id VertexID, value T) {
	s[id] = &value
}

func (s store[T]) has(id VertexID) bool {
	_, ok := s[id]
	return ok
}

func (s store[T]) get(id VertexID) (T, bool) {
	p, ok := s[id]
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

func (s store[T]) ptr(id VertexID) (*T, bool) {
	p, ok := s[id]
	return p, ok
}

// remove deletes the entry and returns the owned payload.
func (s store[T]) remove(id VertexID) (T, bool) {
	p, ok := s[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(s, id)
	return *p, true
}

func (s store[T]) len() int { return len(s) }
