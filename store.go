package sparseset

// IndexStore maps an id to its position in a SparseSet's dense arrays.
//
// Implementations only record the mapping; they never check that a position
// is in range. SparseSet is the sole writer and keeps every mapping inside
// [0, Len) of its dense arrays.
type IndexStore[E comparable] interface {
	// Position returns the position mapped to id, or false if id is absent.
	Position(id E) (int, bool)
	// SetPosition maps id to pos, replacing any previous mapping.
	SetPosition(id E, pos int)
	// ClearPosition drops the mapping for id, if any.
	ClearPosition(id E)
	// SetPositions maps ids[j] to start+j. Callers pass only ids that have
	// no mapping yet.
	SetPositions(ids []E, start int)
	// Swap exchanges the positions mapped to a and b. If only one of them
	// is mapped, the other takes its position and it becomes absent.
	Swap(a, b E)
	// Clear drops every mapping.
	Clear()
	// Len returns the number of mapped ids.
	Len() int
	// Kind names the backend for diagnostics.
	Kind() string
}

// slotter is implemented by stores that may map distinct ids to one slot.
// slot panics for an id the store cannot hold.
type slotter[E comparable] interface {
	slot(id E) int
}

// swapPositions implements IndexStore.Swap on top of the point operations.
func swapPositions[E comparable](s IndexStore[E], a, b E) {
	pa, okA := s.Position(a)
	pb, okB := s.Position(b)
	assignPosition(s, a, pb, okB)
	assignPosition(s, b, pa, okA)
}

// setPositions implements IndexStore.SetPositions on top of SetPosition.
func setPositions[E comparable](s IndexStore[E], ids []E, start int) {
	for j, id := range ids {
		s.SetPosition(id, start+j)
	}
}

func assignPosition[E comparable](s IndexStore[E], id E, pos int, ok bool) {
	if ok {
		s.SetPosition(id, pos)
		return
	}
	s.ClearPosition(id)
}
