package sparseset

import "github.com/cockroachdb/swiss"

// HashStore is an IndexStore backed by a Swiss table. It accepts any
// comparable id and uses memory proportional to the number of stored ids.
type HashStore[E comparable] struct {
	m    *swiss.Map[E, int]
	hint int
}

// NewHashStore creates a HashStore sized for capacity ids.
func NewHashStore[E comparable](capacity int) *HashStore[E] {
	return &HashStore[E]{
		m:    swiss.New[E, int](capacity),
		hint: capacity,
	}
}

func (s *HashStore[E]) Position(id E) (int, bool) {
	return s.m.Get(id)
}

func (s *HashStore[E]) SetPosition(id E, pos int) {
	s.m.Put(id, pos)
}

func (s *HashStore[E]) ClearPosition(id E) {
	s.m.Delete(id)
}

func (s *HashStore[E]) SetPositions(ids []E, start int) {
	setPositions[E](s, ids, start)
}

func (s *HashStore[E]) Swap(a, b E) {
	swapPositions[E](s, a, b)
}

// Clear drops the table and starts over with the original capacity hint.
func (s *HashStore[E]) Clear() {
	s.m.Close()
	s.m = swiss.New[E, int](s.hint)
}

func (s *HashStore[E]) Len() int {
	return s.m.Len()
}

func (s *HashStore[E]) Kind() string {
	return "hash"
}

var _ IndexStore[int] = (*HashStore[int])(nil)
