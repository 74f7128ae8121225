package sparseset

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// maxSlot is the largest id integer an ArrayStore can hold.
const maxSlot = math.MaxUint32

// ArrayStore is an IndexStore backed by a slice indexed by the id's integer
// form. Lookups are O(1) worst case; memory grows with the largest id seen
// and is never released.
//
// Each slot holds position+1 so that the zero value means absent. Ids whose
// integer form exceeds math.MaxUint32 are never present, and storing one
// panics.
type ArrayStore[E comparable] struct {
	slots []int
	index func(E) uint64
	used  int
}

// NewArrayStore creates an ArrayStore for unsigned integer ids. Wide types
// such as uint64 are accepted, but only ids up to math.MaxUint32 can be
// stored.
func NewArrayStore[E constraints.Unsigned]() *ArrayStore[E] {
	return &ArrayStore[E]{index: func(id E) uint64 { return uint64(id) }}
}

// NewArrayStoreFunc creates an ArrayStore that slots ids by index. Distinct
// ids may share a slot; a SparseSet refuses to store a second id in an
// occupied slot.
func NewArrayStoreFunc[E comparable](index func(E) uint32) *ArrayStore[E] {
	if index == nil {
		panic("sparseset: nil index function")
	}
	return &ArrayStore[E]{index: func(id E) uint64 { return uint64(index(id)) }}
}

// NewEntityStore creates an ArrayStore slotted by Entity.Index.
func NewEntityStore() *ArrayStore[Entity] {
	return NewArrayStoreFunc(Entity.Index)
}

// slot returns the slice index for id and panics if id is out of range.
func (s *ArrayStore[E]) slot(id E) int {
	i := s.index(id)
	if i > maxSlot {
		panic(fmt.Sprintf("sparseset: id %v exceeds the array store range [0, %d]", id, uint64(maxSlot)))
	}
	return int(i)
}

// Position returns absent for ids beyond the slice without growing it.
func (s *ArrayStore[E]) Position(id E) (int, bool) {
	i := s.index(id)
	if i >= uint64(len(s.slots)) {
		return 0, false
	}
	p := s.slots[i]
	return p - 1, p != 0
}

// SetPosition grows the slice to cover id first.
func (s *ArrayStore[E]) SetPosition(id E, pos int) {
	i := s.slot(id)
	s.slots = growTo(s.slots, i)
	if s.slots[i] == 0 {
		s.used++
	}
	s.slots[i] = pos + 1
}

func (s *ArrayStore[E]) ClearPosition(id E) {
	i := s.index(id)
	if i >= uint64(len(s.slots)) || s.slots[i] == 0 {
		return
	}
	s.slots[i] = 0
	s.used--
}

func (s *ArrayStore[E]) SetPositions(ids []E, start int) {
	setPositions[E](s, ids, start)
}

func (s *ArrayStore[E]) Swap(a, b E) {
	swapPositions[E](s, a, b)
}

// Clear zeroes every slot but keeps the slice.
func (s *ArrayStore[E]) Clear() {
	clear(s.slots)
	s.used = 0
}

func (s *ArrayStore[E]) Len() int {
	return s.used
}

func (s *ArrayStore[E]) Kind() string {
	return "array"
}

// Cap returns the number of addressable slots.
func (s *ArrayStore[E]) Cap() int {
	return len(s.slots)
}

var (
	_ IndexStore[uint32] = (*ArrayStore[uint32])(nil)
	_ slotter[uint32]    = (*ArrayStore[uint32])(nil)
)
