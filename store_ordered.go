package sparseset

import (
	"cmp"

	"github.com/google/btree"
)

const orderedStoreDegree = 32

type orderedSlot[E cmp.Ordered] struct {
	id  E
	pos int
}

// OrderedStore is an IndexStore backed by a B-tree. Operations cost
// O(log n), in exchange ids can be walked in key order.
type OrderedStore[E cmp.Ordered] struct {
	tree *btree.BTreeG[orderedSlot[E]]
}

// NewOrderedStore creates an empty OrderedStore.
func NewOrderedStore[E cmp.Ordered]() *OrderedStore[E] {
	return &OrderedStore[E]{
		tree: btree.NewG(orderedStoreDegree, func(a, b orderedSlot[E]) bool {
			return cmp.Less(a.id, b.id)
		}),
	}
}

func (s *OrderedStore[E]) Position(id E) (int, bool) {
	slot, ok := s.tree.Get(orderedSlot[E]{id: id})
	return slot.pos, ok
}

func (s *OrderedStore[E]) SetPosition(id E, pos int) {
	s.tree.ReplaceOrInsert(orderedSlot[E]{id: id, pos: pos})
}

func (s *OrderedStore[E]) ClearPosition(id E) {
	s.tree.Delete(orderedSlot[E]{id: id})
}

func (s *OrderedStore[E]) SetPositions(ids []E, start int) {
	setPositions[E](s, ids, start)
}

func (s *OrderedStore[E]) Swap(a, b E) {
	swapPositions[E](s, a, b)
}

func (s *OrderedStore[E]) Clear() {
	s.tree.Clear(true)
}

func (s *OrderedStore[E]) Len() int {
	return s.tree.Len()
}

func (s *OrderedStore[E]) Kind() string {
	return "ordered"
}

// Ascend calls fn for every mapped id in ascending key order until fn
// returns false.
func (s *OrderedStore[E]) Ascend(fn func(id E, pos int) bool) {
	s.tree.Ascend(func(slot orderedSlot[E]) bool {
		return fn(slot.id, slot.pos)
	})
}

var _ IndexStore[string] = (*OrderedStore[string])(nil)
