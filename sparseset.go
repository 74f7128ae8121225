package sparseset

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/rotisserie/eris"
	"golang.org/x/exp/constraints"
)

// SparseSet maps ids to densely packed values. Values live in one gap-free
// slice so they can be iterated contiguously, while an IndexStore gives O(1)
// lookup, insertion and removal by id.
//
// Removal swaps the last entry into the hole, so dense order is not
// insertion order once anything has been removed.
//
// A SparseSet is not safe for concurrent use.
type SparseSet[E comparable, T any] struct {
	store  IndexStore[E]
	ids    []E
	values []T
}

// New creates a SparseSet that owns store. The dense arrays are
// pre-allocated for capacity entries.
//
// Parameters:
//   - store: An empty IndexStore. It must not be shared with another set.
//   - capacity: The number of entries to pre-allocate memory for.
//
// Returns:
//   - The newly created SparseSet.
func New[E comparable, T any](store IndexStore[E], capacity int) *SparseSet[E, T] {
	if store == nil {
		panic("sparseset: nil index store")
	}
	return &SparseSet[E, T]{
		store:  store,
		ids:    make([]E, 0, capacity),
		values: make([]T, 0, capacity),
	}
}

// NewHashed creates a SparseSet backed by a HashStore.
func NewHashed[E comparable, T any](capacity int) *SparseSet[E, T] {
	return New[E, T](NewHashStore[E](capacity), capacity)
}

// NewArrayed creates a SparseSet backed by an ArrayStore.
func NewArrayed[E constraints.Unsigned, T any](capacity int) *SparseSet[E, T] {
	return New[E, T](NewArrayStore[E](), capacity)
}

// NewEntitySet creates a SparseSet keyed by Entity, slotted by Entity.Index.
func NewEntitySet[T any](capacity int) *SparseSet[Entity, T] {
	return New[Entity, T](NewEntityStore(), capacity)
}

// NewOrdered creates a SparseSet backed by an OrderedStore.
func NewOrdered[E cmp.Ordered, T any](capacity int) *SparseSet[E, T] {
	return New[E, T](NewOrderedStore[E](), capacity)
}

// position resolves id and confirms the dense array agrees, so a stale
// Entity sharing a slot with a live one reads as absent.
func (s *SparseSet[E, T]) position(id E) (int, bool) {
	pos, ok := s.store.Position(id)
	if !ok || pos >= len(s.ids) || s.ids[pos] != id {
		return 0, false
	}
	return pos, true
}

// Insert stores value under id. If id is already present its value is
// overwritten in place and the previous value is returned with true.
// Otherwise the pair is appended to the dense arrays.
//
// In an array-backed set, Insert panics if id's slot is held by a different
// id, such as another generation of the same Entity.ID, or if id is beyond
// the store's range. The set is unchanged when it panics.
func (s *SparseSet[E, T]) Insert(id E, value T) (T, bool) {
	if pos, ok := s.store.Position(id); ok && pos < len(s.ids) {
		if holder := s.ids[pos]; holder != id {
			panic(fmt.Sprintf("sparseset: id %v shares a slot with stored id %v", id, holder))
		}
		prev := s.values[pos]
		s.values[pos] = value
		return prev, true
	}
	s.store.SetPosition(id, len(s.ids))
	s.ids = append(s.ids, id)
	s.values = append(s.values, value)
	var zero T
	return zero, false
}

// Remove deletes id and returns its value. The last entry is swapped into
// the vacated position. Removing an absent id returns false and changes
// nothing.
func (s *SparseSet[E, T]) Remove(id E) (T, bool) {
	var zero T
	pos, ok := s.position(id)
	if !ok {
		return zero, false
	}
	last := len(s.ids) - 1
	s.swap(pos, last)
	s.store.ClearPosition(id)

	value := s.values[last]
	var zeroID E
	s.ids[last] = zeroID
	s.values[last] = zero
	s.ids = s.ids[:last]
	s.values = s.values[:last]
	return value, true
}

// swap transposes dense positions i and j. Both must be in range.
func (s *SparseSet[E, T]) swap(i, j int) {
	if i == j {
		return
	}
	s.store.Swap(s.ids[i], s.ids[j])
	s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// SwapByIndex transposes dense positions i and j, keeping each id paired
// with its value. Swapping a position with itself is a no-op.
//
// Parameters:
//   - i: A dense position in [0, Len).
//   - j: A dense position in [0, Len).
//
// Returns:
//   - A *BoundsError, with the set untouched, if either index is out of
//     range; nil otherwise.
func (s *SparseSet[E, T]) SwapByIndex(i, j int) error {
	if err := s.checkIndex("swap", i); err != nil {
		return err
	}
	if err := s.checkIndex("swap", j); err != nil {
		return err
	}
	s.swap(i, j)
	return nil
}

// SwapByID transposes the dense positions of a and b. It reports false and
// does nothing if either id is absent.
func (s *SparseSet[E, T]) SwapByID(a, b E) bool {
	i, ok := s.position(a)
	if !ok {
		return false
	}
	j, ok := s.position(b)
	if !ok {
		return false
	}
	s.swap(i, j)
	return true
}

// Get returns the value stored under id.
func (s *SparseSet[E, T]) Get(id E) (T, bool) {
	pos, ok := s.position(id)
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[pos], true
}

// GetPtr returns a pointer to the value stored under id, or nil if id is
// absent. The pointer is invalidated by the next Insert of a new id, Remove,
// swap or Clear.
func (s *SparseSet[E, T]) GetPtr(id E) *T {
	pos, ok := s.position(id)
	if !ok {
		return nil
	}
	return &s.values[pos]
}

// Contains reports whether id is present.
func (s *SparseSet[E, T]) Contains(id E) bool {
	_, ok := s.position(id)
	return ok
}

// Index returns the dense position of id.
func (s *SparseSet[E, T]) Index(id E) (int, bool) {
	return s.position(id)
}

// At returns the id and a pointer to the value at dense position i.
func (s *SparseSet[E, T]) At(i int) (E, *T, error) {
	if err := s.checkIndex("at", i); err != nil {
		var zero E
		return zero, nil, err
	}
	return s.ids[i], &s.values[i], nil
}

// InsertBatch appends every (ids[j], values[j]) pair. Every violation is
// reported before anything is written, and the result of a successful call
// is the same as inserting the pairs one by one in order.
//
// Parameters:
//   - ids: The ids to append. None may be stored already or appear twice.
//   - values: The values for ids, position by position.
//
// Returns:
//   - A *LengthMismatchError if the slices differ in length.
//   - A *DuplicateIDError if an id is present or repeated.
//   - A *SlotConflictError if an id shares an array slot with a different
//     stored or batched id.
//   - nil once every pair is stored.
//
// Like Insert, it panics for an id beyond an array store's range.
func (s *SparseSet[E, T]) InsertBatch(ids []E, values []T) error {
	if len(ids) != len(values) {
		return &LengthMismatchError{IDs: len(ids), Values: len(values)}
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.checkBatch(ids); err != nil {
		return err
	}

	start := len(s.ids)
	s.ids = extendSlice(s.ids, len(ids))
	s.values = extendSlice(s.values, len(values))
	copy(s.ids[start:], ids)
	copy(s.values[start:], values)
	s.store.SetPositions(ids, start)
	return nil
}

// checkBatch rejects ids already in the set, repeated within the batch, or
// colliding in a slot with a stored or earlier batch id.
func (s *SparseSet[E, T]) checkBatch(ids []E) error {
	seen := NewHashStore[E](len(ids))
	slots, slotted := s.store.(slotter[E])
	var seenSlots *HashStore[int]
	if slotted {
		seenSlots = NewHashStore[int](len(ids))
	}

	for j, id := range ids {
		if pos, ok := s.store.Position(id); ok && pos < len(s.ids) {
			if holder := s.ids[pos]; holder != id {
				return &SlotConflictError[E]{ID: id, Holder: holder, Batch: j}
			}
			return &DuplicateIDError[E]{ID: id, Batch: j}
		}
		if _, dup := seen.Position(id); dup {
			return &DuplicateIDError[E]{ID: id, Batch: j}
		}
		if slotted {
			k := slots.slot(id)
			if prev, taken := seenSlots.Position(k); taken {
				return &SlotConflictError[E]{ID: id, Holder: ids[prev], Batch: j}
			}
			seenSlots.SetPosition(k, j)
		}
		seen.SetPosition(id, j)
	}
	return nil
}

// Len returns the number of stored entries.
func (s *SparseSet[E, T]) Len() int {
	return len(s.ids)
}

// IsEmpty reports whether the set holds no entries.
func (s *SparseSet[E, T]) IsEmpty() bool {
	return len(s.ids) == 0
}

// IDs returns the ids in dense order. The slice is a live view and must not
// be modified; ids[i] owns Values()[i].
func (s *SparseSet[E, T]) IDs() []E {
	return slices.Clip(s.ids)
}

// Values returns the values in dense order. The slice is a live view;
// elements may be modified in place.
func (s *SparseSet[E, T]) Values() []T {
	return slices.Clip(s.values)
}

// All yields every (id, value) pair in current dense order.
func (s *SparseSet[E, T]) All() iter.Seq2[E, T] {
	return func(yield func(E, T) bool) {
		for i, id := range s.ids {
			if !yield(id, s.values[i]) {
				return
			}
		}
	}
}

// AllPtr yields every id with a pointer to its value in current dense order.
func (s *SparseSet[E, T]) AllPtr() iter.Seq2[E, *T] {
	return func(yield func(E, *T) bool) {
		for i, id := range s.ids {
			if !yield(id, &s.values[i]) {
				return
			}
		}
	}
}

// Clear removes every entry. Allocated capacity is kept.
func (s *SparseSet[E, T]) Clear() {
	s.store.Clear()
	clear(s.ids)
	clear(s.values)
	s.ids = s.ids[:0]
	s.values = s.values[:0]
}

// StoreKind names the IndexStore backend.
func (s *SparseSet[E, T]) StoreKind() string {
	return s.store.Kind()
}

// StoreLen returns the number of ids mapped by the IndexStore. It equals Len
// whenever the set is consistent.
func (s *SparseSet[E, T]) StoreLen() int {
	return s.store.Len()
}

// Validate checks that the dense arrays and the IndexStore describe the
// same bijection between ids and [0, Len). It returns an error wrapping
// ErrCorrupted at the first disagreement.
func (s *SparseSet[E, T]) Validate() error {
	if len(s.ids) != len(s.values) {
		return eris.Wrapf(ErrCorrupted, "%d ids but %d values", len(s.ids), len(s.values))
	}
	if n := s.store.Len(); n != len(s.ids) {
		return eris.Wrapf(ErrCorrupted, "store maps %d ids, dense arrays hold %d", n, len(s.ids))
	}
	for i, id := range s.ids {
		pos, ok := s.store.Position(id)
		if !ok {
			return eris.Wrapf(ErrCorrupted, "id %v at position %d is not mapped", id, i)
		}
		if pos != i {
			return eris.Wrapf(ErrCorrupted, "id %v at position %d maps to %d", id, i, pos)
		}
	}
	return nil
}

func (s *SparseSet[E, T]) checkIndex(op string, i int) error {
	if i < 0 || i >= len(s.ids) {
		return &BoundsError{Op: op, Index: i, Len: len(s.ids)}
	}
	return nil
}
