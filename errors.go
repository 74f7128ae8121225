package sparseset

import (
	"fmt"

	"github.com/rotisserie/eris"
)

var (
	// ErrOutOfBounds is the sentinel behind every *BoundsError.
	ErrOutOfBounds = eris.New("sparseset: index out of bounds")
	// ErrLengthMismatch is the sentinel behind every *LengthMismatchError.
	ErrLengthMismatch = eris.New("sparseset: ids and values differ in length")
	// ErrDuplicateID is the sentinel behind every *DuplicateIDError.
	ErrDuplicateID = eris.New("sparseset: duplicate id")
	// ErrSlotConflict is the sentinel behind every *SlotConflictError.
	ErrSlotConflict = eris.New("sparseset: id shares a slot with a stored id")
	// ErrCorrupted is returned by Validate when the dense arrays and the
	// index store disagree.
	ErrCorrupted = eris.New("sparseset: index store out of sync with dense arrays")
)

// BoundsError reports an index or offset outside [0, Len).
//
// errors.Is(err, ErrOutOfBounds) reports true for any BoundsError.
type BoundsError struct {
	Op    string
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sparseset: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// LengthMismatchError reports a batch whose id and value slices differ in length.
type LengthMismatchError struct {
	IDs    int
	Values int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("sparseset: batch has %d ids but %d values", e.IDs, e.Values)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// DuplicateIDError reports a batch id that is already stored in the set or
// appears more than once in the batch. Batch is the offending position in
// the batch slice.
type DuplicateIDError[E comparable] struct {
	ID    E
	Batch int
}

func (e *DuplicateIDError[E]) Error() string {
	return fmt.Sprintf("sparseset: id %v at batch position %d is already present", e.ID, e.Batch)
}

func (e *DuplicateIDError[E]) Unwrap() error { return ErrDuplicateID }

// SlotConflictError reports a batch id that maps to the same array slot as
// Holder, a different id already stored in the set or earlier in the batch.
// Two generations of one Entity.ID are the usual cause.
type SlotConflictError[E comparable] struct {
	ID     E
	Holder E
	Batch  int
}

func (e *SlotConflictError[E]) Error() string {
	return fmt.Sprintf("sparseset: id %v at batch position %d shares a slot with %v", e.ID, e.Batch, e.Holder)
}

func (e *SlotConflictError[E]) Unwrap() error { return ErrSlotConflict }
