package sparseset

import "fmt"

// Entity is a generational handle. It combines a 32-bit ID with a 32-bit
// version so that a recycled ID is not confused with the entity that held it
// before.
type Entity struct {
	// ID is the recyclable slot number of the entity.
	ID uint32
	// Version is a generation counter, incremented each time ID is reused.
	Version uint32
}

// Index returns the slot number used by array-backed storage. An
// entity-keyed set holds at most one generation per ID: lookups with any
// other generation report absent, and inserting one while the slot is held
// panics (InsertBatch returns a *SlotConflictError instead).
func (e Entity) Index() uint32 {
	return e.ID
}

// IsZero reports whether e is the zero handle.
func (e Entity) IsZero() bool {
	return e.ID == 0 && e.Version == 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.ID, e.Version)
}
