package sparseset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storesUnderTest() map[string]func() IndexStore[uint32] {
	return map[string]func() IndexStore[uint32]{
		"hash":    func() IndexStore[uint32] { return NewHashStore[uint32](0) },
		"array":   func() IndexStore[uint32] { return NewArrayStore[uint32]() },
		"ordered": func() IndexStore[uint32] { return NewOrderedStore[uint32]() },
	}
}

func TestStorePointOperations(t *testing.T) {
	for name, newStore := range storesUnderTest() {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			assert.Equal(t, name, s.Kind())

			_, ok := s.Position(7)
			assert.False(t, ok)

			s.SetPosition(7, 0)
			pos, ok := s.Position(7)
			require.True(t, ok, "position 0 must be distinguishable from absent")
			assert.Equal(t, 0, pos)

			s.SetPosition(7, 3)
			pos, ok = s.Position(7)
			require.True(t, ok)
			assert.Equal(t, 3, pos)
			assert.Equal(t, 1, s.Len())

			s.ClearPosition(7)
			_, ok = s.Position(7)
			assert.False(t, ok)
			assert.Equal(t, 0, s.Len())

			// clearing an absent id is harmless
			s.ClearPosition(7)
			s.ClearPosition(1000)
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestStoreSetPositions(t *testing.T) {
	for name, newStore := range storesUnderTest() {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			s.SetPositions([]uint32{40, 2, 17}, 5)

			for j, id := range []uint32{40, 2, 17} {
				pos, ok := s.Position(id)
				require.True(t, ok)
				assert.Equal(t, 5+j, pos)
			}
			assert.Equal(t, 3, s.Len())
		})
	}
}

func TestStoreSwap(t *testing.T) {
	for name, newStore := range storesUnderTest() {
		t.Run(name, func(t *testing.T) {
			t.Run("BothPresent", func(t *testing.T) {
				s := newStore()
				s.SetPosition(1, 10)
				s.SetPosition(2, 20)
				s.Swap(1, 2)

				p1, _ := s.Position(1)
				p2, _ := s.Position(2)
				assert.Equal(t, 20, p1)
				assert.Equal(t, 10, p2)
			})

			t.Run("OneAbsent", func(t *testing.T) {
				s := newStore()
				s.SetPosition(1, 4)
				s.Swap(1, 9)

				_, ok := s.Position(1)
				assert.False(t, ok)
				p9, ok := s.Position(9)
				require.True(t, ok)
				assert.Equal(t, 4, p9)
				assert.Equal(t, 1, s.Len())
			})

			t.Run("BothAbsent", func(t *testing.T) {
				s := newStore()
				s.Swap(3, 5)
				assert.Equal(t, 0, s.Len())
			})

			t.Run("Self", func(t *testing.T) {
				s := newStore()
				s.SetPosition(6, 2)
				s.Swap(6, 6)
				p, ok := s.Position(6)
				require.True(t, ok)
				assert.Equal(t, 2, p)
			})
		})
	}
}

func TestStoreClear(t *testing.T) {
	for name, newStore := range storesUnderTest() {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			s.SetPositions([]uint32{1, 2, 3}, 0)
			s.Clear()

			assert.Equal(t, 0, s.Len())
			for _, id := range []uint32{1, 2, 3} {
				_, ok := s.Position(id)
				assert.False(t, ok)
			}

			s.SetPosition(2, 0)
			pos, ok := s.Position(2)
			require.True(t, ok)
			assert.Equal(t, 0, pos)
		})
	}
}

func TestArrayStoreGrowth(t *testing.T) {
	s := NewArrayStore[uint16]()
	assert.Equal(t, 0, s.Cap())

	_, ok := s.Position(500)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Cap(), "lookups must not grow the slots")

	s.SetPosition(500, 0)
	assert.GreaterOrEqual(t, s.Cap(), 501)

	grown := s.Cap()
	s.ClearPosition(500)
	s.Clear()
	assert.Equal(t, grown, s.Cap(), "slots never shrink")
}

func TestEntityStoreUsesSlot(t *testing.T) {
	s := NewEntityStore()
	s.SetPosition(Entity{ID: 3, Version: 1}, 0)

	// Same slot, the set is responsible for rejecting the stale generation.
	_, ok := s.Position(Entity{ID: 3, Version: 2})
	assert.True(t, ok)
	_, ok = s.Position(Entity{ID: 4, Version: 1})
	assert.False(t, ok)
}

func TestOrderedStoreAscend(t *testing.T) {
	s := NewOrderedStore[string]()
	s.SetPositions([]string{"delta", "alpha", "charlie", "bravo"}, 0)

	var keys []string
	var positions []int
	s.Ascend(func(id string, pos int) bool {
		keys = append(keys, id)
		positions = append(positions, pos)
		return true
	})
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, keys)
	assert.Equal(t, []int{1, 3, 2, 0}, positions)

	var first []string
	s.Ascend(func(id string, _ int) bool {
		first = append(first, id)
		return len(first) < 2
	})
	assert.Equal(t, []string{"alpha", "bravo"}, first)
}

func TestArrayStoreNilIndexPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewArrayStoreFunc[string](nil)
	})
}

func TestArrayStoreRange(t *testing.T) {
	s := NewArrayStore[uint64]()
	wide := uint64(1) << 32

	_, ok := s.Position(wide)
	assert.False(t, ok)
	s.ClearPosition(wide)
	assert.Panics(t, func() { s.SetPosition(wide, 0) })
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Cap())

	// Truncation would fold wide onto slot 0.
	s.SetPosition(0, 0)
	_, ok = s.Position(wide)
	assert.False(t, ok)
}
