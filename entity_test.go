package sparseset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntity(t *testing.T) {
	e := Entity{ID: 12, Version: 3}
	assert.Equal(t, uint32(12), e.Index())
	assert.Equal(t, "12:3", e.String())
	assert.False(t, e.IsZero())
	assert.True(t, Entity{}.IsZero())
}

func TestExtendSliceZeroesReusedTail(t *testing.T) {
	s := make([]int, 4, 8)
	s[3] = 9
	s = s[:2]
	s = extendSlice(s, 2)
	assert.Equal(t, []int{0, 0, 0, 0}, s)
	assert.Equal(t, 8, cap(s))

	grown := extendSlice(s, 10)
	assert.Len(t, grown, 14)
	assert.GreaterOrEqual(t, cap(grown), 16)

	assert.Len(t, growTo([]int(nil), 5), 6)
	assert.Len(t, growTo(make([]int, 10), 5), 10)
}
