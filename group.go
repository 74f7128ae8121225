package sparseset

// MakeGroupIn rearranges a and b in place so that the ids present in both
// occupy a[offset, offset+k) and b[0, k), and returns k.
//
// The shorter set drives the walk, a when the lengths are equal, so the
// cost is min(a.Len(), b.Len()) lookups plus O(k) swaps. Both blocks end up
// in the same order: a[offset+j] and b[j] hold the same id. Sets with
// nothing in common are left untouched.
//
// Parameters:
//   - a: The set whose block starts at offset.
//   - b: The set whose block starts at 0.
//   - offset: Where a's block starts. It must leave room for the
//     intersection, so offset+k <= a.Len().
//
// Returns:
//   - k, the number of shared ids.
//   - A *BoundsError if offset is outside [0, a.Len()] or the intersection
//     does not fit. Neither set is modified in that case.
func MakeGroupIn[E comparable, TA, TB any](a *SparseSet[E, TA], b *SparseSet[E, TB], offset int) (int, error) {
	la, lb := a.Len(), b.Len()
	if offset < 0 || offset > la {
		return 0, &BoundsError{Op: "group", Index: offset, Len: la + 1}
	}
	if offset+min(la, lb) > la {
		if k := countShared(a, b); offset+k > la {
			return 0, &BoundsError{Op: "group", Index: offset + k - 1, Len: la}
		}
	}

	if lb < la {
		return groupDrivenBy(b, a, offset), nil
	}
	k := groupDrivenBy(a, b, 0)
	shiftBlock(a, k, offset)
	return k, nil
}

// groupDrivenBy walks driver in dense order and moves the m-th id also found
// in target to driver[m] and target[targetBase+m].
func groupDrivenBy[E comparable, TD, TT any](driver *SparseSet[E, TD], target *SparseSet[E, TT], targetBase int) int {
	matched := 0
	for i := 0; i < len(driver.ids); i++ {
		p, ok := target.position(driver.ids[i])
		if !ok {
			continue
		}
		target.swap(p, targetBase+matched)
		driver.swap(i, matched)
		matched++
	}
	return matched
}

// shiftBlock moves s[0, k) to s[offset, offset+k). Walking down from the
// top keeps every block element from being moved twice.
func shiftBlock[E comparable, T any](s *SparseSet[E, T], k, offset int) {
	if offset == 0 {
		return
	}
	for j := k - 1; j >= 0; j-- {
		s.swap(j, j+offset)
	}
}

// countShared returns the size of the id intersection of a and b.
func countShared[E comparable, TA, TB any](a *SparseSet[E, TA], b *SparseSet[E, TB]) int {
	if b.Len() < a.Len() {
		return countShared(b, a)
	}
	n := 0
	for _, id := range a.ids {
		if b.Contains(id) {
			n++
		}
	}
	return n
}

// Group is an owning group over two sets: after a build the ids shared by
// A and B sit in A[offset, offset+Len) and B[0, Len), so both value blocks
// can be walked side by side without lookups.
//
// The partition stays valid until either set gains or loses an id. Call
// Rebuild after such a change. Contains reports false for ids whose blocks
// no longer line up, while IDs and Each panic on a stale partition rather
// than pair unrelated entries.
type Group[E comparable, TA, TB any] struct {
	a      *SparseSet[E, TA]
	b      *SparseSet[E, TB]
	offset int
	n      int
}

// NewGroup builds a group over a and b with a's block starting at offset.
// It panics if either set is nil.
//
// Parameters:
//   - a: The first set. Its shared block starts at offset.
//   - b: The second set. Its shared block starts at 0.
//   - offset: The start of the block in a, as for MakeGroupIn.
//
// Returns:
//   - The built group.
//   - The *BoundsError from MakeGroupIn if the partition cannot be made.
func NewGroup[E comparable, TA, TB any](a *SparseSet[E, TA], b *SparseSet[E, TB], offset int) (*Group[E, TA, TB], error) {
	if a == nil || b == nil {
		panic("sparseset: nil set in group")
	}
	g := &Group[E, TA, TB]{a: a, b: b, offset: offset}
	if err := g.Rebuild(); err != nil {
		return nil, err
	}
	return g, nil
}

// Rebuild repartitions both sets. On error the previous partition is kept
// and the sets are unchanged.
func (g *Group[E, TA, TB]) Rebuild() error {
	n, err := MakeGroupIn(g.a, g.b, g.offset)
	if err != nil {
		return err
	}
	g.n = n
	return nil
}

// Len returns the number of ids in the group.
func (g *Group[E, TA, TB]) Len() int {
	return g.n
}

// Offset returns where the group's block starts in A.
func (g *Group[E, TA, TB]) Offset() int {
	return g.offset
}

// stalePartition is the panic message for a group whose sets changed
// without a Rebuild.
const stalePartition = "sparseset: group partition is stale, call Rebuild after adding or removing ids"

// inRange reports whether both blocks still fit inside their sets.
func (g *Group[E, TA, TB]) inRange() bool {
	return g.n <= g.b.Len() && g.offset+g.n <= g.a.Len()
}

// Contains reports whether id is in the group. It is a single lookup in B
// followed by a check that A holds the same id at the matching position.
func (g *Group[E, TA, TB]) Contains(id E) bool {
	p, ok := g.b.position(id)
	if !ok || p >= g.n || g.offset+p >= g.a.Len() {
		return false
	}
	return g.a.ids[g.offset+p] == id
}

// IDs returns the group's ids in B's dense order. It panics if B no longer
// holds a full block.
func (g *Group[E, TA, TB]) IDs() []E {
	if !g.inRange() {
		panic(stalePartition)
	}
	return g.b.ids[:g.n:g.n]
}

// Each calls fn for every id in the group with its values from A and B,
// until fn returns false. The two blocks are walked in lockstep, and Each
// panics when it meets a position where they disagree.
func (g *Group[E, TA, TB]) Each(fn func(id E, a *TA, b *TB) bool) {
	if !g.inRange() {
		panic(stalePartition)
	}
	aids := g.a.ids[g.offset : g.offset+g.n]
	as := g.a.values[g.offset : g.offset+g.n]
	bs := g.b.values[:g.n]
	for i, id := range g.b.ids[:g.n] {
		if aids[i] != id {
			panic(stalePartition)
		}
		if !fn(id, &as[i], &bs[i]) {
			return
		}
	}
}
