// Package sparseset provides a sparse-set container: values keyed by
// arbitrary, possibly sparse ids, stored in gap-free slices for
// cache-friendly iteration with O(1) lookup, insertion and removal.
//
// The id→position mapping is pluggable through IndexStore. HashStore suits
// arbitrary comparable ids, ArrayStore suits small or slot-allocated integer
// ids such as Entity, and OrderedStore keeps ids walkable in key order.
//
// MakeGroupIn and Group co-partition two sets so that the ids they share
// form one contiguous block in each. Inside the block "does this entity have
// both components" becomes a range check, and the two value slices can be
// walked side by side.
package sparseset
