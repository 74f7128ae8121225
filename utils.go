package sparseset

// extendSlice extends a slice by n elements, reallocating if necessary.
// The new tail is zeroed.
func extendSlice[T any](s []T, n int) []T {
	newLen := len(s) + n
	if cap(s) >= newLen {
		s = s[:newLen]
		clear(s[newLen-n:])
		return s
	}
	newCap := max(2*cap(s), newLen)
	ns := make([]T, newLen, newCap)
	copy(ns, s)
	return ns
}

// growTo extends s so that index i is addressable. It never shrinks.
func growTo[T any](s []T, i int) []T {
	if i < len(s) {
		return s
	}
	return extendSlice(s, i+1-len(s))
}
