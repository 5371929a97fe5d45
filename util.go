package charscan

import "golang.org/x/exp/constraints"

// clampRange normalizes a [start, end) request against a sequence of length
// n: bounds are clipped to [0, n] and an inverted range collapses to empty.
func clampRange[T constraints.Integer](start, end, n T) (T, T) {
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if end < 0 {
		end = 0
	}
	if start > end {
		start = end
	}
	return start, end
}
