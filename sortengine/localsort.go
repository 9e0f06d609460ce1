package sortengine

import (
	"cmp"
	"slices"
)

// sortSegment sorts one segment in place, ascending — the local-sort step
// every mode runs before entering the merge network.
func sortSegment[T cmp.Ordered](seg []T) {
	slices.Sort(seg)
}
