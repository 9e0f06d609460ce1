package sortengine

import (
	"cmp"

	"github.com/arrowlanding/bsort/merge"
)

// sortSequential runs the whole network on one goroutine: no coordination
// needed since there's no concurrent access to guard against.
func sortSequential[T cmp.Ordered](seq []T, segmentSize, numSegs int) {
	localSort(seq, segmentSize, numSegs)

	buf := make([]T, 2*segmentSize)
	for _, step := range networkSteps(numSegs) {
		for i := 0; i < numSegs; i++ {
			ij := i ^ step.j
			if i >= ij {
				continue
			}
			a := segment(seq, i, segmentSize)
			b := segment(seq, ij, segmentSize)
			if i&step.k == 0 {
				merge.Up(a, b, buf)
			} else {
				merge.Dn(a, b, buf)
			}
		}
	}
}
