package sortengine

import (
	"cmp"
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arrowlanding/bsort/merge"
)

// sortForkJoin runs the outer (k, j) loops sequentially; the inner loop
// over segment indices is distributed across workers re-forked every stage
// and joined via errgroup.Group.Wait, an implicit barrier supplied by an
// external parallel runtime instead of one this package owns.
func sortForkJoin[T cmp.Ordered](ctx context.Context, seq []T, numThreads, segmentSize, numSegs int) error {
	bufs := make([][]T, numThreads)
	for t := range bufs {
		bufs[t] = make([]T, 2*segmentSize)
	}

	var g errgroup.Group
	for t := 0; t < numThreads; t++ {
		t := t
		lo, hi := blockRange(t, numThreads, numSegs)
		g.Go(func() error {
			localSortRange[T](seq, segmentSize, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, step := range networkSteps(numSegs) {
		step := step
		var g errgroup.Group
		for t := 0; t < numThreads; t++ {
			t := t
			lo, hi := blockRange(t, numThreads, numSegs)
			buf := bufs[t]
			g.Go(func() error {
				for i := lo; i < hi; i++ {
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
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}
