package merge

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func reversed(xs []int) []int {
	out := slices.Clone(xs)
	slices.Reverse(out)
	return out
}

// sortAndProject is the reference: sort the concatenation and split it back
// into two equal halves, ascending or descending.
func sortAndProject(a, b []int, ascending bool) (wantA, wantB []int) {
	all := append(slices.Clone(a), b...)
	slices.Sort(all)
	if !ascending {
		slices.Reverse(all)
	}
	return all[:len(a)], all[len(a):]
}

func TestMergeAllEightDirectionalVariants(t *testing.T) {
	// base ascending runs of even/odd numbers, reversed to get the
	// descending variant of the same multiset.
	ascA := []int{1, 3, 5, 7}
	ascB := []int{2, 4, 6, 8}

	type variant struct {
		name         string
		a, b         []int
		ascendingOut bool
	}

	variants := []variant{
		{"up/AscAsc", ascA, ascB, true},
		{"up/AscDsc", ascA, reversed(ascB), true},
		{"up/DscAsc", reversed(ascA), ascB, true},
		{"up/DscDsc", reversed(ascA), reversed(ascB), true},
		{"dn/AscAsc", ascA, ascB, false},
		{"dn/AscDsc", ascA, reversed(ascB), false},
		{"dn/DscAsc", reversed(ascA), ascB, false},
		{"dn/DscDsc", reversed(ascA), reversed(ascB), false},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			a := slices.Clone(v.a)
			b := slices.Clone(v.b)
			buf := make([]int, len(a)+len(b))

			wantA, wantB := sortAndProject(v.a, v.b, v.ascendingOut)

			if v.ascendingOut {
				Up(a, b, buf)
			} else {
				Dn(a, b, buf)
			}

			require.Equal(t, wantA, a)
			require.Equal(t, wantB, b)
		})
	}
}

func TestMergePreservesMultiset(t *testing.T) {
	a := []int{2, 4, 4, 9}
	b := []int{1, 4, 6, 6}
	buf := make([]int, len(a)+len(b))

	wantAll := append(slices.Clone(a), b...)
	slices.Sort(wantAll)

	Up(a, b, buf)

	gotAll := append(slices.Clone(a), b...)
	slices.Sort(gotAll)
	require.Equal(t, wantAll, gotAll)
}

func TestMergeSingleElementSegments(t *testing.T) {
	a := []int{5}
	b := []int{5}
	buf := make([]int, 2)
	Up(a, b, buf)
	require.Equal(t, []int{5}, a)
	require.Equal(t, []int{5}, b)
}
