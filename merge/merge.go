package merge

import "cmp"

// cursor walks one segment from whichever end holds its smallest element,
// so that repeatedly peeking the two cursors and advancing the smaller one
// always produces the next element of the ascending merge of the pair.
type cursor[T cmp.Ordered] struct {
	seg  []T
	idx  int
	step int
}

func newCursor[T cmp.Ordered](seg []T, ascending bool) cursor[T] {
	if ascending {
		return cursor[T]{seg: seg, idx: 0, step: 1}
	}
	return cursor[T]{seg: seg, idx: len(seg) - 1, step: -1}
}

func (c cursor[T]) peek() T    { return c.seg[c.idx] }
func (c *cursor[T]) advance()  { c.idx += c.step }

// isAscending reports a segment's monotonicity by comparing its first and
// last elements — cheap, and sufficient since every segment reaching this
// point is already internally monotone from an earlier merge stage.
func isAscending[T cmp.Ordered](seg []T) bool {
	return len(seg) < 2 || seg[0] <= seg[len(seg)-1]
}

// mergeAscendingInto walks a and b once, writing the 2*len(a) elements of
// their merge, in ascending order, into out at the given stride/start —
// forwards for an ascending result, backwards for a descending one. Ties
// prefer a, giving the merge stability with respect to segment provenance.
func mergeAscendingInto[T cmp.Ordered](a, b cursor[T], lenA, lenB int, out []T, start, step int) {
	var consumedA, consumedB int
	pos := start
	for i := 0; i < lenA+lenB; i++ {
		var v T
		switch {
		case consumedA == lenA:
			v = b.peek()
			b.advance()
			consumedB++
		case consumedB == lenB:
			v = a.peek()
			a.advance()
			consumedA++
		case a.peek() <= b.peek():
			v = a.peek()
			a.advance()
			consumedA++
		default:
			v = b.peek()
			b.advance()
			consumedB++
		}
		out[pos] = v
		pos += step
	}
}

// Up merges two equal-length, internally monotone segments and writes the
// ascending concatenation back into a (first half) and b (second half),
// using buf (len(buf) == 2*len(a)) as scratch.
func Up[T cmp.Ordered](a, b, buf []T) {
	merge(a, b, buf, true)
}

// Dn merges two equal-length, internally monotone segments and writes the
// descending concatenation back into a (first half) and b (second half),
// using buf (len(buf) == 2*len(a)) as scratch.
func Dn[T cmp.Ordered](a, b, buf []T) {
	merge(a, b, buf, false)
}

func merge[T cmp.Ordered](a, b, buf []T, ascendingOut bool) {
	n := len(a)
	ca := newCursor(a, isAscending(a))
	cb := newCursor(b, isAscending(b))

	if ascendingOut {
		mergeAscendingInto(ca, cb, n, len(b), buf, 0, 1)
	} else {
		mergeAscendingInto(ca, cb, n, len(b), buf, len(buf)-1, -1)
	}

	copy(a, buf[:n])
	copy(b, buf[n:])
}
