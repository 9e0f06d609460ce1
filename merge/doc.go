// Package merge implements the in-place, linear-time merge kernels the
// bitonic sort engine runs on pairs of same-size segments: merge_up and
// merge_dn, each tolerant of either segment arriving ascending or
// descending.
//
// Rather than hand-writing the eight Up/Dn × {UpUp,UpDn,DnUp,DnDn} variants,
// both directions are driven by a pair of per-segment cursors that walk from
// whichever end holds the segment's smallest element — the four
// input-monotonicity combinations fall out of how the two cursors are
// initialized, and the two output directions fall out of whether the merged
// run is written into the scratch buffer forwards or backwards. Index
// arithmetic over index juggling, minimal allocation: the same in-place-merge
// discipline the rest of this library favors.
package merge
