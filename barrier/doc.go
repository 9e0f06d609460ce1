// Package barrier implements reusable N-thread rendezvous points.
//
// Both variants keep their mutable state in a pair of separate atomics — a
// spinning-arrival counter and an epoch, each padded onto its own cache
// line — and rely on the sequentially consistent ordering of sync/atomic
// rather than on any lock. The technique (an epoch word flipped or bumped
// by the last arrival, observed by every other arrival through a plain
// load-compare spin) is adapted from the header/epoch scheme in crow's
// Roundabout, generalized from a single packed header over a 32-lane ring
// log down to the two counters a barrier actually needs.
package barrier
