// Package factory constructs Barrier and TaskQueue instances from symbolic
// tags. Unknown tags return a nil value rather than panicking — the same
// strategy-enum-to-constructor dispatch Geek0x0-pdf's AdaptiveSorter uses to
// pick a sort strategy by name, applied here to barrier/queue variants.
package factory
