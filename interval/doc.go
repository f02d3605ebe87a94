// Package interval implements the 1-D interval algebra over a domain
// value: the tagged Bottom | At(v) | Top domain point, the bounded
// Interval built from two such points, and the pure total operations on
// them (intersection, union, set difference with split remainder, gap,
// adjacency, and the sort/disjoint/compress/complement/unique-intervals
// collection operations).
//
// Every exported function takes the governing domain.Value[T] explicitly
// rather than storing it on the type, so a zero-value Interval[T] is
// always safe to construct and compare: small, explicit, no-hidden-state
// value types over types that capture ambient configuration.
//
// All operations here are total for well-formed input: none of them
// fail, because the sentinel Bottom/Top bounds make complement, gap, and
// adjacency branch-free even at the domain extrema — the algebra never
// needs a separate infinite type per axis. Interval construction is the
// sole place that can fail, via ErrEmptyInterval, when start > end.
package interval
