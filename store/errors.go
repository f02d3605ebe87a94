// Package store: sentinel error set. All public operations that can fail
// return one of these via errors.Is; nothing in this package panics on a
// caller-triggered condition except the unreachable-pattern guard below.
package store

import "errors"

var (
	// ErrDisjointnessViolation is returned when constructing a store under
	// RequireDisjoint from rows that are not pairwise disjoint.
	ErrDisjointnessViolation = errors.New("store: rows are not pairwise disjoint")

	// ErrKeyNotFound is returned by ReplaceByKey when no row starts at the
	// given key.
	ErrKeyNotFound = errors.New("store: no row at start-key")

	// ErrNoSingleValue is returned by Get when the store does not cover the
	// unbounded region with exactly one row.
	ErrNoSingleValue = errors.New("store: no single value covers the domain")
)

// panicUnexpectedInterval marks an unreachable branch during a case
// match over an interval.Remainder/box.DimRemainder kind: this
// indicates a programmer error in this package, not a caller mistake,
// so it panics rather than returning an error.
func panicUnexpectedInterval(where string) {
	panic("store: unexpected interval pattern in " + where)
}
