// Package mvstore implements the multi-value store: a
// store.Store[Set[V]] where every cell's payload is a set of values
// rather than a single one, plus the three set-specific mutators
// (AddOne, RemoveOne, MergeOne) that lift store.Store's row-level API
// to per-element membership.
//
// Go has no built-in Set type, so the payload is map[V]struct{} —
// store.Store compares payloads with reflect.DeepEqual by default,
// which compares maps element-by-element, so compression and diffing
// behave exactly as they do for any other comparable value type.
package mvstore
