// Package box lifts the 1-D interval algebra of package interval to N
// dimensions. A Box is a fixed-arity tuple of per-axis intervals, each
// axis type-erased behind the Dim interface so that a single Box can mix
// axes of different concrete domain types (an int axis next to a
// time.Time axis, say) — something a plain Go generic type parameter
// cannot express for a heterogeneous tuple. Axis[T] is the one concrete
// implementation of Dim, a thin generic adapter over interval.Interval[T]
// plus the domain.Value[T] that governs it.
//
// The Box-level predicates and Intersect (Contains, Intersects,
// Intersect) are pointwise across axes: empty/false on any axis makes
// the whole Box result empty/false.
//
// Subtract implements generic N-D "remainder tiling": given an overlap
// box O and the sub-box X to carve out of it, Subtract(O, X) returns
// a set of axis-aligned boxes that exactly tile O \ X. It peels one
// axis at a time, from the last to the first, emitting the 0/1/2
// pieces interval.Minus leaves on that axis and then narrowing that
// axis to X's extent, so a 2-D hole yields four pieces. This works
// uniformly in any dimension, as a single axis-index loop with no
// per-axis-count branching.
package box
