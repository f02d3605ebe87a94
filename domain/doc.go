// Package domain defines the abstract "discrete scalar" contract used on
// one axis of a dimval store, and ships the handful of concrete
// instantiations the rest of the library needs: signed 32-bit and 64-bit
// integers, arbitrary-precision integers, a wall-clock instant, a local
// calendar date, and a finite-enumeration adapter built from a caller
// supplied sequence.
//
// A Value[T] must be totally ordered and discrete: every element except
// the maximum has a successor, every element except the minimum has a
// predecessor, and OrderedHash maps the type monotonically onto float64
// purely for the benefit of the spatial index in package boxtree (the
// mapping need not be invertible).
//
// Implementations here never panic on valid input, and all but BigInt
// (whose Successor, Predecessor and OrderedHash allocate a new big.Int
// or big.Float) avoid allocating per call; the only way to misuse one
// is to pass a value outside
// [MinValue(), MaxValue()], which is a programmer error the caller is
// expected to avoid (mirrors the rest of this library: public operations
// on well-formed input are always total).
package domain
