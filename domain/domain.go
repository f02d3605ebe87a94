package domain

// Value abstracts the scalar type carried by one axis of a store. T is
// the concrete Go type of the axis (int32, int64, *big.Int, time.Time,
// Date, or a caller type wrapped by Enum[T]).
//
// Compare returns a negative, zero, or positive int following the usual
// three-way comparison convention. Successor and Predecessor report
// ok=false exactly at MaxValue and MinValue respectively, per the
// contract's edge policy; the returned T is meaningless when ok is
// false and callers must not use it.
type Value[T any] interface {
	// MinValue is the smallest representable element (inclusive).
	MinValue() T
	// MaxValue is the largest representable element (inclusive).
	MaxValue() T
	// Successor returns the next element after v, or ok=false iff
	// v equals MaxValue().
	Successor(v T) (next T, ok bool)
	// Predecessor returns the element before v, or ok=false iff
	// v equals MinValue().
	Predecessor(v T) (prev T, ok bool)
	// OrderedHash maps v onto float64, preserving order but not
	// necessarily invertible. Used only by the spatial index.
	OrderedHash(v T) float64
	// Compare reports the order of a relative to b.
	Compare(a, b T) int
}
