package interval

import (
	"fmt"

	"github.com/go-dimval/dimval/domain"
)

// Interval is a bounded 1-D interval [Start, End] of domain points, with
// Start <= End enforced at construction by New.
type Interval[T any] struct {
	Start Point[T]
	End   Point[T]
}

// New constructs an Interval, rejecting start > end with
// ErrEmptyInterval.
func New[T any](dom domain.Value[T], start, end Point[T]) (Interval[T], error) {
	if ComparePoints(dom, start, end) > 0 {
		return Interval[T]{}, ErrEmptyInterval
	}
	return Interval[T]{Start: start, End: end}, nil
}

// Unbounded is the interval covering the entire domain, (-∞..+∞).
func Unbounded[T any]() Interval[T] { return Interval[T]{Start: Bottom[T](), End: Top[T]()} }

// To is the interval (-∞..v].
func To[T any](v T) Interval[T] { return Interval[T]{Start: Bottom[T](), End: At(v)} }

// From is the interval [v..+∞).
func From[T any](v T) Interval[T] { return Interval[T]{Start: At(v), End: Top[T]()} }

// Closed is the single-point interval [v..v].
func Closed[T any](v T) Interval[T] { return Interval[T]{Start: At(v), End: At(v)} }

// Between is the interval [a..b]. Panics if a > b under dom: callers who
// cannot guarantee ordering should use New instead.
func Between[T any](dom domain.Value[T], a, b T) Interval[T] {
	iv, err := New(dom, At(a), At(b))
	if err != nil {
		panic(err)
	}
	return iv
}

// Contains reports whether p lies within iv (inclusive of both bounds).
func Contains[T any](dom domain.Value[T], iv Interval[T], p Point[T]) bool {
	return ComparePoints(dom, iv.Start, p) <= 0 && ComparePoints(dom, p, iv.End) <= 0
}

// ContainsInterval reports whether inner is a subset of outer.
func ContainsInterval[T any](dom domain.Value[T], outer, inner Interval[T]) bool {
	return ComparePoints(dom, outer.Start, inner.Start) <= 0 && ComparePoints(dom, inner.End, outer.End) <= 0
}

// Equal reports whether a and b describe the same set of points.
func Equal[T any](dom domain.Value[T], a, b Interval[T]) bool {
	return ComparePoints(dom, a.Start, b.Start) == 0 && ComparePoints(dom, a.End, b.End) == 0
}

// String renders the interval using its literal forms: (-∞..v],
// [v..+∞), [a..b].
func (iv Interval[T]) String() string {
	left := "["
	if iv.Start.Bound == BoundBottom {
		left = "("
	}
	right := "]"
	if iv.End.Bound == BoundTop {
		right = ")"
	}
	return fmt.Sprintf("%s%s..%s%s", left, iv.Start.String(), iv.End.String(), right)
}
