package interval

import "github.com/go-dimval/dimval/domain"

// IsLeftAdjacent reports whether a immediately precedes b: a.End's
// successor equals b.Start. Per the domain-extrema edge policy, an
// interval ending at Top is never left-adjacent to anything (successor
// of Top is Top, and Top never equals a finite or Bottom start).
func IsLeftAdjacent[T any](dom domain.Value[T], a, b Interval[T]) bool {
	return ComparePoints(dom, Successor(dom, a.End), b.Start) == 0
}

// Intersect returns a ∩ b when the two intervals overlap.
func Intersect[T any](dom domain.Value[T], a, b Interval[T]) (Interval[T], bool) {
	start := MaxPoint(dom, a.Start, b.Start)
	end := MinPoint(dom, a.End, b.End)
	if ComparePoints(dom, start, end) > 0 {
		return Interval[T]{}, false
	}
	return Interval[T]{Start: start, End: end}, true
}

// Intersects reports whether a and b share at least one point.
func Intersects[T any](dom domain.Value[T], a, b Interval[T]) bool {
	_, ok := Intersect(dom, a, b)
	return ok
}

// RemainderKind discriminates the shape of a Minus result.
type RemainderKind uint8

const (
	// RemainderNone means a ⊆ b: nothing of a survives.
	RemainderNone RemainderKind = iota
	// RemainderSingle means exactly one contiguous remainder survives
	// (b touched at most one side of a, or missed it entirely).
	RemainderSingle
	// RemainderSplit means b was strictly interior to a, leaving two
	// disjoint remainders.
	RemainderSplit
)

// Remainder is the result of Minus: a \ b.
type Remainder[T any] struct {
	Kind  RemainderKind
	Left  Interval[T] // valid when Kind is RemainderSingle or RemainderSplit
	Right Interval[T] // valid only when Kind is RemainderSplit
}

// Minus computes a \ b. When b does not intersect a at all, the whole of
// a survives as a single remainder (this is the total completion of the
// contract for inputs outside the three named cases, which all assume
// some overlap).
func Minus[T any](dom domain.Value[T], a, b Interval[T]) Remainder[T] {
	ia, ok := Intersect(dom, a, b)
	if !ok {
		return Remainder[T]{Kind: RemainderSingle, Left: a}
	}
	startEq := ComparePoints(dom, a.Start, ia.Start) == 0
	endEq := ComparePoints(dom, a.End, ia.End) == 0
	switch {
	case startEq && endEq:
		return Remainder[T]{Kind: RemainderNone}
	case startEq && !endEq:
		left, _ := New(dom, Successor(dom, ia.End), a.End)
		return Remainder[T]{Kind: RemainderSingle, Left: left}
	case !startEq && endEq:
		left, _ := New(dom, a.Start, Predecessor(dom, ia.Start))
		return Remainder[T]{Kind: RemainderSingle, Left: left}
	default:
		left, _ := New(dom, a.Start, Predecessor(dom, ia.Start))
		right, _ := New(dom, Successor(dom, ia.End), a.End)
		return Remainder[T]{Kind: RemainderSplit, Left: left, Right: right}
	}
}

// Gap returns the interval strictly between a and b when they are
// disjoint and not adjacent, in either order.
func Gap[T any](dom domain.Value[T], a, b Interval[T]) (Interval[T], bool) {
	lo, hi := a, b
	if ComparePoints(dom, a.Start, b.Start) > 0 {
		lo, hi = b, a
	}
	if ComparePoints(dom, lo.End, hi.Start) >= 0 {
		return Interval[T]{}, false // overlapping
	}
	if IsLeftAdjacent(dom, lo, hi) {
		return Interval[T]{}, false // touching, no gap
	}
	start := Successor(dom, lo.End)
	end := Predecessor(dom, hi.Start)
	return Interval[T]{Start: start, End: end}, true
}

// Union returns a ∪ b when they intersect or are adjacent (in either
// order); otherwise ok is false, since the union of two disjoint,
// non-adjacent intervals is not itself a single interval.
func Union[T any](dom domain.Value[T], a, b Interval[T]) (Interval[T], bool) {
	if !Intersects(dom, a, b) && !IsLeftAdjacent(dom, a, b) && !IsLeftAdjacent(dom, b, a) {
		return Interval[T]{}, false
	}
	return Interval[T]{
		Start: MinPoint(dom, a.Start, b.Start),
		End:   MaxPoint(dom, a.End, b.End),
	}, true
}
