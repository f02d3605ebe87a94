package interval

import (
	"fmt"
	"math"

	"github.com/go-dimval/dimval/domain"
)

// Bound discriminates the three states of a Point.
type Bound uint8

const (
	// BoundBottom is the sentinel below every finite value.
	BoundBottom Bound = iota
	// BoundAt is a finite, concrete domain value.
	BoundAt
	// BoundTop is the sentinel above every finite value.
	BoundTop
)

// Point is a domain value extended with the sentinels Bottom and Top, so
// that Bottom < At(v) < Top for every v. It totally orders an interval
// endpoint the same way whether or not that endpoint is finite.
type Point[T any] struct {
	Bound Bound
	Value T // meaningful only when Bound == BoundAt
}

// Bottom constructs the sentinel below every finite value.
func Bottom[T any]() Point[T] { return Point[T]{Bound: BoundBottom} }

// Top constructs the sentinel above every finite value.
func Top[T any]() Point[T] { return Point[T]{Bound: BoundTop} }

// At constructs a finite point at v.
func At[T any](v T) Point[T] { return Point[T]{Bound: BoundAt, Value: v} }

// ComparePoints totally orders two points under dom: Bottom < At(v) <
// Top for all v, and At(a) vs At(b) falls back to dom.Compare.
func ComparePoints[T any](dom domain.Value[T], a, b Point[T]) int {
	if a.Bound != b.Bound {
		return int(a.Bound) - int(b.Bound)
	}
	if a.Bound == BoundAt {
		return dom.Compare(a.Value, b.Value)
	}
	return 0
}

// Successor is the total successor function lifted to points:
//
//	Bottom.successor        = At(MinValue())
//	At(MaxValue()).successor = Top
//	At(v).successor          = At(dom.Successor(v)) otherwise
//	Top.successor            = Top
func Successor[T any](dom domain.Value[T], p Point[T]) Point[T] {
	switch p.Bound {
	case BoundBottom:
		return At(dom.MinValue())
	case BoundTop:
		return Top[T]()
	default:
		next, ok := dom.Successor(p.Value)
		if !ok {
			return Top[T]()
		}
		return At(next)
	}
}

// Predecessor is the total predecessor function lifted to points:
//
//	Top.predecessor          = At(MaxValue())
//	At(MinValue()).predecessor = Bottom
//	At(v).predecessor        = At(dom.Predecessor(v)) otherwise
//	Bottom.predecessor       = Bottom
func Predecessor[T any](dom domain.Value[T], p Point[T]) Point[T] {
	switch p.Bound {
	case BoundTop:
		return At(dom.MaxValue())
	case BoundBottom:
		return Bottom[T]()
	default:
		prev, ok := dom.Predecessor(p.Value)
		if !ok {
			return Bottom[T]()
		}
		return At(prev)
	}
}

// OrderedHash maps a point onto the extended real line: Bottom = -Inf,
// Top = +Inf, At(v) = dom.OrderedHash(v). Used only by the spatial
// index in package boxtree.
func OrderedHash[T any](dom domain.Value[T], p Point[T]) float64 {
	switch p.Bound {
	case BoundBottom:
		return math.Inf(-1)
	case BoundTop:
		return math.Inf(1)
	default:
		return dom.OrderedHash(p.Value)
	}
}

// MinPoint and MaxPoint return whichever of a, b orders first/last under dom.
func MinPoint[T any](dom domain.Value[T], a, b Point[T]) Point[T] {
	if ComparePoints(dom, a, b) <= 0 {
		return a
	}
	return b
}

func MaxPoint[T any](dom domain.Value[T], a, b Point[T]) Point[T] {
	if ComparePoints(dom, a, b) >= 0 {
		return a
	}
	return b
}

// String renders the point using the stringer on Value when BoundAt,
// or the sentinel glyphs otherwise.
func (p Point[T]) String() string {
	switch p.Bound {
	case BoundBottom:
		return "-∞"
	case BoundTop:
		return "+∞"
	default:
		return fmt.Sprintf("%v", p.Value)
	}
}
