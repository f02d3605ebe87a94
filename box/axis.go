package box

import (
	"github.com/go-dimval/dimval/domain"
	"github.com/go-dimval/dimval/interval"
)

// Axis is the concrete generic implementation of Dim: one 1-D interval
// together with the domain that governs it.
type Axis[T any] struct {
	Dom domain.Value[T]
	Iv  interval.Interval[T]
}

// NewAxis wraps iv under dom as a Dim usable as one axis of a Box.
func NewAxis[T any](dom domain.Value[T], iv interval.Interval[T]) Dim {
	return Axis[T]{Dom: dom, Iv: iv}
}

// Point wraps the single-point interval at v as a Dim, for use as one
// axis of a box.Key lookup key.
func Point[T any](dom domain.Value[T], v T) Dim {
	return Axis[T]{Dom: dom, Iv: interval.Closed(v)}
}

func (a Axis[T]) other(d Dim) Axis[T] { return d.(Axis[T]) }

func (a Axis[T]) Equal(d Dim) bool {
	o := a.other(d)
	return interval.Equal(a.Dom, a.Iv, o.Iv)
}

func (a Axis[T]) Contains(d Dim) bool {
	o := a.other(d)
	return interval.ContainsInterval(a.Dom, a.Iv, o.Iv)
}

func (a Axis[T]) Intersects(d Dim) bool {
	o := a.other(d)
	return interval.Intersects(a.Dom, a.Iv, o.Iv)
}

func (a Axis[T]) Intersect(d Dim) (Dim, bool) {
	o := a.other(d)
	iv, ok := interval.Intersect(a.Dom, a.Iv, o.Iv)
	if !ok {
		return nil, false
	}
	return Axis[T]{Dom: a.Dom, Iv: iv}, true
}

func (a Axis[T]) Minus(d Dim) DimRemainder {
	o := a.other(d)
	r := interval.Minus(a.Dom, a.Iv, o.Iv)
	switch r.Kind {
	case interval.RemainderNone:
		return DimRemainder{Kind: DimRemainderNone}
	case interval.RemainderSingle:
		return DimRemainder{Kind: DimRemainderSingle, Left: Axis[T]{Dom: a.Dom, Iv: r.Left}}
	default:
		return DimRemainder{
			Kind:  DimRemainderSplit,
			Left:  Axis[T]{Dom: a.Dom, Iv: r.Left},
			Right: Axis[T]{Dom: a.Dom, Iv: r.Right},
		}
	}
}

func (a Axis[T]) IsLeftAdjacent(d Dim) bool {
	o := a.other(d)
	return interval.IsLeftAdjacent(a.Dom, a.Iv, o.Iv)
}

func (a Axis[T]) Gap(d Dim) (Dim, bool) {
	o := a.other(d)
	iv, ok := interval.Gap(a.Dom, a.Iv, o.Iv)
	if !ok {
		return nil, false
	}
	return Axis[T]{Dom: a.Dom, Iv: iv}, true
}

func (a Axis[T]) Union(d Dim) (Dim, bool) {
	o := a.other(d)
	iv, ok := interval.Union(a.Dom, a.Iv, o.Iv)
	if !ok {
		return nil, false
	}
	return Axis[T]{Dom: a.Dom, Iv: iv}, true
}

func (a Axis[T]) CompareStart(d Dim) int {
	o := a.other(d)
	c := interval.ComparePoints(a.Dom, a.Iv.Start, o.Iv.Start)
	if c != 0 {
		return c
	}
	return interval.ComparePoints(a.Dom, a.Iv.End, o.Iv.End)
}

func (a Axis[T]) StartPoint() Dim {
	return Axis[T]{Dom: a.Dom, Iv: interval.Interval[T]{Start: a.Iv.Start, End: a.Iv.Start}}
}

func (a Axis[T]) SuccessorOfEnd() Dim {
	p := interval.Successor(a.Dom, a.Iv.End)
	return Axis[T]{Dom: a.Dom, Iv: interval.Interval[T]{Start: p, End: p}}
}

func (a Axis[T]) PredecessorOfStart() Dim {
	p := interval.Predecessor(a.Dom, a.Iv.Start)
	return Axis[T]{Dom: a.Dom, Iv: interval.Interval[T]{Start: p, End: p}}
}

func (a Axis[T]) UpTo(boundary Dim) (Dim, bool) {
	o := a.other(boundary)
	end := interval.Predecessor(a.Dom, o.Iv.Start)
	if interval.ComparePoints(a.Dom, a.Iv.Start, end) > 0 {
		return nil, false
	}
	return Axis[T]{Dom: a.Dom, Iv: interval.Interval[T]{Start: a.Iv.Start, End: end}}, true
}

func (a Axis[T]) OrderedHashRange() (float64, float64) {
	return interval.OrderedHash(a.Dom, a.Iv.Start), interval.OrderedHash(a.Dom, a.Iv.End)
}

func (a Axis[T]) String() string { return a.Iv.String() }
