package interval

import (
	"sort"

	"github.com/go-dimval/dimval/domain"
)

// Sort orders ivs by Start ascending, End ascending as a tiebreak, in
// place.
func Sort[T any](dom domain.Value[T], ivs []Interval[T]) {
	sort.Slice(ivs, func(i, j int) bool {
		c := ComparePoints(dom, ivs[i].Start, ivs[j].Start)
		if c != 0 {
			return c < 0
		}
		return ComparePoints(dom, ivs[i].End, ivs[j].End) < 0
	})
}

// IsDisjoint reports whether every pair in ivs shares no point. O(n log n).
func IsDisjoint[T any](dom domain.Value[T], ivs []Interval[T]) bool {
	if len(ivs) < 2 {
		return true
	}
	sorted := append([]Interval[T](nil), ivs...)
	Sort(dom, sorted)
	for i := 1; i < len(sorted); i++ {
		if ComparePoints(dom, sorted[i-1].End, sorted[i].Start) >= 0 {
			return false
		}
	}
	return true
}

// Labeled pairs an interval with an arbitrary comparable value, the unit
// IsCompressible and Compress operate over: a sequence of rows, each
// carrying a value to compare for merge eligibility.
type Labeled[T any, V comparable] struct {
	Interval Interval[T]
	Value    V
}

// IsCompressible reports whether items contains at least one pair that
// is adjacent-or-overlapping and carries an equal value.
func IsCompressible[T any, V comparable](dom domain.Value[T], items []Labeled[T, V]) bool {
	sorted := append([]Labeled[T, V](nil), items...)
	sort.Slice(sorted, func(i, j int) bool {
		return ComparePoints(dom, sorted[i].Interval.Start, sorted[j].Interval.Start) < 0
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.Value != cur.Value {
			continue
		}
		if Intersects(dom, prev.Interval, cur.Interval) || IsLeftAdjacent(dom, prev.Interval, cur.Interval) {
			return true
		}
	}
	return false
}

// Compress repeatedly merges adjacent-or-overlapping same-value pairs in
// items until a fixed point, returning the merged, sorted result.
func Compress[T any, V comparable](dom domain.Value[T], items []Labeled[T, V]) []Labeled[T, V] {
	cur := append([]Labeled[T, V](nil), items...)
	for {
		sort.Slice(cur, func(i, j int) bool {
			return ComparePoints(dom, cur[i].Interval.Start, cur[j].Interval.Start) < 0
		})
		merged := false
		out := make([]Labeled[T, V], 0, len(cur))
		for i := 0; i < len(cur); i++ {
			if i+1 < len(cur) {
				a, b := cur[i], cur[i+1]
				if a.Value == b.Value && (Intersects(dom, a.Interval, b.Interval) || IsLeftAdjacent(dom, a.Interval, b.Interval)) {
					u, ok := Union(dom, a.Interval, b.Interval)
					if ok {
						out = append(out, Labeled[T, V]{Interval: u, Value: a.Value})
						i++
						merged = true
						continue
					}
				}
			}
			out = append(out, cur[i])
		}
		cur = out
		if !merged {
			return cur
		}
	}
}

// Complement returns the gaps inside the unbounded interval left by a
// disjoint list ivs, including the two half-open tails when ivs does not
// touch Bottom/Top.
func Complement[T any](dom domain.Value[T], ivs []Interval[T]) []Interval[T] {
	sorted := append([]Interval[T](nil), ivs...)
	Sort(dom, sorted)

	var result []Interval[T]
	cursor := Bottom[T]()
	for _, iv := range sorted {
		if ComparePoints(dom, cursor, iv.Start) < 0 {
			gapEnd := Predecessor(dom, iv.Start)
			if ComparePoints(dom, cursor, gapEnd) <= 0 {
				result = append(result, Interval[T]{Start: cursor, End: gapEnd})
			}
		}
		next := Successor(dom, iv.End)
		if ComparePoints(dom, next, cursor) > 0 {
			cursor = next
		}
	}
	if ComparePoints(dom, cursor, Top[T]()) < 0 {
		result = append(result, Interval[T]{Start: cursor, End: Top[T]()})
	}
	return result
}

// UniqueIntervals computes the minimum-cardinality disjoint set of
// "atomic" intervals whose union equals the union of ivs: it collects
// every distinct start and every distinct end.successor, sorts them,
// and emits the candidate intervals between consecutive boundary
// points that are covered by at least one input interval. Idempotent.
func UniqueIntervals[T any](dom domain.Value[T], ivs []Interval[T]) []Interval[T] {
	if len(ivs) == 0 {
		return nil
	}
	pts := make([]Point[T], 0, len(ivs)*2)
	for _, iv := range ivs {
		pts = append(pts, iv.Start, Successor(dom, iv.End))
	}
	sort.Slice(pts, func(i, j int) bool { return ComparePoints(dom, pts[i], pts[j]) < 0 })

	dedup := pts[:0:0]
	for i, p := range pts {
		if i == 0 || ComparePoints(dom, dedup[len(dedup)-1], p) != 0 {
			dedup = append(dedup, p)
		}
	}

	var atoms []Interval[T]
	for i := 0; i+1 < len(dedup); i++ {
		start := dedup[i]
		end := Predecessor(dom, dedup[i+1])
		if ComparePoints(dom, start, end) > 0 {
			continue
		}
		candidate := Interval[T]{Start: start, End: end}
		for _, iv := range ivs {
			if ContainsInterval(dom, iv, candidate) {
				atoms = append(atoms, candidate)
				break
			}
		}
	}
	return atoms
}
