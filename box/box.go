package box

import "strings"

// Box is a fixed-arity tuple of axes. All rows in one store.Store share
// the same arity and, per axis index, the same concrete Dim
// implementation (i.e. the same domain type on that axis).
type Box []Dim

// Key is a Box every axis of which is a degenerate single-point
// interval, used as a lookup key (an N-D domain point).
type Key = Box

// Arity returns the number of axes.
func (b Box) Arity() int { return len(b) }

// Equal reports whether a and b describe the same region, axis by axis.
func (b Box) Equal(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether o is a subset of b on every axis.
func (b Box) Contains(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Contains(o[i]) {
			return false
		}
	}
	return true
}

// Intersects reports whether b and o overlap on every axis.
func (b Box) Intersects(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Intersects(o[i]) {
			return false
		}
	}
	return true
}

// Intersect returns the pointwise overlap of b and o, or ok=false if
// they fail to overlap on any axis.
func (b Box) Intersect(o Box) (Box, bool) {
	if len(b) != len(o) {
		return nil, false
	}
	out := make(Box, len(b))
	for i := range b {
		d, ok := b[i].Intersect(o[i])
		if !ok {
			return nil, false
		}
		out[i] = d
	}
	return out, true
}

// CompareStart totally orders boxes lexicographically by per-axis start
// (then end as a tiebreak), for the by-start ordered structure in
// package store.
func (b Box) CompareStart(o Box) int {
	for i := range b {
		if c := b[i].CompareStart(o[i]); c != 0 {
			return c
		}
	}
	return 0
}

// LeftAdjacentAxis reports the unique axis on which b and o are
// left-adjacent while being equal on every other axis: adjacent on one
// axis and equal on all others is what makes two N-D boxes adjacent.
// ok is false when no such single axis exists (including when b and o
// are equal everywhere, which is not itself "adjacent").
func (b Box) LeftAdjacentAxis(o Box) (axis int, ok bool) {
	if len(b) != len(o) {
		return -1, false
	}
	found := -1
	for i := range b {
		if b[i].Equal(o[i]) {
			continue
		}
		if found != -1 {
			return -1, false
		}
		if !b[i].IsLeftAdjacent(o[i]) {
			return -1, false
		}
		found = i
	}
	if found == -1 {
		return -1, false
	}
	return found, true
}

// String renders the box as "{i1, i2, ...}" for arity > 1, or the bare
// interval string for arity 1.
func (b Box) String() string {
	if len(b) == 1 {
		return b[0].String()
	}
	parts := make([]string, len(b))
	for i, d := range b {
		parts[i] = d.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Subtract tiles o \ x with axis-aligned boxes, the generic remainder
// algorithm behind region carving. It peels axes from the last index
// down to the first: at axis k, it splits the not-yet-narrowed extent
// of o on that axis by x's extent (via interval.Minus), emits one box
// per remainder piece — with every axis above k (already peeled)
// pinned to x's extent and every axis at or below k (not yet peeled)
// left at o's full extent — and then narrows axis k to x's extent
// before moving to axis k-1. After all axes are peeled, the narrowed
// box equals x itself, which Subtract does not emit (the caller adds
// the replacement row for x separately). Any consistent peel order
// tiles the same point set; this one is canonical here. x must
// satisfy o.Contains(x).
func Subtract(o, x Box) []Box {
	n := len(o)
	remaining := append(Box(nil), o...)
	var results []Box
	for k := n - 1; k >= 0; k-- {
		var pieces []Dim
		switch rem := remaining[k].Minus(x[k]); rem.Kind {
		case DimRemainderSingle:
			pieces = append(pieces, rem.Left)
		case DimRemainderSplit:
			pieces = append(pieces, rem.Left, rem.Right)
		}
		for _, p := range pieces {
			cur := append(Box(nil), remaining...)
			cur[k] = p
			results = append(results, cur)
		}
		remaining[k] = x[k]
	}
	return results
}

// PairwiseDisjoint reports whether every pair of boxes in the slice
// fails to intersect, used by package store to validate
// Flags.RequireDisjoint at construction.
func PairwiseDisjoint(boxes []Box) bool {
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Intersects(boxes[j]) {
				return false
			}
		}
	}
	return true
}

// UniqueDecomposition computes the N-D atomic decomposition of boxes:
// the per-axis unique_intervals set, Cartesian-producted, filtered to
// cells contained in at least one input box.
func UniqueDecomposition(boxes []Box) []Box {
	if len(boxes) == 0 {
		return nil
	}
	n := len(boxes[0])
	axisAtoms := make([][]Dim, n)
	for k := 0; k < n; k++ {
		dims := make([]Dim, len(boxes))
		for i, b := range boxes {
			dims[i] = b[k]
		}
		axisAtoms[k] = uniqueAxisIntervals(dims)
	}

	var results []Box
	idx := make([]int, n)
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			cur := make(Box, n)
			for i := 0; i < n; i++ {
				cur[i] = axisAtoms[i][idx[i]]
			}
			for _, b := range boxes {
				if b.Contains(cur) {
					results = append(results, cur)
					return
				}
			}
			return
		}
		for i := range axisAtoms[k] {
			idx[k] = i
			rec(k + 1)
		}
	}
	rec(0)
	return results
}

// uniqueAxisIntervals is the per-axis unique_intervals sweep, expressed
// purely in terms of Dim so it works for any concrete axis type.
func uniqueAxisIntervals(dims []Dim) []Dim {
	if len(dims) == 0 {
		return nil
	}
	var pts []Dim
	for _, d := range dims {
		pts = append(pts, d.StartPoint(), d.SuccessorOfEnd())
	}
	// insertion sort by CompareStart; n is small (2 * len(dims)).
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && pts[j-1].CompareStart(pts[j]) > 0; j-- {
			pts[j-1], pts[j] = pts[j], pts[j-1]
		}
	}
	dedup := pts[:0:0]
	for i, p := range pts {
		if i == 0 || dedup[len(dedup)-1].CompareStart(p) != 0 {
			dedup = append(dedup, p)
		}
	}

	var atoms []Dim
	for i := 0; i+1 < len(dedup); i++ {
		candidate, ok := dedup[i].UpTo(dedup[i+1])
		if !ok {
			continue
		}
		for _, d := range dims {
			if d.Contains(candidate) {
				atoms = append(atoms, candidate)
				break
			}
		}
	}
	return atoms
}
