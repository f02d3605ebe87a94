package store

import (
	"errors"

	"github.com/go-dimval/dimval/box"
)

var (
	// ErrInvalidDimension is returned by GetByDimensionIndex when k is
	// outside [0, arity).
	ErrInvalidDimension = errors.New("store: dimension index out of range")

	// ErrInvalidPermutation is returned by Flip when perm is not a
	// permutation of [0, arity).
	ErrInvalidPermutation = errors.New("store: not a permutation of the store's axes")
)

// GetByDimensionIndex projects the store onto axis k: every row whose
// k'th axis interval contains point v is kept, axis k is dropped from
// its box, and the result is recompressed so the projection is in
// canonical atomic form. point must be a single-axis box holding the
// value to project at (the domain and concrete axis type of axis k).
//
// This commutes with GetAt: for any region q of arity one less than s,
// out.GetAt(q) equals s.GetAt(q.insertAt(k, v)) wherever the latter is
// defined, since every row kept in out covers exactly the slice of its
// source row's region at v.
func (s *Store[V]) GetByDimensionIndex(k int, point box.Dim) (*Store[V], error) {
	s.mu.RLock()
	full := s.full
	flags := s.flags
	rows := make([]Row[V], len(s.rows))
	for i, r := range s.rows {
		rows[i] = *r
	}
	s.mu.RUnlock()

	if k < 0 || k >= len(full) {
		return nil, ErrInvalidDimension
	}

	projectedFull := dropAxis(full, k)
	out, err := New[V](projectedFull, WithFlags[V](flags), WithEqual[V](s.equal))
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if !r.Interval[k].Contains(point) {
			continue
		}
		out.Set(Row[V]{Interval: dropAxis(r.Interval, k), Value: r.Value})
	}
	out.RecompressAll()
	return out, nil
}

// dropAxis returns b with axis k removed.
func dropAxis(b box.Box, k int) box.Box {
	out := make(box.Box, 0, len(b)-1)
	out = append(out, b[:k]...)
	out = append(out, b[k+1:]...)
	return out
}

// Flip returns a new store with the same rows, axes reordered
// according to perm: the axis at position perm[i] in s becomes the
// axis at position i in the result. perm must be a permutation of
// [0, arity) or Flip returns ErrInvalidPermutation.
func (s *Store[V]) Flip(perm []int) (*Store[V], error) {
	s.mu.RLock()
	full := s.full
	flags := s.flags
	rows := make([]Row[V], len(s.rows))
	for i, r := range s.rows {
		rows[i] = *r
	}
	s.mu.RUnlock()

	if !isPermutation(perm, len(full)) {
		return nil, ErrInvalidPermutation
	}

	out, err := New[V](permuteBox(full, perm), WithFlags[V](flags), WithEqual[V](s.equal))
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out.Set(Row[V]{Interval: permuteBox(r.Interval, perm), Value: r.Value})
	}
	out.RecompressAll()
	return out, nil
}

// permuteBox returns a box with axis i taken from b[perm[i]].
func permuteBox(b box.Box, perm []int) box.Box {
	out := make(box.Box, len(perm))
	for i, p := range perm {
		out[i] = b[p]
	}
	return out
}

// isPermutation reports whether perm is exactly a reordering of
// [0, n).
func isPermutation(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
