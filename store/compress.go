package store

import "github.com/go-dimval/dimval/box"

// Compress merges every pair of axis-k-adjacent, value-equal rows for
// v, repeatedly, to a fixed point.
func (s *Store[V]) Compress(v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compressValueLocked(v)
}

// CompressAll compresses every distinct value present in the store.
func (s *Store[V]) CompressAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.distinctValuesLocked() {
		s.compressValueLocked(v)
	}
}

// RecompressAll decomposes the store into its unique atomic tiling and
// recompresses, producing the canonical physical form used for
// equality comparisons of logical content.
func (s *Store[V]) RecompressAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	boxes := make([]box.Box, len(s.rows))
	for i, r := range s.rows {
		boxes[i] = r.Interval
	}
	atoms := box.UniqueDecomposition(boxes)

	atomRows := make([]*Row[V], 0, len(atoms))
	for _, a := range atoms {
		v, ok := findCoveringPtr(s.rows, a)
		if !ok {
			panicUnexpectedInterval("RecompressAll")
		}
		atomRows = append(atomRows, &Row[V]{Interval: a, Value: v})
	}

	for _, r := range append([]*Row[V](nil), s.rows...) {
		s.deleteRow(r)
	}
	for _, r := range atomRows {
		s.insertRow(r)
	}
	for _, v := range s.distinctValuesLocked() {
		s.compressValueLocked(v)
	}
}

func (s *Store[V]) distinctValuesLocked() []V {
	var out []V
	for _, r := range s.rows {
		found := false
		for _, v := range out {
			if s.equal(v, r.Value) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, r.Value)
		}
	}
	return out
}

// compressValueLocked runs the merge-to-fixed-point pass for v. Caller
// must hold the write lock.
func (s *Store[V]) compressValueLocked(v V) {
	for {
		rows := s.rowsWithValueLocked(v)
		merged := false
		for i := 0; i < len(rows) && !merged; i++ {
			for j := i + 1; j < len(rows); j++ {
				a, b := rows[i], rows[j]
				axis, ok := a.Interval.LeftAdjacentAxis(b.Interval)
				if !ok {
					axis, ok = b.Interval.LeftAdjacentAxis(a.Interval)
					if ok {
						a, b = b, a
					}
				}
				if !ok {
					continue
				}
				mergedDim, unionOK := a.Interval[axis].Union(b.Interval[axis])
				if !unionOK {
					panicUnexpectedInterval("compressValueLocked")
				}
				newInterval := append(box.Box(nil), a.Interval...)
				newInterval[axis] = mergedDim
				s.deleteRow(a)
				s.deleteRow(b)
				s.insertRow(&Row[V]{Interval: newInterval, Value: v})
				merged = true
				break
			}
		}
		if !merged {
			return
		}
	}
}

func (s *Store[V]) rowsWithValueLocked(v V) []*Row[V] {
	var out []*Row[V]
	for _, r := range s.rows {
		if s.equal(r.Value, v) {
			out = append(out, r)
		}
	}
	return out
}
