package store

import "github.com/go-dimval/dimval/box"

// Set replaces whatever is valid within row.Interval with row.Value,
// including area not previously covered by any row.
func (s *Store[V]) Set(row Row[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior := s.collectIntersecting(row.Interval)
	uncovered := s.uncoveredRegions(row.Interval, prior)
	s.updateOrRemove(row.Interval, prior, func(V) (V, bool) { return row.Value, true })
	for _, u := range uncovered {
		s.insertRow(&Row[V]{Interval: u, Value: row.Value})
	}
	s.compressValueLocked(row.Value)
}

// SetIfNoConflict sets row only if no existing row intersects
// row.Interval, reporting whether it did so.
func (s *Store[V]) SetIfNoConflict(row Row[V]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.collectIntersecting(row.Interval)) > 0 {
		return false
	}
	s.insertRow(&Row[V]{Interval: row.Interval, Value: row.Value})
	return true
}

// Update restricts existing rows overlapping row.Interval to take
// row.Value; it never creates validity over previously-uncovered area.
func (s *Store[V]) Update(row Row[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior := s.collectIntersecting(row.Interval)
	s.updateOrRemove(row.Interval, prior, func(V) (V, bool) { return row.Value, true })
}

// Remove deletes validity over region, carving overlapping rows.
func (s *Store[V]) Remove(region box.Box) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior := s.collectIntersecting(region)
	s.updateOrRemove(region, prior, nil)
}

// UpdateFunc is the general form of the update-or-remove engine:
// f(old) computes each overlapping row's new value, or reports
// keep=false to delete it with no replacement. Update and
// Remove are both degenerate cases of this (a constant function, and
// nil respectively); it is exposed directly for mvstore, whose
// AddOne/RemoveOne need to transform each row's existing set rather
// than replace it with a constant.
func (s *Store[V]) UpdateFunc(region box.Box, f func(old V) (v V, keep bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior := s.collectIntersecting(region)
	s.updateOrRemove(region, prior, f)
}

// Fill sets row.Value only on the sub-region of row.Interval not
// already covered by some existing row.
func (s *Store[V]) Fill(row Row[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior := s.collectIntersecting(row.Interval)
	uncovered := s.uncoveredRegions(row.Interval, prior)
	for _, u := range uncovered {
		s.insertRow(&Row[V]{Interval: u, Value: row.Value})
	}
	if len(uncovered) > 0 {
		s.compressValueLocked(row.Value)
	}
}

// Replace removes old and sets new, failing with ErrKeyNotFound if no
// row equal to old is present.
func (s *Store[V]) Replace(old, replacement Row[V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, r := range s.rows {
		if r.Interval.Equal(old.Interval) && s.equal(r.Value, old.Value) {
			found = true
			break
		}
	}
	if !found {
		return ErrKeyNotFound
	}
	prior := s.collectIntersecting(old.Interval)
	s.updateOrRemove(old.Interval, prior, nil)

	prior2 := s.collectIntersecting(replacement.Interval)
	uncovered := s.uncoveredRegions(replacement.Interval, prior2)
	s.updateOrRemove(replacement.Interval, prior2, func(V) (V, bool) { return replacement.Value, true })
	for _, u := range uncovered {
		s.insertRow(&Row[V]{Interval: u, Value: replacement.Value})
	}
	s.compressValueLocked(replacement.Value)
	return nil
}

// ReplaceByKey replaces the row whose start-tuple equals key, failing
// with ErrKeyNotFound if none exists.
func (s *Store[V]) ReplaceByKey(key box.Box, replacement Row[V]) error {
	s.mu.Lock()
	var target *Row[V]
	for _, r := range s.rows {
		if startKeyEqual(r.Interval, key) {
			target = r
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return ErrKeyNotFound
	}
	old := *target
	s.mu.Unlock()

	s.Remove(old.Interval)
	s.Set(replacement)
	return nil
}

// Merge returns a new store covering the union of s's and other's
// validity, resolving overlaps with f(selfValue, otherValue).
func (s *Store[V]) Merge(other *Store[V], f func(a, b V) V) *Store[V] {
	s.mu.RLock()
	other.mu.RLock()
	selfBoxes := rowBoxesOfPtrs(s.rows)
	otherBoxes := rowBoxesOfPtrs(other.rows)
	selfRows := append([]*Row[V](nil), s.rows...)
	otherRows := append([]*Row[V](nil), other.rows...)
	s.mu.RUnlock()
	other.mu.RUnlock()

	atoms := box.UniqueDecomposition(append(append([]box.Box(nil), selfBoxes...), otherBoxes...))
	out, _ := New[V](s.full, WithFlags[V](s.flags), WithEqual(s.equal))
	for _, atom := range atoms {
		va, oka := findCoveringPtr(selfRows, atom)
		vb, okb := findCoveringPtr(otherRows, atom)
		switch {
		case oka && okb:
			out.Set(Row[V]{Interval: atom, Value: f(va, vb)})
		case oka:
			out.Set(Row[V]{Interval: atom, Value: va})
		case okb:
			out.Set(Row[V]{Interval: atom, Value: vb})
		}
	}
	out.RecompressAll()
	return out
}

func findCoveringPtr[V any](rows []*Row[V], atom box.Box) (V, bool) {
	for _, r := range rows {
		if r.Interval.Contains(atom) {
			return r.Value, true
		}
	}
	var zero V
	return zero, false
}

func rowBoxesOfPtrs[V any](rows []*Row[V]) []box.Box {
	out := make([]box.Box, len(rows))
	for i, r := range rows {
		out[i] = r.Interval
	}
	return out
}

func startKeyEqual(a, b box.Box) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].StartPoint().Equal(b[i].StartPoint()) {
			return false
		}
	}
	return true
}

// updateOrRemove is the generic remainder-tiling mutation engine.
// prior must already be the rows intersecting region, sorted by start
// ascending. Caller must hold the write lock.
func (s *Store[V]) updateOrRemove(region box.Box, prior []*Row[V], update func(V) (V, bool)) {
	var touched []V
	appendTouched := func(v V) {
		for _, t := range touched {
			if s.equal(t, v) {
				return
			}
		}
		touched = append(touched, v)
	}
	for _, r := range prior {
		x, ok := r.Interval.Intersect(region)
		if !ok {
			continue
		}
		pieces := box.Subtract(r.Interval, x)
		s.deleteRow(r)
		for _, p := range pieces {
			s.insertRow(&Row[V]{Interval: p, Value: r.Value})
		}
		appendTouched(r.Value)
		if update != nil {
			if v2, keep := update(r.Value); keep {
				s.insertRow(&Row[V]{Interval: x, Value: v2})
				appendTouched(v2)
			}
		}
	}
	for _, v := range touched {
		s.compressValueLocked(v)
	}
}

// uncoveredRegions returns the sub-regions of region not covered by any
// row in prior, tiled as atomic boxes. Caller must hold at least the
// read lock (or the write lock, during a mutator).
func (s *Store[V]) uncoveredRegions(region box.Box, prior []*Row[V]) []box.Box {
	if len(prior) == 0 {
		return []box.Box{region}
	}
	boxes := make([]box.Box, 0, len(prior)+1)
	boxes = append(boxes, region)
	for _, r := range prior {
		boxes = append(boxes, r.Interval)
	}
	atoms := box.UniqueDecomposition(boxes)
	var out []box.Box
	for _, a := range atoms {
		if !region.Contains(a) {
			continue
		}
		covered := false
		for _, r := range prior {
			if r.Interval.Contains(a) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, a)
		}
	}
	return out
}
