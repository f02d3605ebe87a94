package store

import "github.com/go-dimval/dimval/box"

// UncoveredRegions returns the sub-regions of region not already
// covered by any row, tiled as atomic boxes: the same computation
// Set and Fill use internally to find where they create new rows.
func (s *Store[V]) UncoveredRegions(region box.Box) []box.Box {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prior := s.collectIntersecting(region)
	return s.uncoveredRegions(region, prior)
}

// Domain returns the compressed list of regions where some row is
// valid, ignoring value identity.
func (s *Store[V]) Domain() []box.Box {
	s.mu.RLock()
	boxes := rowBoxesOfPtrs(s.rows)
	s.mu.RUnlock()
	if len(boxes) == 0 {
		return nil
	}
	atoms := box.UniqueDecomposition(boxes)
	return mergeAdjacentAnyValue(atoms)
}

// DomainComplement returns the complement of Domain() inside the
// unbounded region.
func (s *Store[V]) DomainComplement() []box.Box {
	domainAtoms := box.UniqueDecomposition(append([]box.Box{s.full}, s.Domain()...))
	var complement []box.Box
	for _, atom := range domainAtoms {
		covered := false
		for _, r := range s.GetAll() {
			if r.Interval.Contains(atom) {
				covered = true
				break
			}
		}
		if !covered {
			complement = append(complement, atom)
		}
	}
	return mergeAdjacentAnyValue(complement)
}

// mergeAdjacentAnyValue repeatedly merges axis-k-adjacent boxes
// irrespective of any associated value, to a fixed point. Used by
// Domain/DomainComplement, which have no value to compare.
func mergeAdjacentAnyValue(boxes []box.Box) []box.Box {
	cur := append([]box.Box(nil), boxes...)
	for {
		merged := false
		for i := 0; i < len(cur) && !merged; i++ {
			for j := i + 1; j < len(cur); j++ {
				axis, ok := cur[i].LeftAdjacentAxis(cur[j])
				left, right := i, j
				if !ok {
					axis, ok = cur[j].LeftAdjacentAxis(cur[i])
					left, right = j, i
				}
				if !ok {
					continue
				}
				d, unionOK := cur[left][axis].Union(cur[right][axis])
				if !unionOK {
					continue
				}
				newBox := append(box.Box(nil), cur[left]...)
				newBox[axis] = d
				next := make([]box.Box, 0, len(cur)-1)
				for k, b := range cur {
					if k == i || k == j {
						continue
					}
					next = append(next, b)
				}
				cur = append(next, newBox)
				merged = true
				break
			}
		}
		if !merged {
			return cur
		}
	}
}
