package store

import (
	"sort"

	"github.com/go-dimval/dimval/box"
)

// DiffActionKind distinguishes the three diff action shapes.
type DiffActionKind uint8

const (
	DiffCreate DiffActionKind = iota
	DiffUpdate
	DiffDelete
)

// DiffAction is one Create/Update/Delete instruction keyed by a row's
// start-tuple. Delete carries only Key; Create and Update carry the
// full replacement Row.
type DiffAction[V any] struct {
	Kind DiffActionKind
	Row  Row[V]
	Key  box.Box
}

// DiffActionsFrom computes the minimal Create/Update/Delete sequence
// that transforms old's content into s's content.
func (s *Store[V]) DiffActionsFrom(old *Store[V]) []DiffAction[V] {
	s.mu.RLock()
	newRows := append([]*Row[V](nil), s.rows...)
	s.mu.RUnlock()
	old.mu.RLock()
	oldRows := append([]*Row[V](nil), old.rows...)
	old.mu.RUnlock()

	var actions []DiffAction[V]
	for _, nr := range newRows {
		match := findByStartKey(oldRows, nr.Interval)
		switch {
		case match == nil:
			actions = append(actions, DiffAction[V]{Kind: DiffCreate, Row: *nr, Key: startKeyOf(nr.Interval)})
		case !match.Interval.Equal(nr.Interval) || !s.equal(match.Value, nr.Value):
			actions = append(actions, DiffAction[V]{Kind: DiffUpdate, Row: *nr, Key: startKeyOf(nr.Interval)})
		}
	}
	for _, or := range oldRows {
		if findByStartKey(newRows, or.Interval) == nil {
			actions = append(actions, DiffAction[V]{Kind: DiffDelete, Key: startKeyOf(or.Interval)})
		}
	}
	sort.SliceStable(actions, func(i, j int) bool { return actions[i].Key.CompareStart(actions[j].Key) < 0 })
	return actions
}

func findByStartKey[V any](rows []*Row[V], key box.Box) *Row[V] {
	for _, r := range rows {
		if startKeyEqual(r.Interval, key) {
			return r
		}
	}
	return nil
}

func startKeyOf(b box.Box) box.Box {
	out := make(box.Box, len(b))
	for i, d := range b {
		out[i] = d.StartPoint()
	}
	return out
}

// ApplyDiffActions applies each action in order. An action whose
// precondition no longer holds (e.g. an Update or Delete with no
// matching key) is skipped rather than treated as an error.
func (s *Store[V]) ApplyDiffActions(actions []DiffAction[V]) {
	for _, a := range actions {
		switch a.Kind {
		case DiffCreate:
			s.Set(a.Row)
		case DiffUpdate:
			s.mu.Lock()
			target := findByStartKey(s.rows, a.Key)
			s.mu.Unlock()
			if target == nil {
				continue
			}
			s.Remove(target.Interval)
			s.Set(a.Row)
		case DiffDelete:
			s.mu.Lock()
			target := findByStartKey(s.rows, a.Key)
			s.mu.Unlock()
			if target == nil {
				continue
			}
			s.Remove(target.Interval)
		}
	}
}

// SyncWith makes s equal to other by applying other's diff against s.
func (s *Store[V]) SyncWith(other *Store[V]) {
	s.ApplyDiffActions(other.DiffActionsFrom(s))
}
