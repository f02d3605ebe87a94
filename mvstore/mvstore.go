package mvstore

import (
	"github.com/go-dimval/dimval/box"
	"github.com/go-dimval/dimval/store"
)

// Set is the multi-value store's payload: membership only, no
// ordering or multiplicity.
type Set[V comparable] map[V]struct{}

func singleton[V comparable](v V) Set[V] { return Set[V]{v: struct{}{}} }

func cloneSet[V comparable](s Set[V]) Set[V] {
	out := make(Set[V], len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Store is a multi-value store, wrapping store.Store[Set[V]] and
// lifting every base store operation trivially plus the three
// set-specific mutators below.
type Store[V comparable] struct {
	*store.Store[Set[V]]
}

// New constructs an empty multi-value store over full.
func New[V comparable](full box.Box, opts ...store.Option[Set[V]]) (*Store[V], error) {
	inner, err := store.New[Set[V]](full, opts...)
	if err != nil {
		return nil, err
	}
	return &Store[V]{Store: inner}, nil
}

// AddOne ensures v is a member of every cell's set across I, extending
// existing rows and creating new singleton rows on previously empty
// sub-regions.
func (s *Store[V]) AddOne(i box.Box, v V) {
	s.Store.UpdateFunc(i, func(old Set[V]) (Set[V], bool) {
		next := cloneSet(old)
		next[v] = struct{}{}
		return next, true
	})
	s.Store.Fill(store.Row[Set[V]]{Interval: i, Value: singleton(v)})
}

// RemoveOne ensures v is not a member of any cell's set across I,
// deleting rows whose set becomes empty.
func (s *Store[V]) RemoveOne(i box.Box, v V) {
	s.Store.UpdateFunc(i, func(old Set[V]) (Set[V], bool) {
		if _, ok := old[v]; !ok {
			return old, true
		}
		next := cloneSet(old)
		delete(next, v)
		if len(next) == 0 {
			return nil, false
		}
		return next, true
	})
}

// MergeOne merges other into s, unioning the sets on overlapping cells.
func (s *Store[V]) MergeOne(other *Store[V]) *Store[V] {
	merged := s.Store.Merge(other.Store, func(a, b Set[V]) Set[V] {
		out := cloneSet(a)
		for v := range b {
			out[v] = struct{}{}
		}
		return out
	})
	return &Store[V]{Store: merged}
}
