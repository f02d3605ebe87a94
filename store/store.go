package store

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/go-dimval/dimval/box"
	"github.com/go-dimval/dimval/boxtree"
)

// Row is a unit of storage: a box.Box validity region paired with a
// value.
type Row[V any] struct {
	Interval box.Box
	Value    V
}

// String renders the row as "I -> v".
func (r Row[V]) String() string {
	return r.Interval.String() + " -> " + formatValue(r.Value)
}

func formatValue(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func defaultEqual[V any](a, b V) bool { return reflect.DeepEqual(a, b) }

// Flags are construction-time capability flags, kept as explicit
// struct fields rather than ambient state.
type Flags struct {
	// NoSearchTree disables the box-tree accelerator; queries fall back
	// to a linear scan over the by-start slice. Both paths must agree.
	NoSearchTree bool
	// RequireDisjoint validates pairwise disjointness of the WithRows
	// seed rows at construction. Rows are not re-validated after
	// mutations.
	RequireDisjoint bool
	// BruteForceUpdate is accepted for API compatibility with callers
	// that expect a brute-force mode switch; this engine always uses
	// the generic remainder-tiling algorithm, whatever its value.
	BruteForceUpdate bool
}

// Option configures a Store at construction.
type Option[V any] func(*Store[V])

// WithFlags sets the capability flags.
func WithFlags[V any](f Flags) Option[V] {
	return func(s *Store[V]) { s.flags = f }
}

// WithEqual overrides the value-equality function used by compression,
// diffing, and replace-lookups. The default is reflect.DeepEqual,
// which works for any V, including the map[V]struct{} sets mvstore
// builds on top of this package.
func WithEqual[V any](eq func(a, b V) bool) Option[V] {
	return func(s *Store[V]) { s.equal = eq }
}

// WithRows seeds the store with initial rows. Under Flags.RequireDisjoint
// they must be pairwise disjoint or construction fails with
// ErrDisjointnessViolation.
func WithRows[V any](rows []Row[V]) Option[V] {
	return func(s *Store[V]) { s.initial = rows }
}

// Store is the mutable dimensional store engine. The zero value is not
// usable; construct with New.
type Store[V any] struct {
	mu      sync.RWMutex
	full    box.Box
	rows    []*Row[V]
	tree    *boxtree.Tree[*Row[V]]
	flags   Flags
	equal   func(a, b V) bool
	initial []Row[V]
}

// New constructs a Store whose unbounded region is full (one axis per
// dimension, each built as box.NewAxis(dom, interval.Unbounded[T]())
// over that axis's domain).
func New[V any](full box.Box, opts ...Option[V]) (*Store[V], error) {
	s := &Store[V]{full: full, equal: defaultEqual[V]}
	for _, opt := range opts {
		opt(s)
	}
	if s.flags.RequireDisjoint {
		if !box.PairwiseDisjoint(rowBoxesOf(s.initial)) {
			return nil, ErrDisjointnessViolation
		}
	}
	for _, r := range s.initial {
		row := r
		s.insertRow(&row)
	}
	s.initial = nil
	return s, nil
}

func boxHashBounds(b box.Box) (lo, hi []float64) {
	lo = make([]float64, len(b))
	hi = make([]float64, len(b))
	for i, d := range b {
		lo[i], hi[i] = d.OrderedHashRange()
	}
	return lo, hi
}

func rowBoxesOf[V any](rows []Row[V]) []box.Box {
	out := make([]box.Box, len(rows))
	for i, r := range rows {
		out[i] = r.Interval
	}
	return out
}

// insertRow adds r to every index. Caller must hold the write lock.
func (s *Store[V]) insertRow(r *Row[V]) {
	i := sort.Search(len(s.rows), func(i int) bool { return s.rows[i].Interval.CompareStart(r.Interval) >= 0 })
	s.rows = append(s.rows, nil)
	copy(s.rows[i+1:], s.rows[i:])
	s.rows[i] = r
	if s.tree == nil {
		lo, hi := boxHashBounds(r.Interval)
		s.tree = boxtree.New[*Row[V]](lo, hi)
	}
	s.tree.Insert(r, r.Interval)
}

// deleteRow removes r from every index. Caller must hold the write lock.
func (s *Store[V]) deleteRow(r *Row[V]) {
	for i, x := range s.rows {
		if x == r {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
	if s.tree != nil {
		s.tree.Remove(r, r.Interval)
	}
}

// collectIntersecting returns the rows intersecting region, sorted by
// start ascending, per §4.E.1's "deterministic, by start-key ascending"
// ordering requirement.
func (s *Store[V]) collectIntersecting(region box.Box) []*Row[V] {
	var candidates []*Row[V]
	if !s.flags.NoSearchTree && s.tree != nil {
		candidates = s.tree.Query(region)
	} else {
		candidates = append([]*Row[V](nil), s.rows...)
	}
	var out []*Row[V]
	for _, r := range candidates {
		if r.Interval.Intersects(region) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Interval.CompareStart(out[j].Interval) < 0 })
	return out
}

// GetAt returns the value covering point, if any.
func (s *Store[V]) GetAt(point box.Box) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.collectIntersecting(point) {
		if r.Interval.Contains(point) {
			return r.Value, true
		}
	}
	var zero V
	return zero, false
}

// Get returns the single value covering the unbounded region, or
// ErrNoSingleValue if zero or more than one row does.
func (s *Store[V]) Get() (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero V
	if len(s.rows) != 1 || !s.rows[0].Interval.Equal(s.full) {
		return zero, ErrNoSingleValue
	}
	return s.rows[0].Value, nil
}

// GetAll returns every row in by-start order.
func (s *Store[V]) GetAll() []Row[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Row[V], len(s.rows))
	for i, r := range s.rows {
		out[i] = *r
	}
	return out
}

// GetIntersecting returns every row intersecting region, in by-start
// order.
func (s *Store[V]) GetIntersecting(region box.Box) []Row[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidates := s.collectIntersecting(region)
	out := make([]Row[V], len(candidates))
	for i, r := range candidates {
		out[i] = *r
	}
	return out
}

// Intersects reports whether any row intersects region.
func (s *Store[V]) Intersects(region box.Box) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collectIntersecting(region)) > 0
}

// Full returns the unbounded (all-Bottom..Top) region this store spans.
func (s *Store[V]) Full() box.Box { return s.full }

// Clone returns a deep, independent copy of s.
func (s *Store[V]) Clone() *Store[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := &Store[V]{full: s.full, flags: s.flags, equal: s.equal}
	out.rows = make([]*Row[V], len(s.rows))
	for i, r := range s.rows {
		clone := *r
		out.rows[i] = &clone
	}
	if s.tree != nil {
		out.tree = s.tree.Copy()
	}
	return out
}
