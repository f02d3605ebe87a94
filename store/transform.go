package store

import "github.com/go-dimval/dimval/box"

// MapValues transforms every row's value with f, preserving intervals.
func MapValues[V, V2 any](s *Store[V], f func(V) V2) *Store[V2] {
	return Map(s, func(r Row[V]) Row[V2] { return Row[V2]{Interval: r.Interval, Value: f(r.Value)} })
}

// MapIntervals transforms every row's interval with f, preserving
// values. Callers are responsible for f preserving disjointness (I1);
// Set re-establishes it by construction if f happens to introduce
// overlap, at the cost of last-write-wins by by-start order.
func MapIntervals[V any](s *Store[V], f func(box.Box) box.Box) *Store[V] {
	return Map(s, func(r Row[V]) Row[V] { return Row[V]{Interval: f(r.Interval), Value: r.Value} })
}

// Map transforms every row with f into a new store.
func Map[V, V2 any](s *Store[V], f func(Row[V]) Row[V2]) *Store[V2] {
	rows := s.GetAll()
	out, _ := New[V2](s.full, WithFlags[V2](s.flags))
	for _, r := range rows {
		out.Set(f(r))
	}
	out.RecompressAll()
	return out
}

// Collect maps and filters in one pass: rows for which f returns
// ok=false are dropped.
func Collect[V, V2 any](s *Store[V], f func(Row[V]) (Row[V2], bool)) *Store[V2] {
	rows := s.GetAll()
	out, _ := New[V2](s.full, WithFlags[V2](s.flags))
	for _, r := range rows {
		if mapped, ok := f(r); ok {
			out.Set(mapped)
		}
	}
	out.RecompressAll()
	return out
}

// FlatMap expands every row into zero or more rows.
func FlatMap[V, V2 any](s *Store[V], f func(Row[V]) []Row[V2]) *Store[V2] {
	rows := s.GetAll()
	out, _ := New[V2](s.full, WithFlags[V2](s.flags))
	for _, r := range rows {
		for _, mapped := range f(r) {
			out.Set(mapped)
		}
	}
	out.RecompressAll()
	return out
}

// Filter keeps only rows for which pred returns true.
func Filter[V any](s *Store[V], pred func(Row[V]) bool) *Store[V] {
	return Collect(s, func(r Row[V]) (Row[V], bool) { return r, pred(r) })
}

// FoldLeft reduces every row, in by-start order, into a single
// accumulator.
func FoldLeft[V, Acc any](s *Store[V], init Acc, f func(Acc, Row[V]) Acc) Acc {
	acc := init
	for _, r := range s.GetAll() {
		acc = f(acc, r)
	}
	return acc
}
