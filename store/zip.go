package store

import "github.com/go-dimval/dimval/box"

// Pair is the paired-value payload Zip and ZipAll produce.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two stores over the same domain into a store of Pair,
// emitting a row for every atomic cell covered by both sides. Zip is a
// free function, not a method, because Go methods cannot introduce
// the second type parameter B.
func Zip[A, B any](a *Store[A], b *Store[B]) *Store[Pair[A, B]] {
	return zipCore(a, b, false, *new(A), *new(B))
}

// ZipAll is Zip but also emits a row for every cell covered by exactly
// one side, filling the missing side with defaultA/defaultB. It never
// emits a row where neither side has a value.
func ZipAll[A, B any](a *Store[A], b *Store[B], defaultA A, defaultB B) *Store[Pair[A, B]] {
	return zipCore(a, b, true, defaultA, defaultB)
}

func zipCore[A, B any](a *Store[A], b *Store[B], all bool, defaultA A, defaultB B) *Store[Pair[A, B]] {
	a.mu.RLock()
	aBoxes := rowBoxesOfPtrs(a.rows)
	aRows := append([]*Row[A](nil), a.rows...)
	a.mu.RUnlock()
	b.mu.RLock()
	bBoxes := rowBoxesOfPtrs(b.rows)
	bRows := append([]*Row[B](nil), b.rows...)
	b.mu.RUnlock()

	atoms := box.UniqueDecomposition(append(append([]box.Box(nil), aBoxes...), bBoxes...))
	out, _ := New[Pair[A, B]](a.full, WithFlags[Pair[A, B]](a.flags))
	for _, atom := range atoms {
		va, oka := findCoveringPtr(aRows, atom)
		vb, okb := findCoveringPtr(bRows, atom)
		switch {
		case oka && okb:
			out.Set(Row[Pair[A, B]]{Interval: atom, Value: Pair[A, B]{First: va, Second: vb}})
		case all && oka:
			out.Set(Row[Pair[A, B]]{Interval: atom, Value: Pair[A, B]{First: va, Second: defaultB}})
		case all && okb:
			out.Set(Row[Pair[A, B]]{Interval: atom, Value: Pair[A, B]{First: defaultA, Second: vb}})
		}
	}
	out.RecompressAll()
	return out
}
