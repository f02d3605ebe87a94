package store

import "github.com/go-dimval/dimval/box"

// Immutable is a copy-on-write façade over the same engine Store
// implements: a wrapper producing a new store from each mutator.
// Every mutator here clones the underlying store before mutating it,
// leaving the receiver unchanged.
type Immutable[V any] struct {
	inner *Store[V]
}

// ToImmutable wraps a snapshot of s as an Immutable façade.
func (s *Store[V]) ToImmutable() Immutable[V] {
	return Immutable[V]{inner: s.Clone()}
}

// ToMutable returns an independent mutable Store with the same content.
func (im Immutable[V]) ToMutable() *Store[V] {
	return im.inner.Clone()
}

func (im Immutable[V]) GetAt(point box.Box) (V, bool)          { return im.inner.GetAt(point) }
func (im Immutable[V]) Get() (V, error)                        { return im.inner.Get() }
func (im Immutable[V]) GetAll() []Row[V]                       { return im.inner.GetAll() }
func (im Immutable[V]) GetIntersecting(r box.Box) []Row[V]     { return im.inner.GetIntersecting(r) }
func (im Immutable[V]) Intersects(r box.Box) bool              { return im.inner.Intersects(r) }
func (im Immutable[V]) Domain() []box.Box                      { return im.inner.Domain() }
func (im Immutable[V]) DomainComplement() []box.Box            { return im.inner.DomainComplement() }
func (im Immutable[V]) String() string                         { return im.inner.String() }

// Set returns a new Immutable with row applied.
func (im Immutable[V]) Set(row Row[V]) Immutable[V] {
	next := im.inner.Clone()
	next.Set(row)
	return Immutable[V]{inner: next}
}

// Update returns a new Immutable with row applied as an update.
func (im Immutable[V]) Update(row Row[V]) Immutable[V] {
	next := im.inner.Clone()
	next.Update(row)
	return Immutable[V]{inner: next}
}

// Remove returns a new Immutable with region removed.
func (im Immutable[V]) Remove(region box.Box) Immutable[V] {
	next := im.inner.Clone()
	next.Remove(region)
	return Immutable[V]{inner: next}
}

// Fill returns a new Immutable with row filled into uncovered area.
func (im Immutable[V]) Fill(row Row[V]) Immutable[V] {
	next := im.inner.Clone()
	next.Fill(row)
	return Immutable[V]{inner: next}
}

// CompressAll returns a new Immutable with every value compressed.
func (im Immutable[V]) CompressAll() Immutable[V] {
	next := im.inner.Clone()
	next.CompressAll()
	return Immutable[V]{inner: next}
}

// RecompressAll returns a new Immutable in canonical physical form.
func (im Immutable[V]) RecompressAll() Immutable[V] {
	next := im.inner.Clone()
	next.RecompressAll()
	return Immutable[V]{inner: next}
}
