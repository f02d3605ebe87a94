package boxtree

import (
	"math"

	"github.com/go-dimval/dimval/box"
)

// DefaultBucketCapacity is the default maximum number of entries a leaf
// holds before it splits.
const DefaultBucketCapacity = 8

// Option configures a Tree at construction, following the functional
// options idiom used throughout this module.
type Option func(*config)

type config struct {
	bucketCapacity int
}

// WithBucketCapacity overrides DefaultBucketCapacity. Panics on n <= 0.
func WithBucketCapacity(n int) Option {
	if n <= 0 {
		panic("boxtree: WithBucketCapacity requires n > 0")
	}
	return func(c *config) { c.bucketCapacity = n }
}

// entry is one indexed (payload, box) pair, with its ordered-hash bounds
// cached so rescale/split never has to recompute them from the domain.
type entry[P comparable] struct {
	payload P
	b       box.Box
	lo, hi  []float64
}

// node is either a leaf (entries != nil, children == nil) or a branch
// (children != nil, entries == nil) covering [lo, hi] in hash space.
type node[P comparable] struct {
	lo, hi   []float64
	entries  []entry[P]
	children []*node[P]
}

// Tree is a bucketed N-D box index.
type Tree[P comparable] struct {
	dims           int
	bucketCapacity int
	root           *node[P]
}

// New constructs a Tree over the initial boundary [rootLo, rootHi]
// (per-axis, in ordered-hash space — typically
// domain.OrderedHash(MinValue())/domain.OrderedHash(MaxValue()) for each
// axis). The boundary grows automatically on Insert if an entry falls
// outside it.
func New[P comparable](rootLo, rootHi []float64, opts ...Option) *Tree[P] {
	if len(rootLo) != len(rootHi) {
		panic("boxtree: rootLo and rootHi must have equal length")
	}
	cfg := config{bucketCapacity: DefaultBucketCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tree[P]{
		dims:           len(rootLo),
		bucketCapacity: cfg.bucketCapacity,
		root:           newLeaf[P](append([]float64(nil), rootLo...), append([]float64(nil), rootHi...)),
	}
}

func newLeaf[P comparable](lo, hi []float64) *node[P] {
	return &node[P]{lo: lo, hi: hi}
}

func boxHashRange(b box.Box) (lo, hi []float64) {
	lo = make([]float64, len(b))
	hi = make([]float64, len(b))
	for i, d := range b {
		lo[i], hi[i] = d.OrderedHashRange()
	}
	return lo, hi
}

// Insert adds payload indexed under b, growing the root if b falls
// outside the current boundary.
func (t *Tree[P]) Insert(payload P, b box.Box) {
	lo, hi := boxHashRange(b)
	if !fitsWithin(t.root.lo, t.root.hi, lo, hi) {
		t.grow(lo, hi)
	}
	t.root.insert(entry[P]{payload: payload, b: b, lo: lo, hi: hi}, t.bucketCapacity)
}

// grow extends each out-of-range side of the root by half the root's
// current extent on that axis (one unit when the extent is zero),
// repeating until [lo, hi] fits, then rebuilds the tree from scratch over
// the new boundary (correct, and cheap relative to how rarely growth
// happens once the true data extent is reached).
func (t *Tree[P]) grow(lo, hi []float64) {
	newLo := append([]float64(nil), t.root.lo...)
	newHi := append([]float64(nil), t.root.hi...)
	for i := range newLo {
		for newLo[i] > lo[i] || newHi[i] < hi[i] {
			half := (newHi[i] - newLo[i]) / 2
			if half == 0 {
				half = 1
			}
			if newLo[i] > lo[i] {
				newLo[i] -= half
			}
			if newHi[i] < hi[i] {
				newHi[i] += half
			}
		}
	}
	entries := t.root.collectAll()
	t.root = newLeaf[P](newLo, newHi)
	for _, e := range entries {
		t.root.insert(e, t.bucketCapacity)
	}
}

// Remove deletes the entry matching payload under b.
func (t *Tree[P]) Remove(payload P, b box.Box) {
	lo, hi := boxHashRange(b)
	t.root.remove(payload, lo, hi)
}

// Query returns every distinct payload whose box intersects region.
func (t *Tree[P]) Query(region box.Box) []P {
	lo, hi := boxHashRange(region)
	seen := make(map[P]struct{})
	var out []P
	t.root.query(lo, hi, region, seen, &out)
	return out
}

// Copy returns a structural deep copy of t.
func (t *Tree[P]) Copy() *Tree[P] {
	return &Tree[P]{
		dims:           t.dims,
		bucketCapacity: t.bucketCapacity,
		root:           t.root.copy(),
	}
}

func (n *node[P]) collectAll() []entry[P] {
	if n.entries != nil {
		return append([]entry[P](nil), n.entries...)
	}
	var out []entry[P]
	seen := make(map[any]struct{})
	for _, c := range n.children {
		for _, e := range c.collectAll() {
			key := e.payload
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

func (n *node[P]) insert(e entry[P], bucketCapacity int) {
	if n.children == nil {
		n.entries = append(n.entries, e)
		if len(n.entries) > bucketCapacity {
			n.split(bucketCapacity)
		}
		return
	}
	for _, c := range n.children {
		if boxesIntersect(c.lo, c.hi, e.lo, e.hi) {
			c.insert(e, bucketCapacity)
		}
	}
}

// split turns a leaf into a branch of 2^dims children, one per octant
// formed by bisecting every axis at its midpoint, redistributing
// existing entries (duplicated across every child they straddle).
func (n *node[P]) split(bucketCapacity int) {
	dims := len(n.lo)
	mid := make([]float64, dims)
	for i := range mid {
		mid[i] = midpoint(n.lo[i], n.hi[i])
	}
	childCount := 1 << dims
	children := make([]*node[P], childCount)
	for c := 0; c < childCount; c++ {
		lo := make([]float64, dims)
		hi := make([]float64, dims)
		for axis := 0; axis < dims; axis++ {
			if c&(1<<axis) == 0 {
				lo[axis], hi[axis] = n.lo[axis], mid[axis]
			} else {
				lo[axis], hi[axis] = mid[axis], n.hi[axis]
			}
		}
		children[c] = newLeaf[P](lo, hi)
	}
	entries := n.entries
	n.entries = nil
	n.children = children
	for _, e := range entries {
		for _, c := range children {
			if boxesIntersect(c.lo, c.hi, e.lo, e.hi) {
				// insert directly without recursive re-split churn; a
				// child may itself split if it overflows.
				c.entries = append(c.entries, e)
			}
		}
	}
	for _, c := range children {
		if len(c.entries) > bucketCapacity {
			c.split(bucketCapacity)
		}
	}
}

func (n *node[P]) remove(payload P, lo, hi []float64) {
	if n.children == nil {
		out := n.entries[:0]
		for _, e := range n.entries {
			if e.payload == payload {
				continue
			}
			out = append(out, e)
		}
		n.entries = out
		return
	}
	for _, c := range n.children {
		if boxesIntersect(c.lo, c.hi, lo, hi) {
			c.remove(payload, lo, hi)
		}
	}
}

func (n *node[P]) query(lo, hi []float64, region box.Box, seen map[P]struct{}, out *[]P) {
	if !boxesIntersect(n.lo, n.hi, lo, hi) {
		return
	}
	if n.children == nil {
		for _, e := range n.entries {
			if _, dup := seen[e.payload]; dup {
				continue
			}
			if e.b.Intersects(region) {
				seen[e.payload] = struct{}{}
				*out = append(*out, e.payload)
			}
		}
		return
	}
	for _, c := range n.children {
		c.query(lo, hi, region, seen, out)
	}
}

func (n *node[P]) copy() *node[P] {
	out := &node[P]{lo: append([]float64(nil), n.lo...), hi: append([]float64(nil), n.hi...)}
	if n.entries != nil {
		out.entries = append([]entry[P](nil), n.entries...)
	}
	if n.children != nil {
		out.children = make([]*node[P], len(n.children))
		for i, c := range n.children {
			out.children[i] = c.copy()
		}
	}
	return out
}

// midpoint picks a finite bisection point for [lo, hi] even when one or
// both bounds are infinite, where a plain (lo+hi)/2 would either produce
// NaN (opposite-sign infinities) or get stuck returning an infinite
// midpoint forever. Unbounded axes (interval.From/To/Unbounded) are
// first-class, and ordered-hash space represents them as ±Inf, so every
// caller of split must go through this rather than averaging directly.
func midpoint(lo, hi float64) float64 {
	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return 0
	case math.IsInf(lo, -1):
		return hi - 1
	case math.IsInf(hi, 1):
		return lo + 1
	default:
		return lo + (hi-lo)/2
	}
}

func fitsWithin(lo, hi, plo, phi []float64) bool {
	for i := range lo {
		if plo[i] < lo[i] || phi[i] > hi[i] {
			return false
		}
	}
	return true
}

func boxesIntersect(lo1, hi1, lo2, hi2 []float64) bool {
	for i := range lo1 {
		if lo1[i] > hi2[i] || lo2[i] > hi1[i] {
			return false
		}
	}
	return true
}
